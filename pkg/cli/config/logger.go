package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/utils/logging"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
	File   string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("WCADMIN_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("WCADMIN_LOG_FORMAT"),
			Destination: &l.Format,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "Append logs to this file instead of stderr",
			Category:    "Logging",
			Sources:     cli.EnvVars("WCADMIN_LOG_FILE"),
			Destination: &l.File,
		},
	}
}

// Configure sets up the logger based on configuration. The returned closer
// releases the log file, if any.
func (l *Logger) Configure() (*slog.Logger, io.Closer, error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	format, err := logging.ParseFormat(l.Format)
	if err != nil {
		return nil, nil, err
	}

	var w io.WriteCloser = nopCloser{os.Stderr}
	if l.File != "" {
		f, err := logging.OpenFile(l.File)
		if err != nil {
			return nil, nil, err
		}
		w = f
	}

	return logging.NewLoggerWithFormat(logging.ParseLogLevel(l.Level), w, format), w, nil
}

// HasFile reports whether logs are redirected to a file
func (l *Logger) HasFile() bool {
	return l.File != ""
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
		slog.String("file", l.File),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"":      true,
	}
	if !validLevels[l.Level] {
		return goerr.New("invalid log level", goerr.V("level", l.Level))
	}

	if _, err := logging.ParseFormat(l.Format); err != nil {
		return err
	}

	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
