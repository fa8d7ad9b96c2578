package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/utils/logging"
)

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range testCases {
		gt.Equal(t, logging.ParseLogLevel(in), want)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatJSON)

	f, err = logging.ParseFormat("")
	gt.NoError(t, err)
	gt.Equal(t, f, logging.FormatAuto)

	_, err = logging.ParseFormat("xml")
	gt.Error(t, err)
}

func TestAutoFormatUsesJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(slog.LevelInfo, &buf)
	logger.Info("hello", "channel", "C1")

	var rec map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	gt.Equal(t, rec["msg"], "hello")
	gt.Equal(t, rec["channel"], "C1")
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLoggerWithFormat(slog.LevelWarn, &buf, logging.FormatJSON)
	logger.Info("dropped")
	gt.Equal(t, buf.Len(), 0)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wcadmin.log")
	f, err := logging.OpenFile(path)
	gt.NoError(t, err)

	logger := logging.NewLogger(slog.LevelInfo, f)
	logger.Info("to file")
	gt.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.True(t, bytes.Contains(data, []byte(`"to file"`)))

	_, err = logging.OpenFile(filepath.Join(t.TempDir(), "missing", "x.log"))
	gt.Error(t, err)
}
