package config

import (
	"log/slog"
	"net"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds bridge server configuration
type Server struct {
	Addr   string
	Secret string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Bridge server address",
			Category:    "Server",
			Value:       "127.0.0.1:8080",
			Sources:     cli.EnvVars("WCADMIN_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "bridge-secret",
			Usage:       "Shared secret for signing bridge bearer tokens (unset disables authentication)",
			Category:    "Server",
			Sources:     cli.EnvVars("WCADMIN_BRIDGE_SECRET"),
			Destination: &s.Secret,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if _, _, err := net.SplitHostPort(s.Addr); err != nil {
		return goerr.Wrap(err, "invalid server address", goerr.V("addr", s.Addr))
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("has_secret", s.Secret != ""),
	)
}
