package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/service/bridge"
)

// Bridge holds the address of a remote bridge server
type Bridge struct {
	URL    string
	Secret string
}

// Flags returns CLI flags for Bridge configuration
func (b *Bridge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bridge-url",
			Usage:       "Base URL of a running 'wcadmin serve' (unset runs the bot in-process)",
			Category:    "Bridge",
			Sources:     cli.EnvVars("WCADMIN_BRIDGE_URL"),
			Destination: &b.URL,
		},
		&cli.StringFlag{
			Name:        "bridge-secret",
			Usage:       "Shared secret for signing bridge bearer tokens",
			Category:    "Bridge",
			Sources:     cli.EnvVars("WCADMIN_BRIDGE_SECRET"),
			Destination: &b.Secret,
		},
	}
}

// IsRemote reports whether a remote bridge is configured
func (b *Bridge) IsRemote() bool {
	return b.URL != ""
}

// Configure creates the HTTP bridge client, or nil when no URL is set
func (b *Bridge) Configure() (*bridge.Client, error) {
	if !b.IsRemote() {
		return nil, nil
	}

	var opts []bridge.Option
	if b.Secret != "" {
		opts = append(opts, bridge.WithSecret(b.Secret))
	}
	return bridge.New(b.URL, opts...)
}

// LogValue returns structured log value
func (b Bridge) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", b.URL),
		slog.Bool("has_secret", b.Secret != ""),
	)
}
