package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// Presets points at an optional YAML file of composer defaults
type Presets struct {
	Path string
}

// Flags returns CLI flags for Presets configuration
func (p *Presets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "presets",
			Usage:       "YAML file with composer defaults (embed_color, poll_options, veto_emojis)",
			Category:    "Composer",
			Sources:     cli.EnvVars("WCADMIN_PRESETS"),
			Destination: &p.Path,
		},
	}
}

// Configure loads the presets file, or the built-in defaults when none is set
func (p *Presets) Configure() (*model.Presets, error) {
	if p.Path == "" {
		return model.DefaultPresets(), nil
	}
	return LoadPresetsFromFile(p.Path)
}

// LogValue returns structured log value
func (p Presets) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", p.Path))
}

// LoadPresetsFromFile loads composer presets from a YAML file. Fields left
// out of the file keep their defaults.
func LoadPresetsFromFile(path string) (*model.Presets, error) {
	if path == "" {
		return nil, goerr.New("presets file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "presets file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read presets file",
			goerr.V("path", path))
	}

	var presets model.Presets
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, goerr.Wrap(err, "failed to parse presets YAML",
			goerr.V("path", path))
	}

	out := presets.WithDefaults()
	if err := out.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid presets",
			goerr.V("path", path))
	}

	return out, nil
}
