package config

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/service/picker"
)

// Picker holds the external file dialog used by the bridge server
type Picker struct {
	Command string
}

// Flags returns CLI flags for Picker configuration
func (p *Picker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "picker-command",
			Usage:       "Command printing the selected image path on stdout",
			Category:    "Picker",
			Value:       strings.Join(picker.DefaultCommand[:2], " "),
			Sources:     cli.EnvVars("WCADMIN_PICKER_COMMAND"),
			Destination: &p.Command,
		},
	}
}

// Configure creates the command picker. The default command keeps its image filter.
func (p *Picker) Configure() *picker.Command {
	argv := strings.Fields(p.Command)
	if len(argv) == 0 || slices.Equal(argv, picker.DefaultCommand[:2]) {
		return picker.NewCommand()
	}
	return picker.NewCommand(argv...)
}

// LogValue returns structured log value
func (p Picker) LogValue() slog.Value {
	return slog.GroupValue(slog.String("command", p.Command))
}
