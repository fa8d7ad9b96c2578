package cli

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
	"github.com/wildcards-gg/wcadmin/pkg/controller/tui"
	"github.com/wildcards-gg/wcadmin/pkg/domain/interfaces"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
	"github.com/wildcards-gg/wcadmin/pkg/utils/logging"
)

func cmdCompose(loggerCfg *config.Logger) *cli.Command {
	var (
		discordCfg   config.Discord
		bridgeCfg    config.Bridge
		presetsCfg   config.Presets
		previewStyle string
	)

	flags := joinFlags(
		discordCfg.Flags(),
		bridgeCfg.Flags(),
		presetsCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "preview-style",
				Usage:       "Preview pane style (dark, light, notty)",
				Category:    "Composer",
				Value:       "dark",
				Sources:     cli.EnvVars("WCADMIN_PREVIEW_STYLE"),
				Destination: &previewStyle,
			},
		},
	)

	return &cli.Command{
		Name:  "compose",
		Usage: "Open the interactive message composer",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// The terminal belongs to the composer; logs only go to a file.
			if !loggerCfg.HasFile() {
				ctx = ctxlog.With(ctx, logging.Discard())
			}
			logger := ctxlog.From(ctx)

			logger.Info("Starting composer",
				slog.Any("bridge", bridgeCfg),
				slog.Any("presets", presetsCfg),
			)

			presets, err := presetsCfg.Configure()
			if err != nil {
				return err
			}

			var (
				bridge    interfaces.Bridge
				modelOpts = []tui.Option{
					tui.WithPreviewStyle(previewStyle),
					tui.WithToken(discordCfg.Token),
				}
			)

			client, err := bridgeCfg.Configure()
			if err != nil {
				return err
			}
			if client != nil {
				bridge = client
			} else {
				modalPicker := tui.NewModalPicker()
				dispatcher := discordCfg.Configure()
				defer func() {
					if err := dispatcher.Close(); err != nil {
						logger.Warn("Failed to close bot session", "error", err)
					}
				}()
				bridge = usecase.NewBridge(dispatcher, modalPicker)
				modelOpts = append(modelOpts, tui.WithPicker(modalPicker))
			}

			var program *tea.Program
			composer := usecase.NewComposer(bridge,
				usecase.WithPresets(presets),
				usecase.WithStatusExpiredListener(func() {
					if program != nil {
						program.Send(tui.StatusExpiredMsg{})
					}
				}),
			)
			defer composer.Close()

			model := tui.New(ctx, composer, modelOpts...)
			program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

			if _, err := program.Run(); err != nil {
				return goerr.Wrap(err, "composer exited with error")
			}
			return nil
		},
	}
}
