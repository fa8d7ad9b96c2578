package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
)

func cmdProspect() *cli.Command {
	var (
		discordCfg config.Discord
		presetsCfg config.Presets
		channelID  string
		prospect   model.Prospect
	)

	flags := joinFlags(
		discordCfg.Flags(),
		presetsCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "channel",
				Usage:       "Channel to open the review thread in",
				Required:    true,
				Destination: &channelID,
			},
			&cli.StringFlag{
				Name:        "name",
				Usage:       "Prospect name",
				Required:    true,
				Destination: &prospect.Name,
			},
			&cli.StringFlag{
				Name:        "end-date",
				Usage:       "Last day of the prospect period (YYYY-MM-DD)",
				Required:    true,
				Destination: &prospect.EndDate,
			},
			&cli.StringFlag{
				Name:        "veto-emoji",
				Usage:       "Reaction used to veto (default: first preset emoji)",
				Destination: &prospect.VetoEmoji,
			},
			&cli.StringFlag{
				Name:        "image",
				Usage:       "Evidence image to attach",
				Destination: &prospect.ImagePath,
			},
		},
	)

	return &cli.Command{
		Name:  "prospect",
		Usage: "Create a prospect review thread and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if prospect.VetoEmoji == "" {
				presets, err := presetsCfg.Configure()
				if err != nil {
					return err
				}
				prospect.VetoEmoji = presets.VetoEmojis[0]
			}

			req, err := prospect.ThreadRequest(types.ChannelID(channelID))
			if err != nil {
				return err
			}

			bridge, closeFn, err := loginBridge(ctx, &discordCfg)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := bridge.DispatchProspectThread(ctx, *req)
			if err != nil {
				return err
			}
			if err := resultError(result); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(c.Root().Writer, usecase.MsgThreadCreated)
			return nil
		},
	}
}
