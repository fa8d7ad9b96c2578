package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
)

func cmdChannels() *cli.Command {
	var (
		discordCfg config.Discord
		guildID    string
	)

	return &cli.Command{
		Name:  "channels",
		Usage: "List text channels the bot can post in",
		Flags: joinFlags(discordCfg.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "guild",
				Usage:       "Only list channels of this guild ID",
				Destination: &guildID,
			},
		}),
		Action: func(ctx context.Context, c *cli.Command) error {
			bridge, closeFn, err := loginBridge(ctx, &discordCfg)
			if err != nil {
				return err
			}
			defer closeFn()

			channels, err := bridge.ListChannels(ctx, types.GuildID(guildID))
			if err != nil {
				return err
			}
			return printChannels(c.Root().Writer, channels)
		},
	}
}

func cmdGuilds() *cli.Command {
	var discordCfg config.Discord

	return &cli.Command{
		Name:  "guilds",
		Usage: "List guilds the bot has joined",
		Flags: discordCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			bridge, closeFn, err := loginBridge(ctx, &discordCfg)
			if err != nil {
				return err
			}
			defer closeFn()

			guilds, err := bridge.ListGuilds(ctx)
			if err != nil {
				return err
			}
			return printGuilds(c.Root().Writer, guilds)
		},
	}
}

func cmdMembers() *cli.Command {
	var (
		discordCfg config.Discord
		guildID    string
	)

	return &cli.Command{
		Name:  "members",
		Usage: "List human members of a guild",
		Flags: joinFlags(discordCfg.Flags(), []cli.Flag{
			&cli.StringFlag{
				Name:        "guild",
				Usage:       "Guild ID",
				Required:    true,
				Destination: &guildID,
			},
		}),
		Action: func(ctx context.Context, c *cli.Command) error {
			bridge, closeFn, err := loginBridge(ctx, &discordCfg)
			if err != nil {
				return err
			}
			defer closeFn()

			members, err := bridge.ListMembers(ctx, types.GuildID(guildID))
			if err != nil {
				return err
			}
			return printMembers(c.Root().Writer, members)
		},
	}
}

func printChannels(w io.Writer, channels []model.Channel) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ch := range channels {
		fmt.Fprintf(tw, "%s\t#%s\n", ch.ID, ch.Name)
	}
	return tw.Flush()
}

func printGuilds(w io.Writer, guilds []model.Guild) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, g := range guilds {
		fmt.Fprintf(tw, "%s\t%s\n", g.ID, g.Name)
	}
	return tw.Flush()
}

func printMembers(w io.Writer, members []model.Member) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, m := range members {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.DisplayName, m.Tag)
	}
	return tw.Flush()
}
