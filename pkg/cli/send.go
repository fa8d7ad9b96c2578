package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/domain/types"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
)

type sendInput struct {
	ChannelID    string
	Variant      string
	Content      string
	Title        string
	Color        string
	Options      []string
	PollDuration time.Duration
	Image        string
}

func (in *sendInput) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "channel",
			Usage:       "Target channel ID",
			Required:    true,
			Destination: &in.ChannelID,
		},
		&cli.StringFlag{
			Name:        "variant",
			Usage:       "Message variant (simple, embed, poll)",
			Value:       string(types.MessageVariantSimple),
			Destination: &in.Variant,
		},
		&cli.StringFlag{
			Name:        "content",
			Usage:       "Message text, embed body or poll question",
			Destination: &in.Content,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Embed title",
			Destination: &in.Title,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "Embed color as #RRGGBB",
			Destination: &in.Color,
		},
		&cli.StringSliceFlag{
			Name:        "option",
			Usage:       "Poll answer (repeat for each answer)",
			Destination: &in.Options,
		},
		&cli.DurationFlag{
			Name:        "poll-duration",
			Usage:       "Poll duration, rounded down to whole hours",
			Value:       model.DefaultPollDurationHours * time.Hour,
			Destination: &in.PollDuration,
		},
		&cli.StringFlag{
			Name:        "image",
			Usage:       "Image file to attach",
			Destination: &in.Image,
		},
	}
}

func (in *sendInput) request() (model.MessageRequest, error) {
	if types.MessageVariant(in.Variant) == types.MessageVariantPoll && in.PollDuration < time.Hour {
		return model.MessageRequest{}, goerr.New("poll duration must be at least 1h",
			goerr.V("duration", in.PollDuration))
	}

	return model.MessageRequest{
		ChannelID:    types.ChannelID(in.ChannelID),
		Variant:      types.MessageVariant(in.Variant),
		Content:      in.Content,
		EmbedTitle:   in.Title,
		EmbedColor:   in.Color,
		PollOptions:  in.Options,
		PollDuration: int(in.PollDuration / time.Hour),
		ImagePath:    in.Image,
	}, nil
}

func cmdSend() *cli.Command {
	var (
		discordCfg config.Discord
		input      sendInput
	)

	return &cli.Command{
		Name:  "send",
		Usage: "Send one message (plain text, embed or poll) and exit",
		Flags: joinFlags(discordCfg.Flags(), input.flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := input.request()
			if err != nil {
				return err
			}
			if _, err := req.Outbound(); err != nil {
				return err
			}

			bridge, closeFn, err := loginBridge(ctx, &discordCfg)
			if err != nil {
				return err
			}
			defer closeFn()

			ctxlog.From(ctx).Debug("Sending message",
				slog.String("channel", req.ChannelID.String()),
				slog.String("variant", req.Variant.String()),
			)

			result, err := bridge.DispatchMessage(ctx, req)
			if err != nil {
				return err
			}
			if err := resultError(result); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(c.Root().Writer, usecase.MsgMessageSent)
			return nil
		},
	}
}
