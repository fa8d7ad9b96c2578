package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/service/discord"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
	"golang.org/x/term"
)

// Discord holds bot session configuration
type Discord struct {
	Token        string
	LoginTimeout time.Duration
	GuildSettle  time.Duration
	JudgeImage   string
}

// Flags returns CLI flags for Discord configuration
func (d *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-token",
			Usage:       "Discord bot token",
			Category:    "Discord",
			Sources:     cli.EnvVars("WCADMIN_DISCORD_TOKEN"),
			Destination: &d.Token,
		},
		&cli.DurationFlag{
			Name:        "login-timeout",
			Usage:       "Maximum wait for the bot session to become ready",
			Category:    "Discord",
			Value:       usecase.DefaultLoginTimeout,
			Sources:     cli.EnvVars("WCADMIN_LOGIN_TIMEOUT"),
			Destination: &d.LoginTimeout,
		},
		&cli.DurationFlag{
			Name:        "guild-settle",
			Usage:       "Delay after the session is ready for guild data to arrive",
			Category:    "Discord",
			Value:       discord.DefaultGuildSettle,
			Sources:     cli.EnvVars("WCADMIN_GUILD_SETTLE"),
			Destination: &d.GuildSettle,
		},
		&cli.StringFlag{
			Name:        "judge-image",
			Usage:       "Image posted first in every prospect review thread",
			Category:    "Discord",
			Value:       "media/Judge.jpg",
			Sources:     cli.EnvVars("WCADMIN_JUDGE_IMAGE"),
			Destination: &d.JudgeImage,
		},
	}
}

// Configure creates a Dispatcher backed by the Discord gateway
func (d *Discord) Configure() *usecase.Dispatcher {
	connector := discord.NewConnector(discord.WithGuildSettle(d.GuildSettle))

	opts := []usecase.DispatcherOption{}
	if d.LoginTimeout > 0 {
		opts = append(opts, usecase.WithLoginTimeout(d.LoginTimeout))
	}
	if d.JudgeImage != "" {
		opts = append(opts, usecase.WithJudgeImage(d.JudgeImage))
	}
	return usecase.NewDispatcher(connector, opts...)
}

// ResolveToken returns the configured token, prompting on the terminal when
// none was given.
func (d *Discord) ResolveToken(ctx context.Context) (string, error) {
	if d.Token != "" {
		return d.Token, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", goerr.New("discord token is required; set WCADMIN_DISCORD_TOKEN or --discord-token")
	}

	fmt.Fprint(os.Stderr, "Discord bot token: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read token")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", goerr.New("discord token is required")
	}
	d.Token = token
	return token, nil
}

// LogValue returns structured log value
func (d Discord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", d.Token != ""),
		slog.Duration("login_timeout", d.LoginTimeout),
		slog.Duration("guild_settle", d.GuildSettle),
		slog.String("judge_image", d.JudgeImage),
	)
}
