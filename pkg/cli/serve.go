package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
	controller "github.com/wildcards-gg/wcadmin/pkg/controller/http"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
	"github.com/wildcards-gg/wcadmin/pkg/utils/async"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		discordCfg config.Discord
		pickerCfg  config.Picker
	)

	flags := joinFlags(
		serverCfg.Flags(),
		discordCfg.Flags(),
		pickerCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Hold the bot session and serve the bridge over HTTP",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting wcadmin bridge server",
				slog.Any("server", serverCfg),
				slog.Any("discord", discordCfg),
				slog.Any("picker", pickerCfg),
			)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			dispatcher := discordCfg.Configure()
			defer func() {
				if err := dispatcher.Close(); err != nil {
					logger.Warn("Failed to close bot session", "error", err)
				}
			}()

			bridge := usecase.NewBridge(dispatcher, pickerCfg.Configure())

			// A token given at startup logs in without waiting for the composer.
			if discordCfg.Token != "" {
				token := discordCfg.Token
				async.Dispatch(ctx, func(ctx context.Context) error {
					if !dispatcher.Authenticate(ctx, token) {
						return goerr.New("startup login failed")
					}
					ctxlog.From(ctx).Info("Bot session ready")
					return nil
				})
			}

			var opts []controller.Option
			if serverCfg.Secret != "" {
				opts = append(opts, controller.WithSecret(serverCfg.Secret))
			}
			server := controller.NewServer(ctx, serverCfg.Addr, bridge, opts...)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
			if err := runServer(ctx, server, sigChan); err != nil {
				return err
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// runServer serves until ctx is done, a signal arrives or the listener fails,
// then shuts the server down.
func runServer(ctx context.Context, server httpServer, sigChan <-chan os.Signal) error {
	logger := ctxlog.From(ctx)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return goerr.Wrap(err, "HTTP server failed")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}
	return nil
}
