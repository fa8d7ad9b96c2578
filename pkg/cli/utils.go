package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/wildcards-gg/wcadmin/pkg/cli/config"
	"github.com/wildcards-gg/wcadmin/pkg/domain/model"
	"github.com/wildcards-gg/wcadmin/pkg/usecase"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// loginBridge opens an in-process bot session for one-shot commands. The
// returned function closes the session.
func loginBridge(ctx context.Context, discordCfg *config.Discord) (*usecase.Bridge, func(), error) {
	token, err := discordCfg.ResolveToken(ctx)
	if err != nil {
		return nil, nil, err
	}

	dispatcher := discordCfg.Configure()
	bridge := usecase.NewBridge(dispatcher, nil)
	if ok, _ := bridge.Authenticate(ctx, token); !ok {
		_ = dispatcher.Close()
		return nil, nil, goerr.New(usecase.MsgInvalidToken)
	}

	closeFn := func() {
		if err := dispatcher.Close(); err != nil {
			ctxlog.From(ctx).Warn("Failed to close bot session", "error", err)
		}
	}
	return bridge, closeFn, nil
}

// resultError converts a failed dispatch into an error carrying its text
func resultError(result model.DispatchResult) error {
	if result.Success {
		return nil
	}
	return goerr.New(result.Error)
}
