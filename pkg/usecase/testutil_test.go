package usecase_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
)

func newTestContext() context.Context {
	return ctxlog.With(context.Background(), slog.New(slog.NewTextHandler(os.Stdout, nil)))
}
