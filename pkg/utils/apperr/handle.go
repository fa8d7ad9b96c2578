package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that is reported to the operator but not returned
// further up. Context cancellation is logged at warn level.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("operation aborted", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
