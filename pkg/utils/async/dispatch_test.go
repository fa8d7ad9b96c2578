package async_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/wildcards-gg/wcadmin/pkg/utils/async"
)

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("async handler did not finish within timeout")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func loggerContext(w *syncBuffer) context.Context {
	logger := slog.New(slog.NewTextHandler(w, nil))
	return ctxlog.With(context.Background(), logger)
}

func TestDispatch(t *testing.T) {
	t.Run("runs handler", func(t *testing.T) {
		var executed atomic.Bool
		wait(t, async.Dispatch(context.Background(), func(ctx context.Context) error {
			executed.Store(true)
			return nil
		}))
		gt.True(t, executed.Load())
	})

	t.Run("logs handler error", func(t *testing.T) {
		var out syncBuffer
		wait(t, async.Dispatch(loggerContext(&out), func(ctx context.Context) error {
			return goerr.New("login failed")
		}))
		gt.S(t, out.String()).Contains("Error in async handler")
		gt.S(t, out.String()).Contains("login failed")
	})

	t.Run("recovers from panic", func(t *testing.T) {
		var out syncBuffer
		wait(t, async.Dispatch(loggerContext(&out), func(ctx context.Context) error {
			panic("test panic")
		}))
		gt.S(t, out.String()).Contains("Panic in async handler")
	})

	t.Run("survives cancellation of parent context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var ctxErr error
		wait(t, async.Dispatch(ctx, func(ctx context.Context) error {
			ctxErr = ctx.Err()
			return nil
		}))
		gt.NoError(t, ctxErr)
	})

	t.Run("preserves logger", func(t *testing.T) {
		var out syncBuffer
		wait(t, async.Dispatch(loggerContext(&out), func(ctx context.Context) error {
			ctxlog.From(ctx).Info("from background")
			return nil
		}))
		gt.S(t, out.String()).Contains("from background")
	})

	t.Run("multiple dispatches", func(t *testing.T) {
		var counter atomic.Int32
		var dones []<-chan struct{}
		for i := 0; i < 10; i++ {
			dones = append(dones, async.Dispatch(context.Background(), func(ctx context.Context) error {
				counter.Add(1)
				return nil
			}))
		}
		for _, d := range dones {
			wait(t, d)
		}
		gt.Equal(t, counter.Load(), int32(10))
	})
}
