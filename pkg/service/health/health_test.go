package health

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestCheckDB(t *testing.T) {
	ok := New(pingerFunc(func(context.Context) error { return nil }), time.Second, slog.Default())
	assert.NoError(t, ok.CheckDB(context.Background()))

	down := errors.New("connection refused")
	failing := New(pingerFunc(func(context.Context) error { return down }), time.Second, slog.Default())
	assert.ErrorIs(t, failing.CheckDB(context.Background()), down)
}

func TestCheckDB_Timeout(t *testing.T) {
	slow := New(pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}), 10*time.Millisecond, slog.Default())
	assert.ErrorIs(t, slow.CheckDB(context.Background()), context.DeadlineExceeded)
}
