package sievego

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	logger.WithBound(100).WithWorkers(4).WithStrategy(StrategyOuter).Info("configured")
	assert.Contains(t, buf.String(), "bound=100")
	assert.Contains(t, buf.String(), "workers=4")
	assert.Contains(t, buf.String(), "strategy=outer")

	buf.Reset()
	logger.LogSieve(ctx, 100, 4, StrategyInner, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "sieve completed")

	buf.Reset()
	logger.LogSieve(ctx, 100, 4, StrategyInner, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "sieve failed")

	buf.Reset()
	logger.LogPrint(ctx, 25, nil)
	assert.Contains(t, buf.String(), "print completed")

	buf.Reset()
	logger.LogPrint(ctx, 0, errors.New("broken pipe"))
	assert.Contains(t, buf.String(), "print failed")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	logger.Info("discarded")
	logger.LogSieve(context.Background(), 10, 1, StrategyInner, 0, nil)
}
