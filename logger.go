package sievego

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with sievego-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithBound adds a bound field to the logger.
func (l *Logger) WithBound(bound uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("bound", bound),
	}
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(workers int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", workers),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(strategy Strategy) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", strategy.String()),
	}
}

// LogSieve logs a completed sieve run.
func (l *Logger) LogSieve(ctx context.Context, bound uint64, workers int, strategy Strategy, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve failed",
			"bound", bound,
			"workers", workers,
			"strategy", strategy.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sieve completed",
			"bound", bound,
			"workers", workers,
			"strategy", strategy.String(),
			"duration", duration,
		)
	}
}

// LogPrint logs an output-stage run.
func (l *Logger) LogPrint(ctx context.Context, primes uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "print failed",
			"primes", primes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "print completed",
			"primes", primes,
		)
	}
}
