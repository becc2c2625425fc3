package sievego

import (
	"log/slog"
	"runtime"
)

type options struct {
	strategy Strategy
	workers  int
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures Sieve behavior.
//
// Options exist to keep the API surface small: the engine stays a pure
// function of its inputs, with no package-level mutable configuration.
type Option func(*options)

// WithStrategy selects the parallelization strategy.
// Both strategies produce identical tables; they trade redundant marking
// work against per-region synchronization overhead.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithWorkers overrides the worker count used during the sieve phase.
//
// The default is runtime.GOMAXPROCS(0). Counts below 1 are rejected by
// Sieve with ErrInvalidWorkers before any work starts.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures structured logging for sieve runs.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for sieve runs.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		strategy: StrategyInner,
		workers:  runtime.GOMAXPROCS(0),
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
