package sievego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSieve is called after each sieve run.
	// bound is the requested upper bound, duration the wall-clock time of
	// the sieve phase, err is nil if successful.
	RecordSieve(bound uint64, duration time.Duration, err error)

	// RecordPrint is called after each output run.
	// primes is the number of primes written, duration the time taken,
	// err is nil if successful.
	RecordPrint(primes uint64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSieve(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordPrint(uint64, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SieveCount      atomic.Int64
	SieveErrors     atomic.Int64
	SieveTotalNanos atomic.Int64
	PrintCount      atomic.Int64
	PrintErrors     atomic.Int64
	PrintedPrimes   atomic.Int64
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(bound uint64, duration time.Duration, err error) {
	b.SieveCount.Add(1)
	b.SieveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SieveErrors.Add(1)
	}
}

// RecordPrint implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrint(primes uint64, duration time.Duration, err error) {
	b.PrintCount.Add(1)
	b.PrintedPrimes.Add(int64(primes))
	if err != nil {
		b.PrintErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	SieveCount    int64
	SieveErrors   int64
	SieveAvgNanos int64
	PrintCount    int64
	PrintErrors   int64
	PrintedPrimes int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		SieveCount:    b.SieveCount.Load(),
		SieveErrors:   b.SieveErrors.Load(),
		PrintCount:    b.PrintCount.Load(),
		PrintErrors:   b.PrintErrors.Load(),
		PrintedPrimes: b.PrintedPrimes.Load(),
	}
	if stats.SieveCount > 0 {
		stats.SieveAvgNanos = b.SieveTotalNanos.Load() / stats.SieveCount
	}
	return stats
}
