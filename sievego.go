package sievego

import (
	"context"
	"fmt"
	"time"
)

// Sieve computes the primality of every number up to and including bound
// and returns the finished composite table.
//
// The context is checked once before work starts; a started sieve always
// runs to completion, there is no mid-computation cancellation. The only
// fatal engine error is an unallocatable table, reported as
// *ErrTableTooLarge. Invalid configuration (worker count below 1,
// unknown strategy) is rejected before any work.
func Sieve(ctx context.Context, bound uint64, optFns ...Option) (*Table, error) {
	o := applyOptions(optFns)

	if o.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, o.workers)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	table, err := runSieve(bound, o)
	duration := time.Since(start)

	o.metrics.RecordSieve(bound, duration, err)
	o.logger.LogSieve(ctx, bound, o.workers, o.strategy, duration, err)

	if err != nil {
		return nil, err
	}
	return table, nil
}
