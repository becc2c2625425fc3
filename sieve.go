package sievego

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sievego/internal/composite"
	"github.com/hupe1980/sievego/internal/partition"
	"github.com/hupe1980/sievego/internal/pool"
)

func runSieve(bound uint64, o options) (*Table, error) {
	if bound == math.MaxUint64 {
		// bound+1 table slots are not representable; the CLI boundary
		// clamps before reaching here, library callers get the same
		// failure as an unallocatable table.
		return nil, &ErrTableTooLarge{Bound: bound}
	}

	bits, err := composite.New(bound + 1)
	if err != nil {
		return nil, &ErrTableTooLarge{Bound: bound, cause: err}
	}

	limit := sqrtLimit(bound)

	switch o.strategy {
	case StrategyOuter:
		sieveOuter(bits, bound, limit, o.workers)
	case StrategyInner:
		sieveInner(bits, bound, limit, o.workers)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, o.strategy)
	}

	return &Table{bound: bound, bits: bits}, nil
}

// sqrtLimit returns floor(sqrt(bound)).
//
// The float conversion is biased up by a small epsilon before
// truncation: sqrt of a perfect square can land epsilon below the true
// integer root, and truncating that would silently skip the root's
// multiples (sqrt(25) must yield 5, never 4). The fix-up loops settle
// the result exactly for bounds beyond float64's 52-bit mantissa, using
// division to stay clear of uint64 overflow.
func sqrtLimit(bound uint64) uint64 {
	limit := uint64(math.Sqrt(float64(bound)) + 1e-5)
	for limit > 0 && limit > bound/limit {
		limit--
	}
	for limit+1 <= bound/(limit+1) {
		limit++
	}
	return limit
}

// sieveOuter distributes the candidate loop across workers in a single
// fork-join region.
//
// A worker may probe a candidate before the marking of its smaller prime
// factors has landed and then redundantly mark that composite's
// multiples. The marking OR is idempotent, so the only cost is wasted
// work; the final table is unaffected.
func sieveOuter(bits *composite.Bitmap, bound, limit uint64, workers int) {
	if limit < 2 {
		return
	}

	g := new(errgroup.Group)
	for _, c := range partition.Chunks(limit-1, workers) {
		g.Go(func() error {
			for p := 2 + c.Start; p < 2+c.End; p++ {
				if bits.Test(p) {
					continue
				}
				markMultiples(bits, p, partition.Range{Start: 0, End: multipleCount(bound, p)})
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail; Wait is the region's join barrier
}

// sieveInner keeps the candidate loop sequential and fans the marking of
// each confirmed prime's multiples out over a persistent worker pool.
//
// The barrier at the end of each prime's region establishes the
// happens-before edge the strategy relies on: a candidate is only probed
// after all smaller primes finished marking, so a clear bit proves
// primality.
func sieveInner(bits *composite.Bitmap, bound, limit uint64, workers int) {
	if limit < 2 {
		return
	}

	wp := pool.New(workers)
	defer wp.Close()

	for p := uint64(2); p <= limit; p++ {
		if bits.Test(p) {
			continue
		}

		chunks := partition.Chunks(multipleCount(bound, p), workers)
		if len(chunks) == 1 {
			markMultiples(bits, p, chunks[0])
			continue
		}

		var wg sync.WaitGroup
		for _, c := range chunks {
			wg.Add(1)
			task := func() {
				defer wg.Done()
				markMultiples(bits, p, c)
			}
			if err := wp.Submit(task); err != nil {
				// Pool lifetime is scoped to this function, so Submit
				// cannot fail here; run inline rather than lose a chunk.
				task()
			}
		}
		wg.Wait()
	}
}

// multipleCount returns how many multiples of p lie in [p*p, bound].
// Callers guarantee p <= sqrt(bound).
func multipleCount(bound, p uint64) uint64 {
	return (bound-p*p)/p + 1
}

// markMultiples marks the multiples of p indexed by the chunk c within
// the sequence p*p, p*p+p, ..., bound. Iterating by item count keeps the
// loop free of the wrap-around a naive m += p termination check risks at
// the top of the uint64 range.
func markMultiples(bits *composite.Bitmap, p uint64, c partition.Range) {
	m := p*p + c.Start*p
	for range c.Len() {
		bits.Set(m)
		m += p
	}
}
