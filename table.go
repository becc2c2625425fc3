package sievego

import (
	"iter"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/sievego/internal/composite"
)

// Table is the read-only result of a sieve run, covering candidates
// 0..Bound() inclusive.
//
// During sieving the underlying bitmap is owned exclusively by the
// engine; a Table is only handed out once every marking region has
// joined, so no reader ever observes a partially sieved state.
type Table struct {
	bound uint64
	bits  *composite.Bitmap
}

// Bound returns the largest candidate the table covers.
func (t *Table) Bound() uint64 {
	return t.bound
}

// IsComposite reports whether n was marked composite.
// Entries below 2 are left unmarked but are not meaningful.
func (t *Table) IsComposite(n uint64) bool {
	return t.bits.Test(n)
}

// IsPrime reports whether n is prime. Values below 2 or above the bound
// are never prime.
func (t *Table) IsPrime(n uint64) bool {
	return n >= 2 && n <= t.bound && !t.bits.Test(n)
}

// Count returns the number of primes up to and including the bound.
func (t *Table) Count() uint64 {
	if t.bound < 2 {
		return 0
	}
	return t.bits.CountClear(2, t.bound)
}

// All returns the primes of the table in ascending order.
func (t *Table) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for n, ok := t.bits.NextClear(2); ok; n, ok = t.bits.NextClear(n + 1) {
			if !yield(n) {
				return
			}
		}
	}
}

// Primes returns the primes of the table as a slice.
func (t *Table) Primes() []uint64 {
	primes := make([]uint64, 0, t.Count())
	for p := range t.All() {
		primes = append(primes, p)
	}
	return primes
}

// PrimeSet returns a packed snapshot of the table with one bit set per
// prime. The snapshot is independent of the table and cheap to compare,
// which makes it the natural currency for equivalence checks between
// sieve runs.
func (t *Table) PrimeSet() *bitset.BitSet {
	set := bitset.New(uint(t.bound + 1))
	for p := range t.All() {
		set.Set(uint(p))
	}
	return set
}
