// Package partition provides static work partitioning for parallel loops.
//
// The sieve's loop bodies are uniform and cheap, so iterations are split
// into fixed contiguous chunks computed up front. There is no dynamic
// work stealing; scheduling overhead would dominate the work itself.
package partition

// Range is a contiguous chunk of loop iterations [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the number of iterations in the range.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

// Chunks splits n iterations into at most workers contiguous ranges of
// near-equal size. The remainder of the division is spread over the
// leading chunks, so chunk sizes differ by at most one.
//
// Fewer than workers ranges are returned when n is small; no range is
// ever empty. A nil slice is returned for n == 0.
func Chunks(n uint64, workers int) []Range {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if uint64(workers) > n {
		workers = int(n)
	}

	w := uint64(workers)
	size := n / w
	rem := n % w

	chunks := make([]Range, workers)
	var start uint64
	for i := range chunks {
		end := start + size
		if uint64(i) < rem {
			end++
		}
		chunks[i] = Range{Start: start, End: end}
		start = end
	}
	return chunks
}
