package conv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxBound is the largest sieve bound the engine accepts. One below the
// maximum representable value, so bound+1 table slots stay expressible.
const MaxBound = math.MaxUint64 - 1

// ParseBound parses s as a decimal sieve bound.
//
// Values beyond MaxBound, including those overflowing uint64 entirely,
// are clamped to MaxBound and reported through clamped rather than
// failing. Malformed input is an error.
func ParseBound(s string) (bound uint64, clamped bool, err error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return MaxBound, true, nil
		}
		return 0, false, fmt.Errorf("invalid bound %q: %w", s, err)
	}
	if v > MaxBound {
		return MaxBound, true, nil
	}
	return v, false, nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
