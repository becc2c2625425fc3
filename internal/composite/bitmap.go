package composite

import (
	"fmt"
	"math"
	"math/bits"
	"sync/atomic"
)

const wordBits = 64

// maxWords caps the backing slice at what a single allocation can hold
// in bytes. Requests beyond it fail up front with a useful error instead
// of an opaque runtime abort.
const maxWords = math.MaxInt / 8

// Bitmap is a fixed-size, lock-free bitmap indexed 0..Size()-1.
// All bits start clear. Set and Test may be called concurrently.
type Bitmap struct {
	words []atomic.Uint64
	size  uint64
}

// New allocates a zeroed bitmap holding size bits.
//
// It returns an error when the backing array is not allocatable: either
// the word count exceeds the addressable range, or the runtime rejects
// the allocation size. The runtime signals the latter with a panic from
// makeslice, which is recovered here and reported as an error so callers
// get a single failure path.
func New(size uint64) (bm *Bitmap, err error) {
	if size == 0 {
		return &Bitmap{}, nil
	}

	nw := size / wordBits
	if size%wordBits != 0 {
		nw++
	}
	if nw > maxWords {
		return nil, fmt.Errorf("bitmap of %d bits needs %d words, exceeding the addressable range", size, nw)
	}

	defer func() {
		if r := recover(); r != nil {
			bm = nil
			err = fmt.Errorf("allocating %d words: %v", nw, r)
		}
	}()

	return &Bitmap{
		words: make([]atomic.Uint64, nw),
		size:  size,
	}, nil
}

// Size returns the number of bits the bitmap holds.
func (b *Bitmap) Size() uint64 {
	return b.size
}

// Set sets the bit at index i. Out-of-range indices are ignored.
func (b *Bitmap) Set(i uint64) {
	if i >= b.size {
		return
	}
	b.words[i/wordBits].Or(1 << (i % wordBits))
}

// Test returns true if the bit at index i is set.
// Out-of-range indices report false.
func (b *Bitmap) Test(i uint64) bool {
	if i >= b.size {
		return false
	}
	return b.words[i/wordBits].Load()&(1<<(i%wordBits)) != 0
}

// NextClear returns the index of the first clear bit at or after i.
// The second return value is false when no clear bit remains.
func (b *Bitmap) NextClear(i uint64) (uint64, bool) {
	for i < b.size {
		w := i / wordBits

		// Complement the word and mask off positions below i, so set
		// bits of the result are exactly the clear bits still wanted.
		val := ^b.words[w].Load()
		val &^= (1 << (i % wordBits)) - 1

		if val != 0 {
			idx := w*wordBits + uint64(bits.TrailingZeros64(val))
			if idx >= b.size {
				// Padding bits past size in the last word are never set,
				// so their complement shows up here. Nothing real remains.
				return 0, false
			}
			return idx, true
		}

		i = (w + 1) * wordBits
	}
	return 0, false
}

// CountClear returns the number of clear bits in the inclusive range
// [lo, hi], truncated to the bitmap size.
func (b *Bitmap) CountClear(lo, hi uint64) uint64 {
	if b.size == 0 || lo > hi || lo >= b.size {
		return 0
	}
	if hi >= b.size {
		hi = b.size - 1
	}

	firstWord := lo / wordBits
	lastWord := hi / wordBits

	var n uint64
	for w := firstWord; w <= lastWord; w++ {
		val := ^b.words[w].Load()
		if w == firstWord {
			val &^= (1 << (lo % wordBits)) - 1
		}
		if w == lastWord {
			if off := hi % wordBits; off != wordBits-1 {
				val &= (1 << (off + 1)) - 1
			}
		}
		n += uint64(bits.OnesCount64(val))
	}
	return n
}
