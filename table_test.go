package sievego

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	table, err := Sieve(context.Background(), 100)
	require.NoError(t, err)

	t.Run("IsPrime", func(t *testing.T) {
		assert.True(t, table.IsPrime(2))
		assert.True(t, table.IsPrime(97))
		assert.False(t, table.IsPrime(0))
		assert.False(t, table.IsPrime(1))
		assert.False(t, table.IsPrime(100))
		// Out of range is never prime, whatever the underlying bit says.
		assert.False(t, table.IsPrime(101))
	})

	t.Run("IsComposite", func(t *testing.T) {
		assert.True(t, table.IsComposite(4))
		assert.True(t, table.IsComposite(100))
		assert.False(t, table.IsComposite(97))
		// 0 and 1 are left unmarked; consumers must not read them as prime.
		assert.False(t, table.IsComposite(0))
		assert.False(t, table.IsComposite(1))
	})

	t.Run("Count", func(t *testing.T) {
		assert.Equal(t, uint64(25), table.Count())
	})

	t.Run("AllEarlyStop", func(t *testing.T) {
		var seen []uint64
		for p := range table.All() {
			seen = append(seen, p)
			if len(seen) == 3 {
				break
			}
		}
		assert.Equal(t, []uint64{2, 3, 5}, seen)
	})

	t.Run("PrimeSet", func(t *testing.T) {
		set := table.PrimeSet()
		assert.Equal(t, uint(25), set.Count())
		assert.True(t, set.Test(97))
		assert.False(t, set.Test(0))
		assert.False(t, set.Test(1))
		assert.False(t, set.Test(100))
	})
}
