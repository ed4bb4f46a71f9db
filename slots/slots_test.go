package slots

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/frame"
)

func TestNewForPairs_Sizing(t *testing.T) {
	b := NewForPairs(3)

	// Slots 0..2n inclusive.
	assert.Equal(t, 7, b.Len())
	assert.Equal(t, 0, b.Written())
}

func TestSetAndGet(t *testing.T) {
	b := New(5)
	f := frame.New(2, 2)

	require.NoError(t, b.Set(3, f))

	assert.Same(t, f, b.Get(3))
	assert.Nil(t, b.Get(2))
	assert.Equal(t, 1, b.Written())
}

func TestSet_OutOfRange(t *testing.T) {
	b := New(2)

	assert.ErrorIs(t, b.Set(-1, frame.New(1, 1)), errors.ErrSlotOutOfRange)
	assert.ErrorIs(t, b.Set(2, frame.New(1, 1)), errors.ErrSlotOutOfRange)
	assert.Nil(t, b.Get(-1))
	assert.Nil(t, b.Get(2))
}

func TestWritten_CountsEachSlotOnce(t *testing.T) {
	b := New(4)
	f := frame.New(1, 1)

	require.NoError(t, b.Set(1, f))
	require.NoError(t, b.Set(1, f.Clone()))

	assert.Equal(t, 1, b.Written())
}

func TestConcurrentDisjointWrites(t *testing.T) {
	const n = 64
	b := NewForPairs(n)

	var wg sync.WaitGroup
	for k := 1; k <= n; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			assert.NoError(t, b.Set(2*k-1, frame.New(1, 1)))
			assert.NoError(t, b.Set(2*k, frame.New(1, 1)))
		}(k)
	}
	wg.Wait()

	assert.Equal(t, 2*n, b.Written())
	for i := 1; i <= 2*n; i++ {
		assert.NotNil(t, b.Get(i), "slot %d", i)
	}
}
