package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/frame"
)

func solid(w, h int, value byte) *frame.Frame {
	f := frame.New(w, h)
	for i := range f.Pix {
		f.Pix[i] = value
	}
	return f
}

func TestBlend_Midpoint(t *testing.T) {
	p, err := New(0)
	require.NoError(t, err)

	out, err := p.Process(solid(4, 4, 100), solid(4, 4, 200))

	require.NoError(t, err)
	assert.True(t, frame.Equal(solid(4, 4, 150), out))
}

func TestBlend_InputsUntouched(t *testing.T) {
	p, _ := New(0)
	a := solid(2, 2, 10)
	b := solid(2, 2, 20)

	out, err := p.Process(a, b)

	require.NoError(t, err)
	assert.True(t, frame.Equal(solid(2, 2, 10), a))
	assert.True(t, frame.Equal(solid(2, 2, 20), b))
	assert.True(t, frame.Equal(solid(2, 2, 15), out))
}

func TestBlend_DimensionMismatch(t *testing.T) {
	p, _ := New(0)

	_, err := p.Process(frame.New(2, 2), frame.New(3, 2))

	assert.ErrorIs(t, err, errors.ErrDimensionMismatch)
}
