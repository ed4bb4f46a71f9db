// Package blend provides the built-in software interpolator: an equal-weight
// pixel average of the two input frames. It is the fallback engine used when
// no hardware-accelerated algorithm is registered, and the reference
// implementation for processor semantics.
package blend

import (
	"fmt"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/frame"
)

// Name is the algorithm name the blend constructor registers under.
const Name = "blend"

// Blend averages two frames channel-wise. It runs on the CPU and ignores the
// device index.
type Blend struct{}

// New creates a blend processor. The device argument exists to satisfy the
// constructor contract shared with accelerator-backed engines.
func New(device int) (algorithms.Processor, error) {
	return &Blend{}, nil
}

// Process returns the midpoint frame between a and b.
func (p *Blend) Process(a, b *frame.Frame) (*frame.Frame, error) {
	if !frame.SameSize(a, b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			errors.ErrDimensionMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	out := frame.New(a.Width, a.Height)
	for i := range out.Pix {
		out.Pix[i] = uint8((uint16(a.Pix[i]) + uint16(b.Pix[i])) / 2)
	}
	return out, nil
}
