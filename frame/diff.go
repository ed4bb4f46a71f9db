package frame

import (
	"fmt"

	"github.com/BranchIntl/tweener/errors"
)

// Difference returns the dissimilarity between two frames of identical
// dimensions as a percentage in [0,100].
//
// The metric is the mean absolute per-pixel difference, computed per channel,
// with the channel means averaged and normalized by the maximum 8-bit channel
// value. It is a cheap global heuristic meant to catch hard scene cuts, not a
// structural similarity measure.
func Difference(a, b *Frame) (float64, error) {
	if !SameSize(a, b) {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d",
			errors.ErrDimensionMismatch, a.Width, a.Height, b.Width, b.Height)
	}

	pixels := a.Width * a.Height
	if pixels == 0 {
		return 0, nil
	}

	var sums [Channels]uint64
	for i := 0; i < len(a.Pix); i += Channels {
		for c := 0; c < Channels; c++ {
			pa := a.Pix[i+c]
			pb := b.Pix[i+c]
			if pa > pb {
				sums[c] += uint64(pa - pb)
			} else {
				sums[c] += uint64(pb - pa)
			}
		}
	}

	var total float64
	for c := 0; c < Channels; c++ {
		total += float64(sums[c]) / float64(pixels)
	}

	return total / (Channels * 255) * 100, nil
}
