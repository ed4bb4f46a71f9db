// Package frame defines the in-memory raster type shared by every stage of
// the interpolation pipeline. Frames are value-like: workers read them or
// produce new ones, they never mutate frames they received.
package frame

import (
	"bytes"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Channels is the number of interleaved channels in a Frame's pixel buffer.
// Frames are always stored as RGBA.
const Channels = 4

// Frame is an RGBA raster with interleaved, row-major pixel data.
// len(Pix) == Width*Height*Channels.
type Frame struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Pix    []byte `json:"pix"`
}

// New creates a zeroed frame of the given dimensions.
func New(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*Channels),
	}
}

// FromImage converts any image into a Frame, normalizing to RGBA.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)

	return &Frame{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    dst.Pix,
	}
}

// Image returns the frame as a stdlib RGBA image. The returned image shares
// the frame's pixel buffer.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: f.Width * Channels,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// SameSize reports whether two frames have identical dimensions.
func SameSize(a, b *Frame) bool {
	return a.Width == b.Width && a.Height == b.Height
}

// Equal reports whether two frames are byte-for-byte identical.
func Equal(a, b *Frame) bool {
	if a == nil || b == nil {
		return a == b
	}
	return SameSize(a, b) && bytes.Equal(a.Pix, b.Pix)
}
