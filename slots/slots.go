// Package slots implements the shared output buffer all workers write their
// results into.
//
// The buffer is a pre-sized, index-addressed sequence of frames. Workers
// writing concurrently never target the same index: slot ownership is derived
// arithmetically from each job's globally unique frame index, so the buffer
// needs per-slot atomicity for memory safety but no global lock.
package slots

import (
	"sync/atomic"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/frame"
)

// Buffer is a fixed-size sequence of frame slots safe for concurrent
// disjoint-index writes and concurrent reads.
type Buffer struct {
	slots   []atomic.Pointer[frame.Frame]
	written atomic.Int64
}

// New creates a buffer with the given number of slots.
func New(size int) *Buffer {
	return &Buffer{slots: make([]atomic.Pointer[frame.Frame], size)}
}

// NewForPairs creates a buffer sized for n input pairs: slots 0..2n.
func NewForPairs(n int) *Buffer {
	return New(2*n + 1)
}

// Set stores a frame at the given index. Each index is written at most once
// per run; that invariant is upheld by the frame-index arithmetic of the
// callers, not enforced here.
func (b *Buffer) Set(i int, f *frame.Frame) error {
	if i < 0 || i >= len(b.slots) {
		return errors.ErrSlotOutOfRange
	}

	if b.slots[i].Swap(f) == nil && f != nil {
		b.written.Add(1)
	}
	return nil
}

// Get returns the frame at the given index, or nil if the slot is empty or
// out of range.
func (b *Buffer) Get(i int) *frame.Frame {
	if i < 0 || i >= len(b.slots) {
		return nil
	}
	return b.slots[i].Load()
}

// Len returns the total number of slots.
func (b *Buffer) Len() int {
	return len(b.slots)
}

// Written returns the number of populated slots. Consumers can use it for
// progress reporting while workers are still running.
func (b *Buffer) Written() int {
	return int(b.written.Load())
}
