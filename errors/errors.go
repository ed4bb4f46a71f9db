// Package errors provides error types and utilities for the tweener library.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotConnected      = errors.New("not connected")
	ErrQueueClosed       = errors.New("queue is closed")
	ErrQueueFull         = errors.New("queue is full")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
	ErrDimensionMismatch = errors.New("frame dimensions do not match")
	ErrInvalidFrameIndex = errors.New("frame index must be positive")
	ErrSlotOutOfRange    = errors.New("slot index out of range")
	ErrEmptyAlgorithm    = errors.New("algorithm name cannot be empty")
	ErrNilConstructor    = errors.New("algorithm constructor cannot be nil")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// QueueError represents queue-specific errors
type QueueError struct {
	Op    string // operation being performed
	Queue string // queue name (if applicable)
	Err   error  // underlying error
}

func (e *QueueError) Error() string {
	if e.Queue != "" {
		return fmt.Sprintf("queue %s on %s: %v", e.Op, e.Queue, e.Err)
	}
	return fmt.Sprintf("queue %s: %v", e.Op, e.Err)
}

func (e *QueueError) Unwrap() error {
	return e.Err
}

// ProcessorError represents algorithm construction or invocation errors
type ProcessorError struct {
	Algorithm string // algorithm name
	Op        string // "construct" or "process"
	Err       error  // underlying error
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor %s %s: %v", e.Algorithm, e.Op, e.Err)
}

func (e *ProcessorError) Unwrap() error {
	return e.Err
}

// SerializationError represents serialization/deserialization errors
type SerializationError struct {
	Format string // serialization format
	Err    error  // underlying error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization (%s): %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ConnectionError represents connection-related errors
type ConnectionError struct {
	URI string // connection URI (may be redacted)
	Err error  // underlying error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection to %s: %v", e.URI, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Helper functions for creating errors

// NewQueueError creates a new queue error
func NewQueueError(op, queue string, err error) error {
	return &QueueError{Op: op, Queue: queue, Err: err}
}

// NewProcessorError creates a new processor error
func NewProcessorError(algorithm, op string, err error) error {
	return &ProcessorError{Algorithm: algorithm, Op: op, Err: err}
}

// NewSerializationError creates a new serialization error
func NewSerializationError(format string, err error) error {
	return &SerializationError{Format: format, Err: err}
}

// NewConnectionError creates a new connection error
func NewConnectionError(uri string, err error) error {
	return &ConnectionError{URI: uri, Err: err}
}
