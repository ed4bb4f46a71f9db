// Package memory implements an in-process job queue. It is the canonical
// queue for single-process pipelines, where jobs carry frames by reference
// and never cross a serialization boundary.
package memory

import (
	"context"
	"sync"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/job"
)

// Queue implements the core.Queue interface using a buffered channel.
// Multiple producers and multiple workers may use it concurrently; each job
// is delivered to exactly one worker.
type Queue struct {
	mu        sync.RWMutex
	jobs      chan *job.Job
	size      int
	connected bool
}

// Options for the memory queue
type Options struct {
	// Size is the queue capacity. Enqueue fails when the queue is full.
	Size int
}

// DefaultOptions returns default memory queue options
func DefaultOptions() Options {
	return Options{Size: 1024}
}

// NewQueue creates a new in-memory queue
func NewQueue(options Options) *Queue {
	return &Queue{size: options.Size}
}

// Connect initializes the queue
func (q *Queue) Connect(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.connected {
		q.jobs = make(chan *job.Job, q.size)
		q.connected = true
	}
	return nil
}

// Close closes the queue. Jobs still buffered are discarded.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.connected {
		close(q.jobs)
		q.jobs = nil
		q.connected = false
	}
	return nil
}

// Health checks the queue health
func (q *Queue) Health() error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.connected {
		return errors.ErrNotConnected
	}
	return nil
}

// Type returns the queue type
func (q *Queue) Type() string {
	return "memory"
}

// Enqueue adds a job to the queue
func (q *Queue) Enqueue(ctx context.Context, j *job.Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.connected {
		return errors.ErrNotConnected
	}

	select {
	case q.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.NewQueueError("enqueue", q.Type(), errors.ErrQueueFull)
	}
}

// TryDequeue removes one job without blocking. It returns (nil, nil) when
// the queue is empty.
func (q *Queue) TryDequeue(ctx context.Context) (*job.Job, error) {
	q.mu.RLock()
	jobs := q.jobs
	q.mu.RUnlock()

	if jobs == nil {
		return nil, errors.ErrNotConnected
	}

	select {
	case j, ok := <-jobs:
		if !ok {
			return nil, errors.NewQueueError("dequeue", q.Type(), errors.ErrQueueClosed)
		}
		return j, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return nil, nil // No job available
	}
}

// Length returns the number of buffered jobs
func (q *Queue) Length(ctx context.Context) (int64, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if !q.connected {
		return 0, errors.ErrNotConnected
	}
	return int64(len(q.jobs)), nil
}
