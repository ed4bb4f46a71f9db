package core

import (
	"context"
	"time"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/frame"
	"github.com/BranchIntl/tweener/job"
)

// Queue interface defines what core needs from a job queue.
type Queue interface {
	// Enqueue adds a job to the queue.
	Enqueue(ctx context.Context, j *job.Job) error

	// TryDequeue removes and returns one job without blocking. It returns
	// (nil, nil) when the queue is empty. Each job is delivered to exactly
	// one caller.
	TryDequeue(ctx context.Context) (*job.Job, error)

	// Length returns the number of queued jobs.
	Length(ctx context.Context) (int64, error)

	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Health() error
	Type() string
}

// SlotWriter interface defines what core needs from the shared output
// buffer. Implementations must allow concurrent writes to disjoint indices
// without a global lock.
type SlotWriter interface {
	// Set stores a frame at the given slot index.
	Set(i int, f *frame.Frame) error

	// Len returns the total number of slots.
	Len() int

	// Written returns the number of populated slots.
	Written() int
}

// Registry interface defines what core needs from a per-worker processor
// cache.
type Registry interface {
	// GetOrCreate returns the cached processor for an algorithm,
	// constructing it on first request.
	GetOrCreate(name string) (algorithms.Processor, error)
}

// Statistics interface defines what core needs from a statistics backend.
type Statistics interface {
	// Worker lifecycle
	RegisterWorker(ctx context.Context, worker WorkerInfo) error
	UnregisterWorker(ctx context.Context, workerID string) error

	// Outcome metrics
	RecordInterpolated(ctx context.Context, workerID string, frameIndex int, duration time.Duration) error
	RecordReused(ctx context.Context, workerID string, frameIndex int, ratio float64) error
	RecordPrimed(ctx context.Context, workerID string) error
	RecordFailed(ctx context.Context, workerID string, frameIndex int, err error) error

	// Statistics queries
	GetWorkerStats(ctx context.Context, workerID string) (WorkerStats, error)
	GetGlobalStats(ctx context.Context) (GlobalStats, error)

	// Health and connection
	Connect(ctx context.Context) error
	Close() error
	Health() error
	Type() string
}

// Supporting types used by the interfaces

// WorkerInfo describes a worker
type WorkerInfo struct {
	ID       string
	Hostname string
	Pid      int
	Device   int
	Started  time.Time
}

// WorkerStats contains statistics for a worker
type WorkerStats struct {
	ID           string
	Interpolated int64
	Reused       int64
	Primed       int64
	Failed       int64
	StartTime    time.Time
	LastJob      time.Time
}

// GlobalStats contains global statistics
type GlobalStats struct {
	Interpolated  int64
	Reused        int64
	Primed        int64
	Failed        int64
	ActiveWorkers int64
}

// HealthStatus represents the health of the engine
type HealthStatus struct {
	Healthy       bool
	QueueHealth   error
	StatsHealth   error
	ActiveWorkers int
	QueuedJobs    int64
	SlotsWritten  int
	Paused        bool
	LastCheck     time.Time
}
