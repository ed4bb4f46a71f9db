// Package noop provides a statistics backend that discards everything. It
// is the default when no monitoring is wired up.
package noop

import (
	"context"
	"time"

	"github.com/BranchIntl/tweener/core"
)

// Statistics implements the core.Statistics interface with no-ops
type Statistics struct{}

// NewStatistics creates a new no-op statistics backend
func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) RegisterWorker(ctx context.Context, worker core.WorkerInfo) error {
	return nil
}

func (s *Statistics) UnregisterWorker(ctx context.Context, workerID string) error {
	return nil
}

func (s *Statistics) RecordInterpolated(ctx context.Context, workerID string, frameIndex int, duration time.Duration) error {
	return nil
}

func (s *Statistics) RecordReused(ctx context.Context, workerID string, frameIndex int, ratio float64) error {
	return nil
}

func (s *Statistics) RecordPrimed(ctx context.Context, workerID string) error {
	return nil
}

func (s *Statistics) RecordFailed(ctx context.Context, workerID string, frameIndex int, err error) error {
	return nil
}

func (s *Statistics) GetWorkerStats(ctx context.Context, workerID string) (core.WorkerStats, error) {
	return core.WorkerStats{ID: workerID}, nil
}

func (s *Statistics) GetGlobalStats(ctx context.Context) (core.GlobalStats, error) {
	return core.GlobalStats{}, nil
}

func (s *Statistics) Connect(ctx context.Context) error { return nil }

func (s *Statistics) Close() error { return nil }

func (s *Statistics) Health() error { return nil }

func (s *Statistics) Type() string { return "noop" }
