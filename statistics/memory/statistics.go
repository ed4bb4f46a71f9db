// Package memory provides an in-process statistics backend. Supervisors use
// it to observe worker outcomes without an external metrics system.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/BranchIntl/tweener/core"
)

// Statistics implements the core.Statistics interface with in-memory
// counters. Safe for concurrent use by all workers.
type Statistics struct {
	mu      sync.RWMutex
	workers map[string]*workerRecord
	active  int64
}

type workerRecord struct {
	info         core.WorkerInfo
	interpolated int64
	reused       int64
	primed       int64
	failed       int64
	lastJob      time.Time
	lastError    error
}

// NewStatistics creates a new in-memory statistics backend
func NewStatistics() *Statistics {
	return &Statistics{workers: make(map[string]*workerRecord)}
}

func (s *Statistics) RegisterWorker(ctx context.Context, worker core.WorkerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workers[worker.ID] = &workerRecord{info: worker}
	s.active++
	return nil
}

func (s *Statistics) UnregisterWorker(ctx context.Context, workerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.workers[workerID]; ok {
		s.active--
	}
	return nil
}

func (s *Statistics) RecordInterpolated(ctx context.Context, workerID string, frameIndex int, duration time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.record(workerID); rec != nil {
		rec.interpolated++
		rec.lastJob = time.Now()
	}
	return nil
}

func (s *Statistics) RecordReused(ctx context.Context, workerID string, frameIndex int, ratio float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.record(workerID); rec != nil {
		rec.reused++
		rec.lastJob = time.Now()
	}
	return nil
}

func (s *Statistics) RecordPrimed(ctx context.Context, workerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.record(workerID); rec != nil {
		rec.primed++
		rec.lastJob = time.Now()
	}
	return nil
}

func (s *Statistics) RecordFailed(ctx context.Context, workerID string, frameIndex int, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec := s.record(workerID); rec != nil {
		rec.failed++
		rec.lastError = err
	}
	return nil
}

func (s *Statistics) GetWorkerStats(ctx context.Context, workerID string) (core.WorkerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.workers[workerID]
	if !ok {
		return core.WorkerStats{ID: workerID}, nil
	}

	return core.WorkerStats{
		ID:           workerID,
		Interpolated: rec.interpolated,
		Reused:       rec.reused,
		Primed:       rec.primed,
		Failed:       rec.failed,
		StartTime:    rec.info.Started,
		LastJob:      rec.lastJob,
	}, nil
}

func (s *Statistics) GetGlobalStats(ctx context.Context) (core.GlobalStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	global := core.GlobalStats{ActiveWorkers: s.active}
	for _, rec := range s.workers {
		global.Interpolated += rec.interpolated
		global.Reused += rec.reused
		global.Primed += rec.primed
		global.Failed += rec.failed
	}
	return global, nil
}

// LastError returns the most recent fatal error recorded for a worker.
func (s *Statistics) LastError(workerID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.workers[workerID]; ok {
		return rec.lastError
	}
	return nil
}

func (s *Statistics) Connect(ctx context.Context) error { return nil }

func (s *Statistics) Close() error { return nil }

func (s *Statistics) Health() error { return nil }

func (s *Statistics) Type() string { return "memory" }

// record returns the worker's record; callers must hold the write lock.
func (s *Statistics) record(workerID string) *workerRecord {
	rec, ok := s.workers[workerID]
	if !ok {
		// Worker recorded an outcome without registering; track it anyway.
		rec = &workerRecord{info: core.WorkerInfo{ID: workerID}}
		s.workers[workerID] = rec
	}
	return rec
}
