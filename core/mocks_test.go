package core

import (
	"context"
	"sync"
	"time"

	"github.com/BranchIntl/tweener/job"
)

// Mock implementations for testing

// MockQueue implements the Queue interface for testing
type MockQueue struct {
	mu           sync.Mutex
	jobs         []*job.Job
	connected    bool
	connectError error
	dequeueError error
	dequeued     []*job.Job
}

func NewMockQueue() *MockQueue {
	return &MockQueue{}
}

func (m *MockQueue) Enqueue(ctx context.Context, j *job.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = append(m.jobs, j)
	return nil
}

func (m *MockQueue) TryDequeue(ctx context.Context) (*job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dequeueError != nil {
		return nil, m.dequeueError
	}

	if len(m.jobs) == 0 {
		return nil, nil
	}

	j := m.jobs[0]
	m.jobs = m.jobs[1:]
	m.dequeued = append(m.dequeued, j)
	return j, nil
}

func (m *MockQueue) Length(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.jobs)), nil
}

func (m *MockQueue) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connectError != nil {
		return m.connectError
	}
	m.connected = true
	return nil
}

func (m *MockQueue) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	return nil
}

func (m *MockQueue) Health() error { return nil }

func (m *MockQueue) Type() string { return "mock" }

func (m *MockQueue) GetDequeuedJobs() []*job.Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*job.Job, len(m.dequeued))
	copy(out, m.dequeued)
	return out
}

// MockStatistics implements the Statistics interface for testing
type MockStatistics struct {
	mu           sync.Mutex
	registered   []WorkerInfo
	unregistered []string
	interpolated []int
	reused       []int
	primed       int
	failed       []error
}

func NewMockStatistics() *MockStatistics {
	return &MockStatistics{}
}

func (m *MockStatistics) RegisterWorker(ctx context.Context, worker WorkerInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registered = append(m.registered, worker)
	return nil
}

func (m *MockStatistics) UnregisterWorker(ctx context.Context, workerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.unregistered = append(m.unregistered, workerID)
	return nil
}

func (m *MockStatistics) RecordInterpolated(ctx context.Context, workerID string, frameIndex int, duration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.interpolated = append(m.interpolated, frameIndex)
	return nil
}

func (m *MockStatistics) RecordReused(ctx context.Context, workerID string, frameIndex int, ratio float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reused = append(m.reused, frameIndex)
	return nil
}

func (m *MockStatistics) RecordPrimed(ctx context.Context, workerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.primed++
	return nil
}

func (m *MockStatistics) RecordFailed(ctx context.Context, workerID string, frameIndex int, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failed = append(m.failed, err)
	return nil
}

func (m *MockStatistics) GetWorkerStats(ctx context.Context, workerID string) (WorkerStats, error) {
	return WorkerStats{ID: workerID}, nil
}

func (m *MockStatistics) GetGlobalStats(ctx context.Context) (GlobalStats, error) {
	return GlobalStats{}, nil
}

func (m *MockStatistics) Connect(ctx context.Context) error { return nil }

func (m *MockStatistics) Close() error { return nil }

func (m *MockStatistics) Health() error { return nil }

func (m *MockStatistics) Type() string { return "mock" }

func (m *MockStatistics) GetInterpolated() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]int, len(m.interpolated))
	copy(out, m.interpolated)
	return out
}

func (m *MockStatistics) GetReused() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]int, len(m.reused))
	copy(out, m.reused)
	return out
}

func (m *MockStatistics) GetPrimed() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.primed
}

func (m *MockStatistics) GetFailed() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]error, len(m.failed))
	copy(out, m.failed)
	return out
}
