package core

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/frame"
	"github.com/BranchIntl/tweener/job"
	"github.com/BranchIntl/tweener/registry"
	"github.com/BranchIntl/tweener/slots"
)

// TestSetup provides common test dependencies
type TestSetup struct {
	Queue *MockQueue
	Stats *MockStatistics
	Slots *slots.Buffer
	Table *algorithms.Table
	Pause atomic.Bool

	constructions atomic.Int32
}

// NewTestSetup creates a standard test setup. The slot buffer is sized for
// the given number of frame pairs and the table carries a stub algorithm
// that returns stubOutput for every pair.
func NewTestSetup(pairs int, stubOutput *frame.Frame) *TestSetup {
	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	slog.SetDefault(logger)

	setup := &TestSetup{
		Queue: NewMockQueue(),
		Stats: NewMockStatistics(),
		Slots: slots.NewForPairs(pairs),
		Table: algorithms.NewTable(),
	}

	setup.Table.Register("stub", func(device int) (algorithms.Processor, error) {
		setup.constructions.Add(1)
		return &stubProcessor{output: stubOutput}, nil
	})
	setup.Table.Register("failing", func(device int) (algorithms.Processor, error) {
		return nil, errors.New("model not available")
	})
	setup.Table.Register("broken", func(device int) (algorithms.Processor, error) {
		return &stubProcessor{err: errors.New("device lost")}, nil
	})

	return setup
}

// NewWorker builds a worker wired to the setup's dependencies with a short
// poll interval.
func (s *TestSetup) NewWorker(id string) *Worker {
	return NewWorker(
		id,
		s.Queue,
		s.Slots,
		registry.NewRegistry(s.Table, 0),
		s.Stats,
		&s.Pause,
		5*time.Millisecond,
	)
}

// Constructions reports how many stub processors were built.
func (s *TestSetup) Constructions() int {
	return int(s.constructions.Load())
}

// stubProcessor returns a fixed frame, or a fixed error, for every pair.
type stubProcessor struct {
	output *frame.Frame
	err    error
}

func (p *stubProcessor) Process(a, b *frame.Frame) (*frame.Frame, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.output, nil
}

// SolidFrame creates a uniform frame for tests.
func SolidFrame(width, height int, value byte) *frame.Frame {
	f := frame.New(width, height)
	for i := range f.Pix {
		f.Pix[i] = value
	}
	return f
}

// PairJob builds a job with the stub algorithm and the given threshold.
func PairJob(index int, first, second *frame.Frame, threshold float64) *job.Job {
	return job.New(index, first, second, job.Params{
		DifferenceThreshold: threshold,
		Algorithm:           "stub",
	})
}

// ContextWithTimeout creates a context with standard timeout for tests
func ContextWithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Second)
}

// WaitFor polls a condition until it holds or the deadline passes.
func WaitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}
