package core

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/registry"
)

// WorkerPool manages a pool of interpolation workers. Every worker gets a
// private processor registry built from the shared constructor table, so
// processor state is never shared across workers.
type WorkerPool struct {
	queue       Queue
	slots       SlotWriter
	stats       Statistics
	table       *algorithms.Table
	concurrency int
	device      int
	interval    time.Duration
	pause       *atomic.Bool

	activeWorkers int32
	workers       []*Worker
	wg            sync.WaitGroup

	errMu    sync.Mutex
	firstErr error
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(
	queue Queue,
	slots SlotWriter,
	stats Statistics,
	table *algorithms.Table,
	concurrency int,
	device int,
	interval time.Duration,
	pause *atomic.Bool,
) *WorkerPool {
	return &WorkerPool{
		queue:       queue,
		slots:       slots,
		stats:       stats,
		table:       table,
		concurrency: concurrency,
		device:      device,
		interval:    interval,
		pause:       pause,
		workers:     make([]*Worker, 0, concurrency),
	}
}

// Start runs the pool until all workers exit. It returns the first fatal
// worker error, if any; a fatal error in one worker does not stop its
// siblings.
func (wp *WorkerPool) Start(ctx context.Context) error {
	slog.Info("Starting worker pool", "workers", wp.concurrency)

	for i := 0; i < wp.concurrency; i++ {
		worker := NewWorker(
			strconv.Itoa(i),
			wp.queue,
			wp.slots,
			registry.NewRegistry(wp.table, wp.device),
			wp.stats,
			wp.pause,
			wp.interval,
		)
		wp.workers = append(wp.workers, worker)
	}

	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go func(w *Worker) {
			defer wp.wg.Done()
			atomic.AddInt32(&wp.activeWorkers, 1)
			defer atomic.AddInt32(&wp.activeWorkers, -1)

			if err := w.Work(ctx); err != nil {
				slog.Error("Worker error", "id", w.GetID(), "error", err)
				wp.recordError(err)
			}
		}(worker)
	}

	wp.wg.Wait()
	slog.Info("Worker pool stopped")
	return wp.Err()
}

// Stop asks every worker loop to exit.
func (wp *WorkerPool) Stop() {
	for _, worker := range wp.workers {
		worker.Stop()
	}
}

// ActiveWorkers returns the number of active workers
func (wp *WorkerPool) ActiveWorkers() int {
	return int(atomic.LoadInt32(&wp.activeWorkers))
}

// Err returns the first fatal worker error observed, if any.
func (wp *WorkerPool) Err() error {
	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	return wp.firstErr
}

func (wp *WorkerPool) recordError(err error) {
	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	if wp.firstErr == nil {
		wp.firstErr = err
	}
}
