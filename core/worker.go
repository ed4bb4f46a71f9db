package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/frame"
	"github.com/BranchIntl/tweener/job"
)

// Worker is one interpolation consumer: a long-running, pausable loop that
// pulls frame-pair jobs, applies the scene-change gate, and writes results
// into the shared slot buffer.
//
// The loop re-reads the shared pause flag on every iteration, so pause and
// resume take effect within one poll interval and need no explicit signal.
// Termination is cooperative: Stop (or context cancellation) is observed at
// the top of the next iteration, never mid-job.
type Worker struct {
	id       string
	hostname string
	pid      int
	queue    Queue
	slots    SlotWriter
	registry Registry
	stats    Statistics
	pause    *atomic.Bool
	interval time.Duration

	running   atomic.Bool
	startTime time.Time
}

// NewWorker creates a new worker. The registry must be private to this
// worker; the pause flag is shared by the whole pool.
func NewWorker(
	id string,
	queue Queue,
	slots SlotWriter,
	registry Registry,
	stats Statistics,
	pause *atomic.Bool,
	interval time.Duration,
) *Worker {
	hostname, _ := os.Hostname()

	return &Worker{
		id:        id,
		hostname:  hostname,
		pid:       os.Getpid(),
		queue:     queue,
		slots:     slots,
		registry:  registry,
		stats:     stats,
		pause:     pause,
		interval:  interval,
		startTime: time.Now(),
	}
}

// GetID returns the worker's unique ID
func (w *Worker) GetID() string {
	return fmt.Sprintf("%s:%d-%s", w.hostname, w.pid, w.id)
}

// Running reports whether the worker loop is active.
func (w *Worker) Running() bool {
	return w.running.Load()
}

// Stop asks the worker loop to exit. The loop observes the request at the
// top of its next iteration; a job already past the dequeue step is
// processed to completion first.
func (w *Worker) Stop() {
	w.running.Store(false)
}

// Work runs the worker loop until stopped, cancelled, or a fatal error
// occurs. Fatal errors (unknown algorithm, processor construction or
// invocation failure, slot arithmetic out of range) terminate only this
// worker; sibling workers and the queue are untouched.
func (w *Worker) Work(ctx context.Context) error {
	w.running.Store(true)
	defer w.running.Store(false)

	workerInfo := WorkerInfo{
		ID:       w.GetID(),
		Hostname: w.hostname,
		Pid:      w.pid,
		Started:  w.startTime,
	}

	if err := w.stats.RegisterWorker(ctx, workerInfo); err != nil {
		slog.Error("Failed to register worker", "error", err)
	}

	defer func() {
		if err := w.stats.UnregisterWorker(ctx, w.GetID()); err != nil {
			slog.Error("Failed to unregister worker", "error", err)
		}
	}()

	slog.Info("Interpolation worker started", "id", w.GetID())

	for w.running.Load() {
		select {
		case <-ctx.Done():
			slog.Info("Interpolation worker stopping", "id", w.GetID())
			return nil
		default:
		}

		if w.pause.Load() {
			w.sleep(ctx)
			continue
		}

		j, err := w.queue.TryDequeue(ctx)
		if err != nil {
			slog.Error("Dequeue failed", "id", w.GetID(), "error", err)
			w.sleep(ctx)
			continue
		}

		if j == nil {
			w.sleep(ctx)
			continue
		}

		if err := w.processJob(ctx, j); err != nil {
			if recErr := w.stats.RecordFailed(ctx, w.GetID(), j.FrameIndex, err); recErr != nil {
				slog.Error("Failed to record job failure", "error", recErr)
			}
			slog.Error("Interpolation worker terminating",
				"id", w.GetID(), "frame_index", j.FrameIndex, "error", err)
			return err
		}
	}

	slog.Info("Interpolation worker stopping", "id", w.GetID())
	return nil
}

// processJob handles a single job. Any returned error is fatal to the
// worker.
func (w *Worker) processJob(ctx context.Context, j *job.Job) error {
	// The priming job only carries the sequence's first frame downstream;
	// there is nothing to interpolate yet.
	if j.IsPriming() {
		if err := w.stats.RecordPrimed(ctx, w.GetID()); err != nil {
			slog.Error("Failed to record priming job", "error", err)
		}
		return nil
	}

	if j.FrameIndex < 1 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidFrameIndex, j.FrameIndex)
	}

	ratio, err := frame.Difference(j.First, j.Second)
	if err != nil {
		return err
	}

	startTime := time.Now()

	var interpolated *frame.Frame
	if ratio < j.Params.DifferenceThreshold {
		processor, err := w.registry.GetOrCreate(j.Params.Algorithm)
		if err != nil {
			return err
		}

		interpolated, err = processor.Process(j.First, j.Second)
		if err != nil {
			return errors.NewProcessorError(j.Params.Algorithm, "process", err)
		}

		if recErr := w.stats.RecordInterpolated(ctx, w.GetID(), j.FrameIndex, time.Since(startTime)); recErr != nil {
			slog.Error("Failed to record interpolation", "error", recErr)
		}
	} else {
		// A difference at or above the threshold means a scene change.
		// Reuse the first frame instead of hallucinating a transition.
		interpolated = j.First

		if recErr := w.stats.RecordReused(ctx, w.GetID(), j.FrameIndex, ratio); recErr != nil {
			slog.Error("Failed to record frame reuse", "error", recErr)
		}

		slog.Debug("Scene change detected, reusing frame",
			"frame_index", j.FrameIndex, "ratio", ratio,
			"threshold", j.Params.DifferenceThreshold)
	}

	// Slot 0 holds the sequence's very first input frame. Only the job with
	// frame index 1 ever writes it.
	if j.FrameIndex == 1 {
		if err := w.slots.Set(0, j.First); err != nil {
			return err
		}
	}

	if err := w.slots.Set(2*j.FrameIndex-1, interpolated); err != nil {
		return err
	}
	if err := w.slots.Set(2*j.FrameIndex, j.Second); err != nil {
		return err
	}

	return nil
}

// sleep waits one poll interval, waking early on cancellation.
func (w *Worker) sleep(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(w.interval):
	}
}
