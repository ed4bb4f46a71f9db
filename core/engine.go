package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/job"
)

// Engine wires a job queue, a slot buffer, a statistics backend and an
// algorithm table into a supervised worker pool. It owns the process-wide
// pause flag and the shutdown sequence; per-worker lifecycle lives in
// Worker.
type Engine struct {
	queue  Queue
	stats  Statistics
	slots  SlotWriter
	table  *algorithms.Table
	config *Config

	pause      atomic.Bool
	workerPool *WorkerPool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates a new engine with dependency injection
func NewEngine(
	queue Queue,
	stats Statistics,
	slots SlotWriter,
	table *algorithms.Table,
	options ...EngineOption,
) *Engine {
	config := defaultConfig()
	for _, opt := range options {
		opt(config)
	}

	return &Engine{
		queue:  queue,
		stats:  stats,
		slots:  slots,
		table:  table,
		config: config,
	}
}

// Start connects the queue and statistics backends and launches the worker
// pool.
func (e *Engine) Start(ctx context.Context) error {
	e.ctx, e.cancel = context.WithCancel(ctx)

	if err := e.queue.Connect(e.ctx); err != nil {
		return errors.NewConnectionError("",
			fmt.Errorf("failed to connect queue: %w", err))
	}

	if err := e.stats.Connect(e.ctx); err != nil {
		return errors.NewConnectionError("",
			fmt.Errorf("failed to connect statistics: %w", err))
	}

	e.workerPool = NewWorkerPool(
		e.queue,
		e.slots,
		e.stats,
		e.table,
		e.config.Concurrency,
		e.config.Device,
		e.config.PollInterval,
		&e.pause,
	)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.workerPool.Start(e.ctx); err != nil {
			slog.Error("Worker pool error", "error", err)
		}
	}()

	slog.Info("Engine started",
		"queue", e.queue.Type(), "workers", e.config.Concurrency)
	return nil
}

// Stop gracefully shuts down the engine
func (e *Engine) Stop() error {
	if e.cancel != nil {
		e.cancel()
	}

	// Wait for graceful shutdown
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Engine stopped gracefully")
	case <-time.After(e.config.ShutdownTimeout):
		slog.Warn("Engine shutdown timeout exceeded")
	}

	// Close connections
	if err := e.queue.Close(); err != nil {
		slog.Error("Error closing queue", "error", err)
	}

	if err := e.stats.Close(); err != nil {
		slog.Error("Error closing statistics", "error", err)
	}

	return nil
}

// Pause sets the shared pause flag. Workers observe it within one poll
// interval and stop dequeueing until Resume; no jobs are lost or reordered.
func (e *Engine) Pause() {
	e.pause.Store(true)
	slog.Info("Engine paused")
}

// Resume clears the shared pause flag.
func (e *Engine) Resume() {
	e.pause.Store(false)
	slog.Info("Engine resumed")
}

// Paused reports the current pause flag value.
func (e *Engine) Paused() bool {
	return e.pause.Load()
}

// Wait blocks until every worker has exited and returns the first fatal
// worker error, if any. Restart and redistribution policy belongs to the
// caller.
func (e *Engine) Wait() error {
	e.wg.Wait()
	if e.workerPool != nil {
		return e.workerPool.Err()
	}
	return nil
}

// Health returns the current health status
func (e *Engine) Health() HealthStatus {
	var queued int64
	if length, err := e.queue.Length(e.ctx); err == nil {
		queued = length
	}

	queueHealth := e.queue.Health()
	statsHealth := e.stats.Health()

	return HealthStatus{
		Healthy:       queueHealth == nil && statsHealth == nil,
		QueueHealth:   queueHealth,
		StatsHealth:   statsHealth,
		ActiveWorkers: e.workerPool.ActiveWorkers(),
		QueuedJobs:    queued,
		SlotsWritten:  e.slots.Written(),
		Paused:        e.pause.Load(),
		LastCheck:     time.Now(),
	}
}

// Enqueue adds a job to the queue
func (e *Engine) Enqueue(j *job.Job) error {
	return e.queue.Enqueue(e.ctx, j)
}

// Run starts the engine and blocks until shutdown signals are received.
// This is a convenience method that combines Start() + signal handling +
// Stop().
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Start(ctx); err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		slog.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
	}

	return e.Stop()
}
