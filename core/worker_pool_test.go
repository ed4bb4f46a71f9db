package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BranchIntl/tweener/frame"
	"github.com/BranchIntl/tweener/job"
)

func TestWorkerPool_ProcessesAcrossWorkers(t *testing.T) {
	blended := SolidFrame(4, 4, 99)
	setup := NewTestSetup(8, blended)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	prev := SolidFrame(4, 4, 0)
	for k := 1; k <= 8; k++ {
		next := SolidFrame(4, 4, byte(k))
		require.NoError(t, setup.Queue.Enqueue(ctx, PairJob(k, prev, next, 50)))
		prev = next
	}

	pool := NewWorkerPool(
		setup.Queue, setup.Slots, setup.Stats, setup.Table,
		3, 0, 5*time.Millisecond, &setup.Pause,
	)

	done := make(chan error, 1)
	go func() { done <- pool.Start(ctx) }()

	assert.True(t, WaitFor(t, 2*time.Second, func() bool {
		return setup.Slots.Written() == 17
	}))

	pool.Stop()
	assert.NoError(t, <-done)

	for k := 1; k <= 8; k++ {
		assert.True(t, frame.Equal(blended, setup.Slots.Get(2*k-1)), "slot %d", 2*k-1)
		assert.NotNil(t, setup.Slots.Get(2*k), "slot %d", 2*k)
	}
}

func TestWorkerPool_RegistriesAreNotShared(t *testing.T) {
	blended := SolidFrame(4, 4, 99)
	setup := NewTestSetup(4, blended)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Force both workers to interpolate at least once by keeping the queue
	// saturated relative to the poll interval.
	f := SolidFrame(4, 4, 10)
	for k := 1; k <= 4; k++ {
		require.NoError(t, setup.Queue.Enqueue(ctx, PairJob(k, f, f, 50)))
	}

	pool := NewWorkerPool(
		setup.Queue, setup.Slots, setup.Stats, setup.Table,
		2, 0, 5*time.Millisecond, &setup.Pause,
	)

	done := make(chan error, 1)
	go func() { done <- pool.Start(ctx) }()

	assert.True(t, WaitFor(t, 2*time.Second, func() bool {
		return setup.Slots.Written() == 9
	}))

	pool.Stop()
	assert.NoError(t, <-done)

	// Each worker that interpolated built its own instance; the cache is
	// never shared, so constructions can exceed one but never the worker
	// count.
	assert.GreaterOrEqual(t, setup.Constructions(), 1)
	assert.LessOrEqual(t, setup.Constructions(), 2)
}

func TestWorkerPool_FatalErrorDoesNotStopSiblings(t *testing.T) {
	blended := SolidFrame(4, 4, 99)
	setup := NewTestSetup(4, blended)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	f := SolidFrame(4, 4, 10)
	bad := job.New(1, f, f, job.Params{DifferenceThreshold: 50, Algorithm: "nope"})
	require.NoError(t, setup.Queue.Enqueue(ctx, bad))
	require.NoError(t, setup.Queue.Enqueue(ctx, PairJob(2, f, f, 50)))
	require.NoError(t, setup.Queue.Enqueue(ctx, PairJob(3, f, f, 50)))

	pool := NewWorkerPool(
		setup.Queue, setup.Slots, setup.Stats, setup.Table,
		2, 0, 5*time.Millisecond, &setup.Pause,
	)

	done := make(chan error, 1)
	go func() { done <- pool.Start(ctx) }()

	// The surviving worker drains the two good jobs.
	assert.True(t, WaitFor(t, 2*time.Second, func() bool {
		return setup.Slots.Written() == 4
	}))

	pool.Stop()
	err := <-done
	require.Error(t, err)
	assert.Equal(t, err, pool.Err())
}

func TestWorkerPool_ActiveWorkers(t *testing.T) {
	setup := NewTestSetup(1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := NewWorkerPool(
		setup.Queue, setup.Slots, setup.Stats, setup.Table,
		3, 0, 5*time.Millisecond, &setup.Pause,
	)

	done := make(chan error, 1)
	go func() { done <- pool.Start(ctx) }()

	assert.True(t, WaitFor(t, time.Second, func() bool {
		return pool.ActiveWorkers() == 3
	}))

	cancel()
	assert.NoError(t, <-done)
	assert.Equal(t, 0, pool.ActiveWorkers())
}
