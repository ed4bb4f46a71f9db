// Package redis implements a Redis-backed job queue for multi-process
// worker fleets. Jobs live on a single list; LPOP keeps the dequeue
// non-blocking so worker loops can keep observing their control flags.
package redis

import (
	"context"
	"fmt"

	"github.com/gomodule/redigo/redis"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/job"
)

// Serializer interface for converting jobs to and from queue payloads
type Serializer interface {
	Serialize(j *job.Job) ([]byte, error)
	Deserialize(data []byte) (*job.Job, error)
	GetFormat() string
}

// Queue implements the core.Queue interface for Redis
type Queue struct {
	pool       *redis.Pool
	options    Options
	serializer Serializer
}

// NewQueue creates a new Redis queue
func NewQueue(options Options, serializer Serializer) *Queue {
	return &Queue{
		options:    options,
		serializer: serializer,
	}
}

// Connect establishes connection to Redis
func (q *Queue) Connect(ctx context.Context) error {
	q.pool = createPool(q.options)

	conn := q.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("PING"); err != nil {
		return errors.NewConnectionError(q.options.URI,
			fmt.Errorf("ping failed: %w", err))
	}

	return nil
}

// Close closes the Redis connection pool
func (q *Queue) Close() error {
	if q.pool != nil {
		return q.pool.Close()
	}
	return nil
}

// Health checks the Redis connection health
func (q *Queue) Health() error {
	if q.pool == nil {
		return errors.ErrNotConnected
	}

	conn := q.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("PING"); err != nil {
		return errors.NewConnectionError(q.options.URI,
			fmt.Errorf("health check failed: %w", err))
	}

	return nil
}

// Type returns the queue type
func (q *Queue) Type() string {
	return "redis"
}

// Enqueue adds a job to the queue
func (q *Queue) Enqueue(ctx context.Context, j *job.Job) error {
	if q.pool == nil {
		return errors.ErrNotConnected
	}

	conn := q.pool.Get()
	defer conn.Close()

	data, err := q.serializer.Serialize(j)
	if err != nil {
		return err
	}

	if _, err := conn.Do("RPUSH", q.queueKey(), data); err != nil {
		return errors.NewQueueError("enqueue", q.options.Queue, err)
	}

	return nil
}

// TryDequeue removes one job without blocking. It returns (nil, nil) when
// the queue is empty.
func (q *Queue) TryDequeue(ctx context.Context) (*job.Job, error) {
	if q.pool == nil {
		return nil, errors.ErrNotConnected
	}

	conn := q.pool.Get()
	defer conn.Close()

	reply, err := conn.Do("LPOP", q.queueKey())
	if err != nil {
		return nil, errors.NewQueueError("dequeue", q.options.Queue, err)
	}

	if reply == nil {
		return nil, nil // No job available
	}

	data, ok := reply.([]byte)
	if !ok {
		return nil, errors.NewQueueError("dequeue", q.options.Queue,
			fmt.Errorf("unexpected data type: %T", reply))
	}

	return q.serializer.Deserialize(data)
}

// Length returns the number of jobs in the queue
func (q *Queue) Length(ctx context.Context) (int64, error) {
	if q.pool == nil {
		return 0, errors.ErrNotConnected
	}

	conn := q.pool.Get()
	defer conn.Close()

	length, err := redis.Int64(conn.Do("LLEN", q.queueKey()))
	if err != nil {
		return 0, errors.NewQueueError("length", q.options.Queue, err)
	}

	return length, nil
}

func (q *Queue) queueKey() string {
	return fmt.Sprintf("%squeue:%s", q.options.Namespace, q.options.Queue)
}
