// Package rabbitmq implements an AMQP-backed job queue. It uses basic.get
// rather than a push consumer: the worker loop owns its own poll timing and
// must never block inside a queue call.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/BranchIntl/tweener/errors"
	"github.com/BranchIntl/tweener/job"
)

// Serializer interface for converting jobs to and from queue payloads
type Serializer interface {
	Serialize(j *job.Job) ([]byte, error)
	Deserialize(data []byte) (*job.Job, error)
	GetFormat() string
}

// Queue implements the core.Queue interface for RabbitMQ
type Queue struct {
	mu         sync.Mutex
	connection *amqp.Connection
	channel    *amqp.Channel
	options    Options
	serializer Serializer
}

// NewQueue creates a new RabbitMQ queue
func NewQueue(options Options, serializer Serializer) *Queue {
	return &Queue{
		options:    options,
		serializer: serializer,
	}
}

// Connect establishes the connection and channel and declares the queue
func (q *Queue) Connect(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	conn, err := amqp.Dial(q.options.URI)
	if err != nil {
		return errors.NewConnectionError(q.options.URI,
			fmt.Errorf("failed to connect to RabbitMQ: %w", err))
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return errors.NewConnectionError(q.options.URI,
			fmt.Errorf("failed to open channel: %w", err))
	}

	if _, err := ch.QueueDeclare(
		q.options.Queue,
		q.options.Durable,
		q.options.AutoDelete,
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return errors.NewQueueError("declare", q.options.Queue, err)
	}

	q.connection = conn
	q.channel = ch
	return nil
}

// Close closes the channel and connection
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel != nil {
		q.channel.Close()
		q.channel = nil
	}
	if q.connection != nil {
		err := q.connection.Close()
		q.connection = nil
		return err
	}
	return nil
}

// Health checks the connection health
func (q *Queue) Health() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.connection == nil || q.connection.IsClosed() {
		return errors.ErrNotConnected
	}
	return nil
}

// Type returns the queue type
func (q *Queue) Type() string {
	return "rabbitmq"
}

// Enqueue publishes a job to the queue
func (q *Queue) Enqueue(ctx context.Context, j *job.Job) error {
	data, err := q.serializer.Serialize(j)
	if err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel == nil {
		return errors.ErrNotConnected
	}

	if err := q.channel.PublishWithContext(ctx,
		"", // default exchange
		q.options.Queue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        data,
		},
	); err != nil {
		return errors.NewQueueError("enqueue", q.options.Queue, err)
	}

	return nil
}

// TryDequeue pulls one job without blocking. It returns (nil, nil) when the
// queue is empty. Messages are acked only after successful decoding; a
// payload that cannot be decoded is rejected without requeue.
func (q *Queue) TryDequeue(ctx context.Context) (*job.Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel == nil {
		return nil, errors.ErrNotConnected
	}

	msg, ok, err := q.channel.Get(q.options.Queue, false)
	if err != nil {
		return nil, errors.NewQueueError("dequeue", q.options.Queue, err)
	}
	if !ok {
		return nil, nil // No job available
	}

	j, err := q.serializer.Deserialize(msg.Body)
	if err != nil {
		if nackErr := msg.Nack(false, false); nackErr != nil {
			return nil, errors.NewQueueError("nack", q.options.Queue, nackErr)
		}
		return nil, err
	}

	if err := msg.Ack(false); err != nil {
		return nil, errors.NewQueueError("ack", q.options.Queue, err)
	}

	return j, nil
}

// Length returns the number of ready messages in the queue
func (q *Queue) Length(ctx context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.channel == nil {
		return 0, errors.ErrNotConnected
	}

	state, err := q.channel.QueueDeclarePassive(
		q.options.Queue,
		q.options.Durable,
		q.options.AutoDelete,
		false,
		false,
		nil,
	)
	if err != nil {
		return 0, errors.NewQueueError("length", q.options.Queue, err)
	}

	return int64(state.Messages), nil
}
