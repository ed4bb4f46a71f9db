package tweener

import (
	"fmt"

	"github.com/BranchIntl/tweener/algorithms"
	"github.com/BranchIntl/tweener/algorithms/blend"
	"github.com/BranchIntl/tweener/config"
	"github.com/BranchIntl/tweener/core"
	memoryqueue "github.com/BranchIntl/tweener/queues/memory"
	"github.com/BranchIntl/tweener/queues/rabbitmq"
	redisqueue "github.com/BranchIntl/tweener/queues/redis"
	jsonserializer "github.com/BranchIntl/tweener/serializers/json"
	"github.com/BranchIntl/tweener/slots"
	"github.com/BranchIntl/tweener/statistics/memory"
)

// DefaultTable returns a constructor table with the built-in algorithms
// registered. Callers add accelerator-backed engines on top.
func DefaultTable() *algorithms.Table {
	table := algorithms.NewTable()
	table.Register(blend.Name, blend.New)
	return table
}

// NewQueue builds a queue from configuration.
func NewQueue(cfg config.QueueConfig) (core.Queue, error) {
	switch cfg.Type {
	case "memory":
		opts := memoryqueue.DefaultOptions()
		if cfg.Size > 0 {
			opts.Size = cfg.Size
		}
		return memoryqueue.NewQueue(opts), nil

	case "redis":
		opts := redisqueue.DefaultOptions()
		if cfg.URI != "" {
			opts.URI = cfg.URI
		}
		if cfg.Name != "" {
			opts.Queue = cfg.Name
		}
		if cfg.Namespace != "" {
			opts.Namespace = cfg.Namespace
		}
		return redisqueue.NewQueue(opts, jsonserializer.NewSerializer()), nil

	case "rabbitmq":
		opts := rabbitmq.DefaultOptions()
		if cfg.URI != "" {
			opts.URI = cfg.URI
		}
		if cfg.Name != "" {
			opts.Queue = cfg.Name
		}
		return rabbitmq.NewQueue(opts, jsonserializer.NewSerializer()), nil

	default:
		return nil, fmt.Errorf("unsupported queue type: %s", cfg.Type)
	}
}

// NewEngine assembles an engine, its queue and its output buffer from
// configuration. The returned buffer is what the downstream consumer drains.
func NewEngine(cfg config.Config, table *algorithms.Table) (*core.Engine, *slots.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	queue, err := NewQueue(cfg.Queue)
	if err != nil {
		return nil, nil, err
	}

	stats := memory.NewStatistics()
	buffer := slots.NewForPairs(cfg.Pairs)

	engine := core.NewEngine(
		queue,
		stats,
		buffer,
		table,
		core.WithConcurrency(cfg.Concurrency),
		core.WithPollInterval(cfg.PollInterval()),
		core.WithDevice(cfg.Device),
		core.WithShutdownTimeout(cfg.ShutdownTimeout()),
	)

	return engine, buffer, nil
}
