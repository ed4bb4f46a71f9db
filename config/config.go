// Package config provides configuration loading for the tweener daemon.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/BranchIntl/tweener/errors"
)

// Config represents the full configuration for a tweener worker process.
type Config struct {
	// Queue selects and configures the job queue backend.
	Queue QueueConfig `yaml:"queue"`

	// Pairs is the number of input frame pairs the run will process; it
	// sizes the shared output buffer (2*pairs+1 slots).
	Pairs int `yaml:"pairs"`

	// Concurrency is the number of parallel workers.
	Concurrency int `yaml:"concurrency"`

	// PollIntervalMs is the pause/empty-queue poll interval.
	PollIntervalMs int `yaml:"poll_interval_ms"`

	// Device is the accelerator index passed to processor constructors.
	Device int `yaml:"device"`

	// ShutdownTimeoutMs bounds graceful shutdown.
	ShutdownTimeoutMs int `yaml:"shutdown_timeout_ms"`
}

// QueueConfig represents queue backend settings.
type QueueConfig struct {
	// Type is one of "memory", "redis", "rabbitmq".
	Type string `yaml:"type"`

	// URI is the broker connection URI (redis, rabbitmq).
	URI string `yaml:"uri"`

	// Name is the queue name (redis, rabbitmq).
	Name string `yaml:"name"`

	// Namespace is the key prefix (redis).
	Namespace string `yaml:"namespace"`

	// Size is the buffer capacity (memory).
	Size int `yaml:"size"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Queue: QueueConfig{
			Type:      "memory",
			Name:      "interpolation",
			Namespace: "tweener:",
			Size:      1024,
		},
		Pairs:             0,
		Concurrency:       2,
		PollIntervalMs:    100,
		Device:            0,
		ShutdownTimeoutMs: 30000,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration consistency.
func (c Config) Validate() error {
	switch c.Queue.Type {
	case "memory", "redis", "rabbitmq":
	default:
		return fmt.Errorf("%w: unknown queue type %q",
			errors.ErrInvalidConfig, c.Queue.Type)
	}

	if c.Pairs < 0 {
		return fmt.Errorf("%w: pairs must not be negative", errors.ErrInvalidConfig)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1", errors.ErrInvalidConfig)
	}
	if c.PollIntervalMs < 1 {
		return fmt.Errorf("%w: poll interval must be at least 1ms", errors.ErrInvalidConfig)
	}
	if c.Device < 0 {
		return fmt.Errorf("%w: device must not be negative", errors.ErrInvalidConfig)
	}

	return nil
}

// PollInterval returns the poll interval as a duration.
func (c Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

// ShutdownTimeout returns the shutdown timeout as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}
