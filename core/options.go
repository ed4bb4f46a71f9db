package core

import (
	"time"
)

// Config holds engine configuration
type Config struct {
	// Concurrency is the number of parallel workers.
	Concurrency int

	// PollInterval is how long a worker sleeps when paused or when the
	// queue is empty.
	PollInterval time.Duration

	// Device is the accelerator index processors are constructed with.
	Device int

	// ShutdownTimeout bounds the graceful shutdown wait.
	ShutdownTimeout time.Duration
}

// EngineOption is a function that modifies engine configuration
type EngineOption func(*Config)

// defaultConfig returns default configuration
func defaultConfig() *Config {
	return &Config{
		Concurrency:     2,
		PollInterval:    100 * time.Millisecond,
		Device:          0,
		ShutdownTimeout: 30 * time.Second,
	}
}

// WithConcurrency sets the number of concurrent workers
func WithConcurrency(n int) EngineOption {
	return func(c *Config) {
		c.Concurrency = n
	}
}

// WithPollInterval sets the pause/empty-queue poll interval
func WithPollInterval(d time.Duration) EngineOption {
	return func(c *Config) {
		c.PollInterval = d
	}
}

// WithDevice sets the accelerator device index for processor construction
func WithDevice(device int) EngineOption {
	return func(c *Config) {
		c.Device = device
	}
}

// WithShutdownTimeout sets the graceful shutdown timeout
func WithShutdownTimeout(d time.Duration) EngineOption {
	return func(c *Config) {
		c.ShutdownTimeout = d
	}
}
