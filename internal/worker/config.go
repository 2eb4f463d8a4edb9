package worker

import (
	"errors"
	"time"
)

// Default pool settings.
const (
	DefaultPoolSize     = 4
	DefaultTaskTimeout  = 2 * time.Minute
	DefaultDrainTimeout = 30 * time.Second
)

// Config configures a worker pool.
type Config struct {
	// PoolSize is the number of tasks allowed in flight at once.
	PoolSize int

	// TaskTimeout bounds how long a single task may run. Zero means no
	// per-task timeout.
	TaskTimeout time.Duration

	// DrainTimeout bounds how long Stop waits for in-flight tasks.
	DrainTimeout time.Duration
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		PoolSize:     DefaultPoolSize,
		TaskTimeout:  DefaultTaskTimeout,
		DrainTimeout: DefaultDrainTimeout,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.PoolSize < 1 {
		return errors.New("pool size must be at least 1")
	}
	if c.TaskTimeout < 0 {
		return errors.New("task timeout must not be negative")
	}
	if c.DrainTimeout <= 0 {
		return errors.New("drain timeout must be positive")
	}
	return nil
}
