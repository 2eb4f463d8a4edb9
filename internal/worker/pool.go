// Package worker provides a bounded pool for running independent tasks
// concurrently. Page analysis is embarrassingly parallel per row; the pool
// only limits how many rows are in flight at once.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonesrussell/gofresh/internal/logger"
)

// PoolState represents the current state of the pool.
type PoolState int32

const (
	// PoolStateStopped means the pool is not running.
	PoolStateStopped PoolState = iota

	// PoolStateRunning means the pool is accepting tasks.
	PoolStateRunning

	// PoolStateDraining means the pool is shutting down gracefully.
	PoolStateDraining
)

// String returns the string representation of a pool state.
func (s PoolState) String() string {
	switch s {
	case PoolStateStopped:
		return "stopped"
	case PoolStateRunning:
		return "running"
	case PoolStateDraining:
		return "draining"
	default:
		return "unknown"
	}
}

// Task is one unit of work. Name is diagnostic only.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// PoolStats reports pool activity.
type PoolStats struct {
	State          PoolState
	PoolSize       int
	InFlight       int
	TasksProcessed int64
	TasksSucceeded int64
	TasksFailed    int64
}

// Pool runs tasks with bounded concurrency.
type Pool struct {
	config Config
	log    logger.Interface
	state  atomic.Int32
	sem    chan struct{}
	wg     sync.WaitGroup
	stopCh chan struct{}

	tasksProcessed atomic.Int64
	tasksSucceeded atomic.Int64
	tasksFailed    atomic.Int64
}

// NewPool creates a new worker pool.
func NewPool(cfg Config, log logger.Interface) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p := &Pool{
		config: cfg,
		log:    log,
		sem:    make(chan struct{}, cfg.PoolSize),
		stopCh: make(chan struct{}),
	}
	p.state.Store(int32(PoolStateStopped))

	return p, nil
}

// Start marks the pool as accepting tasks.
func (p *Pool) Start() error {
	if !p.state.CompareAndSwap(int32(PoolStateStopped), int32(PoolStateRunning)) {
		return errors.New("pool is already running")
	}

	p.log.Debug("worker pool started", "pool_size", p.config.PoolSize)
	return nil
}

// Stop drains the pool, waiting for in-flight tasks up to the drain
// timeout or the context deadline, whichever comes first.
func (p *Pool) Stop(ctx context.Context) error {
	if !p.state.CompareAndSwap(int32(PoolStateRunning), int32(PoolStateDraining)) {
		return errors.New("pool is not running")
	}

	close(p.stopCh)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Debug("worker pool stopped gracefully")
	case <-ctx.Done():
		p.log.Warn("worker pool stop cancelled")
	case <-time.After(p.config.DrainTimeout):
		p.log.Warn("worker pool drain timeout exceeded")
	}

	p.state.Store(int32(PoolStateStopped))
	return nil
}

// Submit runs a task on the pool, blocking while all slots are busy. The
// task's error is recorded in the pool stats, not returned; Submit errors
// only when the pool is unavailable or the context ends first.
func (p *Pool) Submit(ctx context.Context, task Task) error {
	if p.State() != PoolStateRunning {
		return errors.New("pool is not running")
	}
	if task.Run == nil {
		return errors.New("task has no run function")
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.stopCh:
		return errors.New("pool is stopping")
	}

	p.wg.Add(1)

	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()

		p.runTask(ctx, task)
	}()

	return nil
}

// Wait blocks until every submitted task has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// runTask executes one task with the configured timeout and records the
// outcome.
func (p *Pool) runTask(ctx context.Context, task Task) {
	if p.config.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.TaskTimeout)
		defer cancel()
	}

	err := task.Run(ctx)

	p.tasksProcessed.Add(1)
	if err != nil {
		p.tasksFailed.Add(1)
		p.log.Warn("task failed", "task", task.Name, "error", err.Error())
	} else {
		p.tasksSucceeded.Add(1)
	}
}

// State returns the current pool state.
func (p *Pool) State() PoolState {
	return PoolState(p.state.Load())
}

// IsRunning reports whether the pool accepts tasks.
func (p *Pool) IsRunning() bool {
	return p.State() == PoolStateRunning
}

// Size returns the pool size.
func (p *Pool) Size() int {
	return p.config.PoolSize
}

// InFlight returns the number of tasks currently running.
func (p *Pool) InFlight() int {
	return len(p.sem)
}

// Stats returns pool statistics.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		State:          p.State(),
		PoolSize:       p.config.PoolSize,
		InFlight:       p.InFlight(),
		TasksProcessed: p.tasksProcessed.Load(),
		TasksSucceeded: p.tasksSucceeded.Load(),
		TasksFailed:    p.tasksFailed.Load(),
	}
}
