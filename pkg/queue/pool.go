// Package queue runs chat turns on a bounded worker pool. A fixed set of
// core workers drains a buffered submission queue; surge workers spin up
// when the queue is full and exit once it drains.
package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrShuttingDown is returned by Submit once Stop has begun. API handlers
// translate it to 503.
var ErrShuttingDown = errors.New("worker pool is shutting down")

// ErrQueueFull is returned when the submission queue is at capacity and no
// surge worker slot is free.
var ErrQueueFull = errors.New("submission queue is full")

// Task is one unit of work. The pool passes a context cancelled on
// shutdown.
type Task func(ctx context.Context)

// Config sizes the pool.
type Config struct {
	CoreWorkers   int
	MaxWorkers    int
	QueueCapacity int
	ShutdownGrace time.Duration
}

// Pool is the bounded executor for chat turns.
type Pool struct {
	cfg    Config
	logger *slog.Logger

	tasks chan Task

	mu       sync.Mutex
	surge    int
	stopping bool

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}

	// baseCtx is cancelled only after the grace period expires, so running
	// tasks get a chance to finish cleanly.
	baseCtx    context.Context
	baseCancel context.CancelFunc
}

// NewPool creates a pool and starts its core workers.
func NewPool(cfg Config, logger *slog.Logger) *Pool {
	baseCtx, baseCancel := context.WithCancel(context.Background())
	p := &Pool{
		cfg:        cfg,
		logger:     logger.With("component", "queue"),
		tasks:      make(chan Task, cfg.QueueCapacity),
		stopCh:     make(chan struct{}),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}

	for i := 0; i < cfg.CoreWorkers; i++ {
		p.wg.Add(1)
		go p.coreWorker(fmt.Sprintf("core-%d", i))
	}
	p.logger.Info("Worker pool started",
		"core_workers", cfg.CoreWorkers,
		"max_workers", cfg.MaxWorkers,
		"queue_capacity", cfg.QueueCapacity)
	return p
}

// Submit enqueues a task. When the queue is full a surge worker is started,
// up to the configured maximum; beyond that ErrQueueFull is returned.
func (p *Pool) Submit(task Task) error {
	p.mu.Lock()
	if p.stopping {
		p.mu.Unlock()
		return ErrShuttingDown
	}

	select {
	case p.tasks <- task:
		p.mu.Unlock()
		return nil
	default:
	}

	// Queue full. Spin up a surge worker if the cap allows.
	if p.cfg.CoreWorkers+p.surge >= p.cfg.MaxWorkers {
		p.mu.Unlock()
		return ErrQueueFull
	}
	p.surge++
	name := fmt.Sprintf("surge-%d", p.surge)
	p.wg.Add(1)
	p.mu.Unlock()

	p.logger.Info("Starting surge worker", "worker", name)
	go p.surgeWorker(name, task)
	return nil
}

// QueueDepth returns the number of queued, not yet running tasks.
func (p *Pool) QueueDepth() int {
	return len(p.tasks)
}

// Stop rejects new submissions, waits up to the shutdown grace for running
// tasks, then cancels whatever is left.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopping = true
		p.mu.Unlock()
		close(p.stopCh)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.logger.Info("Worker pool drained")
		case <-time.After(p.cfg.ShutdownGrace):
			p.logger.Warn("Shutdown grace expired, cancelling running tasks",
				"grace", p.cfg.ShutdownGrace)
			p.baseCancel()
			<-done
		}
		p.baseCancel()
	})
}

func (p *Pool) coreWorker(name string) {
	defer p.wg.Done()
	logger := p.logger.With("worker", name)
	logger.Debug("Worker started")

	for {
		select {
		case <-p.stopCh:
			// Drain remaining queued tasks before exiting.
			for {
				select {
				case task := <-p.tasks:
					p.runTask(logger, task)
				default:
					logger.Debug("Worker stopped")
					return
				}
			}
		case task := <-p.tasks:
			p.runTask(logger, task)
		}
	}
}

// surgeWorker runs its trigger task, keeps draining while the queue has
// work, and exits as soon as it goes idle.
func (p *Pool) surgeWorker(name string, first Task) {
	defer func() {
		p.mu.Lock()
		p.surge--
		p.mu.Unlock()
		p.wg.Done()
		p.logger.Debug("Surge worker exited", "worker", name)
	}()

	logger := p.logger.With("worker", name)
	p.runTask(logger, first)

	for {
		select {
		case task := <-p.tasks:
			p.runTask(logger, task)
		default:
			return
		}
	}
}

func (p *Pool) runTask(logger *slog.Logger, task Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Task panicked", "panic", r)
		}
	}()
	task(p.baseCtx)
}
