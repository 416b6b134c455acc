package queue

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(core, max, queueCap int) *Pool {
	return NewPool(Config{
		CoreWorkers:   core,
		MaxWorkers:    max,
		QueueCapacity: queueCap,
		ShutdownGrace: 2 * time.Second,
	}, slog.Default())
}

func TestPool_RunsSubmittedTasks(t *testing.T) {
	p := newTestPool(2, 4, 10)
	defer p.Stop()

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		err := p.Submit(func(ctx context.Context) {
			defer wg.Done()
			ran.Add(1)
		})
		require.NoError(t, err)
	}
	wg.Wait()
	assert.Equal(t, int32(20), ran.Load())
}

func TestPool_SubmitAfterStopReturnsErrShuttingDown(t *testing.T) {
	p := newTestPool(1, 2, 5)
	p.Stop()

	err := p.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestPool_SurgeWorkerWhenQueueFull(t *testing.T) {
	p := newTestPool(1, 2, 1)
	defer p.Stop()

	block := make(chan struct{})
	var wg sync.WaitGroup

	// Occupy the core worker.
	wg.Add(1)
	require.NoError(t, p.Submit(func(ctx context.Context) {
		defer wg.Done()
		<-block
	}))
	// Fill the queue.
	wg.Add(1)
	require.NoError(t, p.Submit(func(ctx context.Context) { wg.Done() }))

	// Queue full now; this submission must be picked up by a surge worker
	// even though the core worker is blocked.
	surged := make(chan struct{})
	wg.Add(1)
	require.NoError(t, p.Submit(func(ctx context.Context) {
		defer wg.Done()
		close(surged)
	}))

	select {
	case <-surged:
	case <-time.After(2 * time.Second):
		t.Fatal("surge task did not run while core worker was blocked")
	}

	close(block)
	wg.Wait()
}

func TestPool_QueueFullAtMaxWorkers(t *testing.T) {
	p := newTestPool(1, 1, 1)
	defer p.Stop()

	block := make(chan struct{})
	defer close(block)

	require.NoError(t, p.Submit(func(ctx context.Context) { <-block }))
	require.NoError(t, p.Submit(func(ctx context.Context) {}))

	// Core worker busy, queue full, no surge slots left.
	err := p.Submit(func(ctx context.Context) {})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestPool_StopDrainsQueuedTasks(t *testing.T) {
	p := newTestPool(1, 2, 10)

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit(func(ctx context.Context) {
			time.Sleep(10 * time.Millisecond)
			ran.Add(1)
		}))
	}

	p.Stop()
	assert.Equal(t, int32(5), ran.Load(), "queued tasks must finish within the grace period")
}

func TestPool_TaskPanicDoesNotKillWorker(t *testing.T) {
	p := newTestPool(1, 1, 5)
	defer p.Stop()

	require.NoError(t, p.Submit(func(ctx context.Context) { panic("boom") }))

	done := make(chan struct{})
	require.NoError(t, p.Submit(func(ctx context.Context) { close(done) }))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive a panicking task")
	}
}
