package internal

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ErrPoolClosed is returned when work is submitted after Close.
var ErrPoolClosed = errors.New("worker pool closed")

// WorkerPool bounds the number of tasks running at once. Tasks run on their
// own goroutines; a slot is held for the lifetime of each task.
type WorkerPool struct {
	// slots is swapped by Resize; a running task releases the channel it
	// acquired from.
	slots      chan struct{}
	maxWorkers int
	mutex      sync.RWMutex

	activeWorkers int64
	totalTasks    int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// lifecycle orders wg.Add in Submit before wg.Wait in Close.
	lifecycle sync.RWMutex
	closed    bool
}

// WorkerPoolConfig holds configuration for worker pool creation
type WorkerPoolConfig struct {
	MaxWorkers int
}

// WorkerPoolStats is a snapshot of pool counters.
type WorkerPoolStats struct {
	ActiveWorkers int64 `json:"active_workers"`
	TotalTasks    int64 `json:"total_tasks"`
	MaxWorkers    int   `json:"max_workers"`
}

// NewWorkerPool creates a worker pool. A non-positive MaxWorkers defaults to
// twice the CPU count.
func NewWorkerPool(config WorkerPoolConfig) *WorkerPool {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = runtime.NumCPU() * 2
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		slots:      make(chan struct{}, config.MaxWorkers),
		maxWorkers: config.MaxWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// SubmitWithContext runs task once a slot is free, giving up when ctx is
// done first.
func (wp *WorkerPool) SubmitWithContext(ctx context.Context, task func(ctx context.Context)) error {
	slots, err := wp.acquire(ctx)
	if err != nil {
		return err
	}

	wp.lifecycle.RLock()
	if wp.closed {
		wp.lifecycle.RUnlock()
		<-slots
		return ErrPoolClosed
	}
	wp.wg.Add(1)
	wp.lifecycle.RUnlock()

	atomic.AddInt64(&wp.activeWorkers, 1)
	atomic.AddInt64(&wp.totalTasks, 1)

	go func() {
		defer func() {
			<-slots
			atomic.AddInt64(&wp.activeWorkers, -1)
			wp.wg.Done()
		}()

		task(ctx)
	}()

	return nil
}

func (wp *WorkerPool) acquire(ctx context.Context) (chan struct{}, error) {
	if wp.ctx.Err() != nil {
		return nil, ErrPoolClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	wp.mutex.RLock()
	slots := wp.slots
	wp.mutex.RUnlock()

	select {
	case slots <- struct{}{}:
		return slots, nil
	case <-wp.ctx.Done():
		return nil, ErrPoolClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Each calls fn for every index in [0, n) on the pool and waits for all of
// them. Tasks that could not be scheduled are reported through the returned
// error; the remaining indexes still run.
func (wp *WorkerPool) Each(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	var (
		wg       sync.WaitGroup
		firstErr error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		err := wp.SubmitWithContext(ctx, func(ctx context.Context) {
			defer wg.Done()
			fn(ctx, i)
		})
		if err != nil {
			wg.Done()
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	wg.Wait()
	return firstErr
}

// Resize changes the number of slots. Running tasks keep the slot they hold,
// so the pool can briefly exceed a reduced size.
func (wp *WorkerPool) Resize(newSize int) {
	if newSize <= 0 {
		return
	}

	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if newSize == wp.maxWorkers {
		return
	}
	wp.maxWorkers = newSize
	wp.slots = make(chan struct{}, newSize)
}

// Stats returns current worker pool counters.
func (wp *WorkerPool) Stats() WorkerPoolStats {
	wp.mutex.RLock()
	maxWorkers := wp.maxWorkers
	wp.mutex.RUnlock()

	return WorkerPoolStats{
		ActiveWorkers: atomic.LoadInt64(&wp.activeWorkers),
		TotalTasks:    atomic.LoadInt64(&wp.totalTasks),
		MaxWorkers:    maxWorkers,
	}
}

// IsOverloaded reports whether every slot is taken.
func (wp *WorkerPool) IsOverloaded() bool {
	stats := wp.Stats()
	return stats.ActiveWorkers >= int64(stats.MaxWorkers)
}

// Close stops accepting tasks and waits for running ones.
func (wp *WorkerPool) Close() error {
	wp.shutdown()
	wp.wg.Wait()
	return nil
}

// CloseWithTimeout stops accepting tasks and waits up to timeout for running
// ones.
func (wp *WorkerPool) CloseWithTimeout(timeout time.Duration) error {
	wp.shutdown()

	done := make(chan struct{})
	go func() {
		wp.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return context.DeadlineExceeded
	}
}

func (wp *WorkerPool) shutdown() {
	wp.cancel()

	wp.lifecycle.Lock()
	wp.closed = true
	wp.lifecycle.Unlock()
}
