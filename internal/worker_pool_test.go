package internal

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func submit(pool *WorkerPool, task func()) error {
	return pool.SubmitWithContext(context.Background(), func(context.Context) { task() })
}

func TestWorkerPool_Basic(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 5})
	defer pool.Close()

	var counter int64
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		err := submit(pool, func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		})
		if err != nil {
			t.Errorf("Failed to submit task: %v", err)
		}
	}

	wg.Wait()

	if atomic.LoadInt64(&counter) != 10 {
		t.Errorf("Expected 10 tasks completed, got %d", atomic.LoadInt64(&counter))
	}

	if stats := pool.Stats(); stats.TotalTasks != 10 {
		t.Errorf("Expected 10 total tasks, got %d", stats.TotalTasks)
	}
}

func TestWorkerPool_BoundsConcurrency(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 3})
	defer pool.Close()

	var running, peak int64
	var wg sync.WaitGroup

	for i := 0; i < 12; i++ {
		wg.Add(1)
		err := submit(pool, func() {
			defer wg.Done()
			now := atomic.AddInt64(&running, 1)
			for {
				seen := atomic.LoadInt64(&peak)
				if now <= seen || atomic.CompareAndSwapInt64(&peak, seen, now) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt64(&running, -1)
		})
		if err != nil {
			t.Fatalf("Failed to submit task: %v", err)
		}
	}

	wg.Wait()

	if peak > 3 {
		t.Errorf("Expected at most 3 concurrent tasks, saw %d", peak)
	}
}

func TestWorkerPool_DefaultSize(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{})
	defer pool.Close()

	if pool.Stats().MaxWorkers <= 0 {
		t.Errorf("Expected a positive default size, got %d", pool.Stats().MaxWorkers)
	}
}

func TestWorkerPool_Resize(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 2})
	defer pool.Close()

	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	if err := submit(pool, func() {
		defer wg.Done()
		<-release
	}); err != nil {
		t.Fatalf("Failed to submit task: %v", err)
	}

	pool.Resize(4)
	if got := pool.Stats().MaxWorkers; got != 4 {
		t.Errorf("Expected max workers 4, got %d", got)
	}

	// Ignored
	pool.Resize(0)
	if got := pool.Stats().MaxWorkers; got != 4 {
		t.Errorf("Expected max workers to stay 4, got %d", got)
	}

	close(release)
	wg.Wait()

	// The task above released its slot into the old channel; new work must
	// still run after the resize.
	done := make(chan struct{})
	if err := submit(pool, func() { close(done) }); err != nil {
		t.Fatalf("Failed to submit task: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Task did not run after resize")
	}
}

func TestWorkerPool_SubmitWithContext(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 1})
	defer pool.Close()

	release := make(chan struct{})
	defer close(release)
	if err := submit(pool, func() { <-release }); err != nil {
		t.Fatalf("Failed to submit task: %v", err)
	}

	if !pool.IsOverloaded() {
		t.Error("Expected pool to be overloaded")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.SubmitWithContext(ctx, func(context.Context) {
		t.Error("Task should not run")
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func TestWorkerPool_Each(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 4})
	defer pool.Close()

	results := make([]int, 20)
	err := pool.Each(context.Background(), len(results), func(_ context.Context, i int) {
		results[i] = i * i
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i, v := range results {
		if v != i*i {
			t.Errorf("Expected results[%d] = %d, got %d", i, i*i, v)
		}
	}
}

func TestWorkerPool_Close(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 2})

	var finished int64
	for i := 0; i < 4; i++ {
		if err := submit(pool, func() {
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&finished, 1)
		}); err != nil {
			t.Fatalf("Failed to submit task: %v", err)
		}
	}

	if err := pool.Close(); err != nil {
		t.Fatalf("Expected no error closing, got %v", err)
	}
	if atomic.LoadInt64(&finished) != 4 {
		t.Errorf("Expected Close to wait for 4 tasks, got %d", finished)
	}

	if err := submit(pool, func() {}); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Expected ErrPoolClosed, got %v", err)
	}
}

func TestWorkerPool_SubmitRacingClose(t *testing.T) {
	for round := 0; round < 50; round++ {
		pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 4})

		var accepted, finished int64
		var submitters sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < 16; i++ {
			submitters.Add(1)
			go func() {
				defer submitters.Done()
				<-start
				err := submit(pool, func() { atomic.AddInt64(&finished, 1) })
				if err == nil {
					atomic.AddInt64(&accepted, 1)
				} else if !errors.Is(err, ErrPoolClosed) {
					t.Errorf("Expected ErrPoolClosed, got %v", err)
				}
			}()
		}

		close(start)
		if err := pool.Close(); err != nil {
			t.Fatalf("Expected no error closing, got %v", err)
		}
		// Close has returned, so every task accepted before it has run.
		doneAtClose := atomic.LoadInt64(&finished)
		submitters.Wait()

		if got := atomic.LoadInt64(&accepted); got != doneAtClose {
			t.Fatalf("round %d: %d tasks accepted, %d finished when Close returned", round, got, doneAtClose)
		}
	}
}

func TestWorkerPool_CloseWithTimeout(t *testing.T) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 1})

	release := make(chan struct{})
	defer close(release)
	if err := submit(pool, func() { <-release }); err != nil {
		t.Fatalf("Failed to submit task: %v", err)
	}

	if err := pool.CloseWithTimeout(10 * time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline exceeded, got %v", err)
	}
}

func BenchmarkWorkerPool_Submit(b *testing.B) {
	pool := NewWorkerPool(WorkerPoolConfig{MaxWorkers: 8})
	defer pool.Close()

	var wg sync.WaitGroup
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		wg.Add(1)
		_ = submit(pool, wg.Done)
	}
	wg.Wait()
}
