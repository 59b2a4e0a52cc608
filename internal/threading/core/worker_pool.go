package core

import (
	"runtime"
	"sync"
)

// WorkerPool runs jobs on a fixed set of goroutines. It is used for
// per-frame work that splits into independent chunks, such as wall rays.
type WorkerPool struct {
	numWorkers int
	jobs       chan func()
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a pool with numWorkers goroutines, or one per CPU
// when numWorkers is not positive. Call Start before submitting work.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		jobs:       make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobs:
			job()
		case <-wp.quit:
			return
		}
	}
}

// NumWorkers returns the number of worker goroutines.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// ParallelFor calls fn for every i in [start, end) and returns once all
// calls have finished. Small ranges run inline on the caller's goroutine.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if total <= 8 || wp.numWorkers == 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	chunk := max(4, total/wp.numWorkers)
	var wg sync.WaitGroup
	for i := start; i < end; i += chunk {
		lo, hi := i, min(i+chunk, end)
		wg.Add(1)
		wp.jobs <- func() {
			defer wg.Done()
			for j := lo; j < hi; j++ {
				fn(j)
			}
		}
	}
	wg.Wait()
}

// Stop terminates the workers. Pending jobs are abandoned.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}
