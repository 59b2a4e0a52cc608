package core

import (
	"sync/atomic"
	"testing"
)

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Start()
	defer pool.Stop()

	for _, n := range []int{0, 3, 9, 640, 1001} {
		hits := make([]int32, n)
		pool.ParallelFor(0, n, func(i int) {
			atomic.AddInt32(&hits[i], 1)
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
	}
}

func TestNewWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.NumWorkers() <= 0 {
		t.Fatalf("expected positive worker count, got %d", pool.NumWorkers())
	}
	pool.Stop()
	pool.Stop()
}
