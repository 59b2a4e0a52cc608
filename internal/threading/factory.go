package threading

import (
	"raycore/internal/monitoring"
	"raycore/internal/threading/core"
)

// Components holds the frame loop's concurrency helpers.
type Components struct {
	Pool    *core.WorkerPool
	Monitor *monitoring.FrameMonitor
}

// NewComponents starts a wall-casting pool with workers goroutines (one per
// CPU when workers is not positive) and a fresh frame monitor.
func NewComponents(workers int) *Components {
	pool := core.NewWorkerPool(workers)
	pool.Start()
	return &Components{
		Pool:    pool,
		Monitor: monitoring.NewFrameMonitor(),
	}
}

// Shutdown stops the worker pool. It is safe to call more than once.
func (c *Components) Shutdown() {
	if c.Pool != nil {
		c.Pool.Stop()
	}
}
