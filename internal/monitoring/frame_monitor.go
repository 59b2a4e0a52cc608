package monitoring

import (
	"sync/atomic"
	"time"
)

// FrameMonitor tracks per-frame render and navigation counters. Counters for
// the frame in progress are folded into the totals by EndFrame.
type FrameMonitor struct {
	frameCount atomic.Uint64
	frameTime  atomic.Int64 // nanoseconds, last frame
	avgFrame   atomic.Int64 // nanoseconds, exponential moving average

	queueLen    atomic.Int64
	projected   atomic.Int64
	culled      atomic.Int64
	pathQueries atomic.Int64
	advanced    atomic.Int64

	totalPathQueries atomic.Uint64
	startTime        time.Time
}

// NewFrameMonitor returns a monitor whose uptime starts now.
func NewFrameMonitor() *FrameMonitor {
	return &FrameMonitor{startTime: time.Now()}
}

// FrameTimer measures one frame.
type FrameTimer struct {
	monitor *FrameMonitor
	start   time.Time
}

// StartFrame resets the per-frame counters and starts timing.
func (fm *FrameMonitor) StartFrame() *FrameTimer {
	fm.queueLen.Store(0)
	fm.projected.Store(0)
	fm.culled.Store(0)
	fm.pathQueries.Store(0)
	fm.advanced.Store(0)
	return &FrameTimer{monitor: fm, start: time.Now()}
}

// EndFrame records the frame duration.
func (ft *FrameTimer) EndFrame() {
	ft.monitor.recordFrame(time.Since(ft.start))
}

func (fm *FrameMonitor) recordFrame(d time.Duration) {
	n := fm.frameCount.Add(1)
	fm.frameTime.Store(d.Nanoseconds())
	if n == 1 {
		fm.avgFrame.Store(d.Nanoseconds())
		return
	}
	// alpha = 1/16
	avg := fm.avgFrame.Load()
	fm.avgFrame.Store(avg + (d.Nanoseconds()-avg)/16)
}

// RecordProjection counts one sprite projection outcome.
func (fm *FrameMonitor) RecordProjection(visible bool) {
	if visible {
		fm.projected.Add(1)
	} else {
		fm.culled.Add(1)
	}
}

// RecordPathQuery counts one next-step query.
func (fm *FrameMonitor) RecordPathQuery() {
	fm.pathQueries.Add(1)
	fm.totalPathQueries.Add(1)
}

// RecordAnimationAdvance counts one frame-ring rotation.
func (fm *FrameMonitor) RecordAnimationAdvance() {
	fm.advanced.Add(1)
}

// RecordQueueLen stores the render queue length just before compositing.
func (fm *FrameMonitor) RecordQueueLen(n int) {
	fm.queueLen.Store(int64(n))
}

// Snapshot is a copy of the monitor's counters.
type Snapshot struct {
	Frames           uint64
	LastFrame        time.Duration
	AvgFrame         time.Duration
	QueueLen         int
	Projected        int
	Culled           int
	PathQueries      int
	Advanced         int
	TotalPathQueries uint64
	Uptime           time.Duration
}

// Snapshot returns the current counters.
func (fm *FrameMonitor) Snapshot() Snapshot {
	return Snapshot{
		Frames:           fm.frameCount.Load(),
		LastFrame:        time.Duration(fm.frameTime.Load()),
		AvgFrame:         time.Duration(fm.avgFrame.Load()),
		QueueLen:         int(fm.queueLen.Load()),
		Projected:        int(fm.projected.Load()),
		Culled:           int(fm.culled.Load()),
		PathQueries:      int(fm.pathQueries.Load()),
		Advanced:         int(fm.advanced.Load()),
		TotalPathQueries: fm.totalPathQueries.Load(),
		Uptime:           time.Since(fm.startTime),
	}
}
