package sprite

import (
	"time"

	"raycore/internal/render"
)

// DefaultInterval is the time between frames when none is configured.
const DefaultInterval = 120 * time.Millisecond

// Animation is a cyclic ring of frames. The front frame is the one displayed.
type Animation struct {
	frames      []render.Drawable
	interval    time.Duration
	lastAdvance time.Time
}

// NewAnimation returns a ring over frames that starts its clock at now.
// A non-positive interval falls back to DefaultInterval.
func NewAnimation(frames []render.Drawable, interval time.Duration, now time.Time) *Animation {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ring := make([]render.Drawable, len(frames))
	copy(ring, frames)
	return &Animation{frames: ring, interval: interval, lastAdvance: now}
}

// Advance rotates the ring by one frame if more than the interval has passed
// since the last advance. It reports whether the displayed frame changed.
func (a *Animation) Advance(now time.Time) bool {
	if now.Sub(a.lastAdvance) <= a.interval {
		return false
	}
	a.lastAdvance = now
	if len(a.frames) > 1 {
		front := a.frames[0]
		copy(a.frames, a.frames[1:])
		a.frames[len(a.frames)-1] = front
	}
	return true
}

// Current returns the displayed frame, or nil for an empty ring.
func (a *Animation) Current() render.Drawable {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[0]
}

// Frames returns the ring in display order. Callers must not modify it.
func (a *Animation) Frames() []render.Drawable {
	return a.frames
}

// Interval returns the configured advance interval.
func (a *Animation) Interval() time.Duration {
	return a.interval
}
