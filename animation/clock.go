package animation

import (
	"time"
)

// MaxFrameGap caps a single frame delta so a stalled loop does not skip the whole settle
const MaxFrameGap = 100 * time.Millisecond

// FrameClock turns ticker timestamps into bounded frame deltas
type FrameClock struct {
	last   time.Time
	maxGap time.Duration
}

// NewFrameClock starts measuring from start
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{last: start, maxGap: MaxFrameGap}
}

// Tick returns time since the previous tick, clamped to [0, MaxFrameGap]
func (c *FrameClock) Tick(now time.Time) time.Duration {
	dt := now.Sub(c.last)
	if dt < 0 {
		return 0
	}
	c.last = now
	if dt > c.maxGap {
		dt = c.maxGap
	}
	return dt
}

// Reset restarts measuring from now, used after the loop was suspended
func (c *FrameClock) Reset(now time.Time) {
	c.last = now
}
