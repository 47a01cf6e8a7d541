package core

import "time"

// FrameCounter keeps a running average of frame durations over the last
// maxSamples frames.
type FrameCounter struct {
	last    time.Time
	samples []time.Duration
	next    int
	filled  int
	frames  uint64
}

// NewFrameCounter creates a counter averaging over maxSamples frames.
func NewFrameCounter(maxSamples int) *FrameCounter {
	if maxSamples < 1 {
		maxSamples = 1
	}
	return &FrameCounter{samples: make([]time.Duration, maxSamples)}
}

// Tick records a frame presented at now.
func (c *FrameCounter) Tick(now time.Time) {
	c.frames++
	if !c.last.IsZero() {
		c.samples[c.next] = now.Sub(c.last)
		c.next = (c.next + 1) % len(c.samples)
		if c.filled < len(c.samples) {
			c.filled++
		}
	}
	c.last = now
}

// Frames returns the number of recorded frames.
func (c *FrameCounter) Frames() uint64 {
	return c.frames
}

// FPS returns the average frame rate, or 0 before two frames were recorded.
func (c *FrameCounter) FPS() float64 {
	if c.filled == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range c.samples[:c.filled] {
		total += d
	}
	if total <= 0 {
		return 0
	}
	return float64(c.filled) / total.Seconds()
}
