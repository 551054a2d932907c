package scenes

import "time"

// Clock measures wall time between ticks.
type Clock struct {
	MaxDelta float64 // seconds; 0 disables the clamp
	now      func() time.Time
	last     time.Time
}

func NewClock(maxDelta float64) *Clock {
	return &Clock{MaxDelta: maxDelta, now: time.Now}
}

// Delta returns the seconds elapsed since the previous call. The first
// call returns 0.
func (c *Clock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		return 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		return c.MaxDelta
	}
	return d
}
