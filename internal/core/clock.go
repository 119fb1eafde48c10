package core

import "time"

// FrameClock turns host frame timestamps into elapsed seconds.
// The first frame only records its timestamp.
type FrameClock struct {
	last    time.Time
	started bool
}

// Delta returns the seconds elapsed since the previous call.
// ok is false on the first call and after Reset.
func (c *FrameClock) Delta(now time.Time) (dt float64, ok bool) {
	if !c.started {
		c.last = now
		c.started = true
		return 0, false
	}
	dt = now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	return dt, true
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
