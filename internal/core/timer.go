package core

import "time"

var processStart = time.Now()

// NowMillis returns a monotonic millisecond clock reading. It is the only
// time source the simulation core consumes; debounce windows and the
// generation cadence are both expressed against it.
func NowMillis() int64 {
	return time.Since(processStart).Milliseconds()
}

// Cadence gates an action to a fixed wall-clock interval. The check is a
// non-blocking comparison; when it fires the gate resets to "now" rather
// than advancing by the interval, so a long stall never produces a burst
// of catch-up firings.
type Cadence struct {
	interval int64
	last     int64
}

// NewCadence constructs a gate with the given interval in milliseconds.
func NewCadence(intervalMillis int64) *Cadence {
	if intervalMillis <= 0 {
		intervalMillis = 1
	}
	return &Cadence{interval: intervalMillis}
}

// Due reports whether the interval has elapsed since the last firing and,
// if so, resets the gate to now.
func (c *Cadence) Due(now int64) bool {
	if now-c.last < c.interval {
		return false
	}
	c.last = now
	return true
}

// Reset moves the gate's reference point to now without firing.
func (c *Cadence) Reset(now int64) {
	c.last = now
}
