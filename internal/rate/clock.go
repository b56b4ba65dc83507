// Package rate paces a control flow to a target frequency and measures the
// frequency it actually achieves.
package rate

import "time"

// Timer is the monotonic time source a Clock paces against.
type Timer interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemTimer struct{}

func (systemTimer) Now() time.Time        { return time.Now() }
func (systemTimer) Sleep(d time.Duration) { time.Sleep(d) }

// SystemTimer is backed by the runtime monotonic clock.
var SystemTimer Timer = systemTimer{}

// Clock delays its caller so successive Pace calls are at least 1/rate apart.
// Late calls return immediately; lost time is never made up.
type Clock struct {
	timer Timer
	last  time.Time
}

func NewClock(timer Timer) *Clock {
	if timer == nil {
		timer = SystemTimer
	}
	return &Clock{timer: timer, last: timer.Now()}
}

// Pace blocks until 1/rate seconds have passed since the previous Pace
// returned, then reports the actual elapsed interval. A non-positive rate
// does not wait.
func (c *Clock) Pace(rate float64) time.Duration {
	now := c.timer.Now()
	if rate > 0 {
		frame := time.Duration(float64(time.Second) / rate)
		if wait := frame - now.Sub(c.last); wait > 0 {
			c.timer.Sleep(wait)
			now = c.timer.Now()
		}
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}

// Instant converts a frame interval into frames per second. Degenerate
// intervals (zero or negative) yield ok == false and must not be sampled.
func Instant(elapsed time.Duration) (fps float64, ok bool) {
	if elapsed <= 0 {
		return 0, false
	}
	return float64(time.Second) / float64(elapsed), true
}
