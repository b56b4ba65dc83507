package rate

import "time"

// Sampler smooths per-frame rates into a display value that changes at most
// once per window.
type Sampler struct {
	window    time.Duration
	samples   []float64
	lastFlush time.Time
	display   float64
}

// NewSampler starts the first window at start.
func NewSampler(window time.Duration, start time.Time) *Sampler {
	return &Sampler{window: window, lastFlush: start}
}

// Feed records one instantaneous rate.
func (s *Sampler) Feed(fps float64) {
	s.samples = append(s.samples, fps)
}

// MaybeFlush replaces the display rate with the mean of the pending samples
// once more than one window has passed since the previous flush. It reports
// whether the display rate was updated. An empty batch leaves everything,
// including the window start, untouched.
func (s *Sampler) MaybeFlush(now time.Time) bool {
	if now.Sub(s.lastFlush) <= s.window {
		return false
	}
	if len(s.samples) == 0 {
		return false
	}
	var sum float64
	for _, v := range s.samples {
		sum += v
	}
	s.display = sum / float64(len(s.samples))
	s.samples = s.samples[:0]
	s.lastFlush = now
	return true
}

// Display returns the last averaged rate, 0 before the first flush.
func (s *Sampler) Display() float64 {
	return s.display
}
