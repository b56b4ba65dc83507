package rate

import (
	"math"
	"testing"
	"time"
)

func TestPaceSleepsRemainder(t *testing.T) {
	ft := newFakeTimer()
	c := NewClock(ft)

	ft.advance(4 * time.Millisecond)
	elapsed := c.Pace(100)

	if len(ft.slept) != 1 || ft.slept[0] != 6*time.Millisecond {
		t.Fatalf("expected a single 6ms sleep, got %v", ft.slept)
	}
	if elapsed != 10*time.Millisecond {
		t.Fatalf("expected 10ms elapsed, got %v", elapsed)
	}
}

func TestPaceLateFrameNoCatchUp(t *testing.T) {
	ft := newFakeTimer()
	c := NewClock(ft)

	ft.advance(50 * time.Millisecond)
	if got := c.Pace(100); got != 50*time.Millisecond {
		t.Fatalf("expected 50ms, got %v", got)
	}
	if len(ft.slept) != 0 {
		t.Fatalf("late frame should not sleep, got %v", ft.slept)
	}

	// The next frame is measured from the late return, not from the
	// missed deadline.
	ft.advance(2 * time.Millisecond)
	if got := c.Pace(100); got != 10*time.Millisecond {
		t.Fatalf("expected full 10ms frame after late one, got %v", got)
	}
}

func TestPaceNonPositiveRate(t *testing.T) {
	ft := newFakeTimer()
	c := NewClock(ft)
	ft.advance(time.Millisecond)
	if got := c.Pace(0); got != time.Millisecond {
		t.Fatalf("expected 1ms, got %v", got)
	}
	if len(ft.slept) != 0 {
		t.Fatalf("zero rate should not sleep")
	}
}

func TestPaceZeroElapsed(t *testing.T) {
	ft := newFakeTimer()
	c := NewClock(ft)
	// Timer never moves and rate is unbounded: the clock reports zero.
	if got := c.Pace(0); got != 0 {
		t.Fatalf("expected zero elapsed, got %v", got)
	}
	if _, ok := Instant(0); ok {
		t.Fatalf("zero interval must not produce a sample")
	}
}

func TestPaceSteadyRate(t *testing.T) {
	ft := newFakeTimer()
	c := NewClock(ft)
	for i := 0; i < 10; i++ {
		ft.advance(time.Millisecond)
		elapsed := c.Pace(60)
		fps, ok := Instant(elapsed)
		if !ok {
			t.Fatalf("frame %d: expected sample", i)
		}
		if math.Abs(fps-60) > 0.01 {
			t.Fatalf("frame %d: expected ~60fps, got %f", i, fps)
		}
	}
}

func TestInstant(t *testing.T) {
	cases := []struct {
		elapsed time.Duration
		want    float64
		ok      bool
	}{
		{-time.Millisecond, 0, false},
		{0, 0, false},
		{time.Second, 1, true},
		{10 * time.Millisecond, 100, true},
		{time.Second / 500, 500, true},
		{time.Second / 480, 480, true},
	}
	for _, c := range cases {
		got, ok := Instant(c.elapsed)
		if ok != c.ok || math.Abs(got-c.want) > 1e-4*math.Max(c.want, 1) {
			t.Fatalf("Instant(%v) = %f, %v; want %f, %v", c.elapsed, got, ok, c.want, c.ok)
		}
	}
}

func TestNewClockDefaultsToSystemTimer(t *testing.T) {
	c := NewClock(nil)
	if c.timer != SystemTimer {
		t.Fatalf("expected system timer")
	}
}
