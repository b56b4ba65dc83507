package frame

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/input"
	"github.com/iburimskiy/fps-viewer/internal/rate"
	"github.com/iburimskiy/fps-viewer/internal/widget"
)

type stepTimer struct {
	now   time.Time
	slept time.Duration
}

func (s *stepTimer) Now() time.Time { return s.now }

func (s *stepTimer) Sleep(d time.Duration) {
	s.slept += d
	s.now = s.now.Add(d)
}

func fixedLayout(string) widget.Layout {
	return widget.ComputeLayout(1000, 800, 30)
}

func newLoop(initial int) (*Loop, *stepTimer) {
	st := &stepTimer{now: time.Unix(0, 0)}
	return New(initial, st, zerolog.Nop()), st
}

func TestStepPacesToTarget(t *testing.T) {
	l, st := newLoop(100)
	if quit := l.Step(nil, fixedLayout); quit {
		t.Fatalf("unexpected quit")
	}
	if st.slept != 10*time.Millisecond {
		t.Fatalf("expected 10ms sleep, got %v", st.slept)
	}
	if l.LastInterval() != 10*time.Millisecond {
		t.Fatalf("unexpected interval %v", l.LastInterval())
	}
}

func TestStepQuitEvents(t *testing.T) {
	cases := []struct {
		name string
		ev   input.Event
	}{
		{"quit", input.QuitEvent()},
		{"escape", input.Press(input.KeyEscape)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l, st := newLoop(60)
			if !l.Step([]input.Event{c.ev}, fixedLayout) {
				t.Fatalf("expected quit")
			}
			if st.slept != 0 {
				t.Fatalf("quit must not pace")
			}
		})
	}
}

func TestPauseIndependence(t *testing.T) {
	l, st := newLoop(144)
	l.Step([]input.Event{input.Press(input.KeySpace)}, fixedLayout)
	if !l.Paused() {
		t.Fatalf("expected paused")
	}
	if l.TargetRate() != 144 {
		t.Fatalf("pause changed target to %d", l.TargetRate())
	}
	if l.PacingRate() != config.PausedRate {
		t.Fatalf("expected paused pacing, got %d", l.PacingRate())
	}
	wantPaused := time.Second / config.PausedRate
	if st.slept != wantPaused {
		t.Fatalf("expected %v sleep while paused, got %v", wantPaused, st.slept)
	}

	st.slept = 0
	l.Step([]input.Event{input.Press(input.KeySpace)}, fixedLayout)
	if l.Paused() || l.PacingRate() != 144 || l.TargetRate() != 144 {
		t.Fatalf("resume should restore 144, got pacing %d target %d", l.PacingRate(), l.TargetRate())
	}
	if st.slept != time.Second/144 {
		t.Fatalf("unexpected resume sleep %v", st.slept)
	}
}

func TestInputAppliedBeforePacing(t *testing.T) {
	l, st := newLoop(60)
	lay := fixedLayout("")
	y := lay.Track.Min.Y + 1
	events := []input.Event{
		input.Down(lay.Track.Min.X+10, y),
		input.Move(lay.Track.Max.X, y),
		input.Up(lay.Track.Max.X, y),
	}
	l.Step(events, fixedLayout)
	if l.TargetRate() != config.MaxRate {
		t.Fatalf("expected max rate, got %d", l.TargetRate())
	}
	if st.slept != time.Second/config.MaxRate {
		t.Fatalf("frame should pace to the new rate, slept %v", st.slept)
	}
}

func TestSpaceWhileEditingStillPauses(t *testing.T) {
	l, _ := newLoop(60)
	lay := fixedLayout("")
	bx, by := lay.Box.Min.X+5, lay.Box.Min.Y+5
	l.Step([]input.Event{input.Down(bx, by), input.Press(input.KeySpace)}, fixedLayout)
	if !l.Paused() {
		t.Fatalf("space should pause while editing")
	}
	if l.State().Text != "60" || l.State().Mode != widget.TextEditing {
		t.Fatalf("space must not touch the text box: %+v", l.State())
	}
}

func TestTypedDigitsKeepOrderWithinOneStep(t *testing.T) {
	l, _ := newLoop(60)
	lay := fixedLayout("")
	events := []input.Event{
		input.Down(lay.Box.Min.X+5, lay.Box.Min.Y+5),
		input.Press(input.KeyBackspace),
		input.Press(input.KeyBackspace),
	}
	events = append(events, input.Typed([]input.Key{input.KeyEnter}, []rune("21"))...)
	l.Step(events, fixedLayout)
	if l.TargetRate() != 21 || l.State().Text != "21" {
		t.Fatalf("expected 21, got %d %q", l.TargetRate(), l.State().Text)
	}
	if l.State().Mode != widget.Idle {
		t.Fatalf("enter should commit, mode %v", l.State().Mode)
	}
}

func TestDisplayRateAfterWindow(t *testing.T) {
	l, _ := newLoop(50)
	for i := 0; i < 30; i++ {
		l.Step(nil, fixedLayout)
	}
	got := l.State().Display
	if math.Abs(got-50) > 0.01 {
		t.Fatalf("expected ~50fps display, got %f", got)
	}
}

// zeroTimer never advances and never sleeps long enough to matter.
type zeroTimer struct{ now time.Time }

func (z *zeroTimer) Now() time.Time      { return z.now }
func (z *zeroTimer) Sleep(time.Duration) {}

func TestZeroIntervalContributesNoSample(t *testing.T) {
	zt := &zeroTimer{now: time.Unix(0, 0)}
	l := New(60, zt, zerolog.Nop())
	l.sampler.Feed(42)
	zt.now = zt.now.Add(time.Second)
	l.sampler.MaybeFlush(zt.now)
	l.clock = rate.NewClock(zt)

	l.Step(nil, fixedLayout)
	if l.LastInterval() != 0 {
		t.Fatalf("expected zero interval, got %v", l.LastInterval())
	}
	if l.sampler.MaybeFlush(zt.now.Add(time.Second)) {
		t.Fatalf("zero interval should not be sampled")
	}
	if l.State().Display != 42 {
		t.Fatalf("display should keep previous value, got %f", l.State().Display)
	}
}

func TestStateSnapshot(t *testing.T) {
	l, _ := newLoop(75)
	s := l.State()
	if s.Rate != 75 || s.Text != "75" || s.Mode != widget.Idle || s.Paused || s.Display != 0 {
		t.Fatalf("unexpected initial state %+v", s)
	}
}
