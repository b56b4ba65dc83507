// Package frame runs one iteration of the render loop: input routing, pause
// handling, pacing and rate sampling. Drawing is left to the caller.
package frame

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/input"
	"github.com/iburimskiy/fps-viewer/internal/overlay"
	"github.com/iburimskiy/fps-viewer/internal/rate"
	"github.com/iburimskiy/fps-viewer/internal/widget"
)

// Layouter returns the widget geometry for the given box text on the current
// surface.
type Layouter func(text string) widget.Layout

type Loop struct {
	input   *widget.RateInput
	clock   *rate.Clock
	sampler *rate.Sampler
	timer   rate.Timer
	paused  bool

	committed int
	last      time.Duration
	log       zerolog.Logger
}

func New(initialRate int, timer rate.Timer, log zerolog.Logger) *Loop {
	if timer == nil {
		timer = rate.SystemTimer
	}
	in := widget.NewRateInput(initialRate)
	return &Loop{
		input:     in,
		clock:     rate.NewClock(timer),
		sampler:   rate.NewSampler(config.SampleWindowMillis*time.Millisecond, timer.Now()),
		timer:     timer,
		committed: in.Rate(),
		log:       log,
	}
}

// Step applies every queued event, then paces and samples. It returns true
// when the loop should stop; in that case no pacing happens.
func (l *Loop) Step(events []input.Event, layout Layouter) (quit bool) {
	for _, ev := range events {
		if l.route(ev, layout) {
			return true
		}
	}

	l.last = l.clock.Pace(float64(l.PacingRate()))
	if fps, ok := rate.Instant(l.last); ok {
		l.sampler.Feed(fps)
	}
	l.sampler.MaybeFlush(l.timer.Now())
	return false
}

func (l *Loop) route(ev input.Event, layout Layouter) bool {
	switch {
	case ev.Kind == input.Quit:
		return true
	case ev.Kind == input.KeyDown && ev.Key == input.KeyEscape:
		return true
	case ev.Kind == input.KeyDown && ev.Key == input.KeySpace:
		l.TogglePause()
	}

	prev := l.input.Mode()
	l.input.Handle(ev, layout(l.input.Text()))
	if prev != widget.Idle && l.input.Mode() == widget.Idle && l.input.Rate() != l.committed {
		l.committed = l.input.Rate()
		l.log.Debug().Int("rate", l.committed).Stringer("via", prev).Msg("target rate set")
	}
	return false
}

// TogglePause flips between the target rate and the fixed paused rate.
func (l *Loop) TogglePause() {
	l.paused = !l.paused
	l.log.Debug().Bool("paused", l.paused).Int("target", l.input.Rate()).Msg("pause toggled")
}

func (l *Loop) Paused() bool { return l.paused }

// PacingRate is the rate the next Step paces to.
func (l *Loop) PacingRate() int {
	if l.paused {
		return config.PausedRate
	}
	return l.input.Rate()
}

// TargetRate is the user-selected rate, regardless of pause.
func (l *Loop) TargetRate() int { return l.input.Rate() }

// LastInterval is the frame interval measured by the most recent Step.
func (l *Loop) LastInterval() time.Duration { return l.last }

// State snapshots what the overlay needs for this frame.
func (l *Loop) State() overlay.State {
	return overlay.State{
		Rate:    l.input.Rate(),
		Text:    l.input.Text(),
		Mode:    l.input.Mode(),
		Paused:  l.paused,
		Display: l.sampler.Display(),
	}
}
