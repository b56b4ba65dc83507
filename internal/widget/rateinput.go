// Package widget holds the target-rate input: a slider and a numeric text box
// kept in agreement with one bounded rate.
package widget

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/input"
)

type Mode int

const (
	Idle Mode = iota
	Dragging
	TextEditing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case TextEditing:
		return "editing"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// RateInput owns the target rate, the interaction mode and the raw text.
type RateInput struct {
	rate int
	mode Mode
	text string
}

func NewRateInput(initial int) *RateInput {
	r := config.ClampRate(initial)
	return &RateInput{rate: r, text: strconv.Itoa(r)}
}

func (w *RateInput) Rate() int    { return w.rate }
func (w *RateInput) Mode() Mode   { return w.mode }
func (w *RateInput) Text() string { return w.text }

// SetRate clamps r and makes it the target, resynchronising the text.
func (w *RateInput) SetRate(r int) {
	w.rate = config.ClampRate(r)
	w.text = strconv.Itoa(w.rate)
}

// Handle applies one event against the layout of the current frame and
// reports whether the target rate changed.
func (w *RateInput) Handle(ev input.Event, l Layout) bool {
	before := w.rate
	switch ev.Kind {
	case input.PointerDown:
		w.pointerDown(ev.X, ev.Y, l)
	case input.PointerUp:
		if w.mode == Dragging {
			w.mode = Idle
		}
	case input.PointerMove:
		if w.mode == Dragging {
			w.SetRate(l.RateAt(ev.X))
		}
	case input.KeyDown:
		if w.mode == TextEditing {
			w.key(ev)
		}
	}
	return w.rate != before
}

func (w *RateInput) pointerDown(x, y int, l Layout) {
	switch {
	case l.InTrack(x, y):
		w.mode = Dragging
	case l.InBox(x, y):
		if w.mode == TextEditing {
			w.mode = Idle
		} else {
			w.mode = TextEditing
		}
	default:
		w.mode = Idle
	}
}

func (w *RateInput) key(ev input.Event) {
	switch ev.Key {
	case input.KeyEnter:
		w.mode = Idle
		return
	case input.KeyBackspace:
		if len(w.text) > 0 {
			w.text = w.text[:len(w.text)-1]
		}
	case input.KeyDigit:
		if ev.Char < '0' || ev.Char > '9' {
			return
		}
		w.text += string(ev.Char)
	default:
		return
	}
	if r, ok := parseRate(w.text); ok {
		w.SetRate(r)
	}
}

// parseRate fails on empty or non-numeric text. Overflowing digit runs
// saturate so they clamp to the maximum instead of being rejected.
func parseRate(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return config.MaxRate, true
		}
		return 0, false
	}
	return n, true
}
