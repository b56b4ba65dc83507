// Package overlay draws the rate controls and the status line on top of a
// frame. It keeps no state between frames.
package overlay

import (
	"fmt"

	"github.com/iburimskiy/fps-viewer/internal/config"
	"github.com/iburimskiy/fps-viewer/internal/widget"
)

// State is the per-frame snapshot the overlay renders.
type State struct {
	Rate    int
	Text    string
	Mode    widget.Mode
	Paused  bool
	Display float64
}

// LayoutFor computes the widget geometry for the surface as it is now.
func LayoutFor(s Surface, text string) widget.Layout {
	w, h := s.Size()
	tw, _ := s.TextSize(text)
	return widget.ComputeLayout(w, h, tw)
}

// StatusLine formats the bottom status text.
func StatusLine(paused bool, rate int, display float64) string {
	if paused {
		return fmt.Sprintf("PAUSED (SPACE to resume) | Actual: %.1fFPS", display)
	}
	return fmt.Sprintf("RUNNING Target: %dFPS | Actual: %.1fFPS", rate, display)
}

// Draw renders track, thumb, numeric box and status line, in that order.
func Draw(s Surface, st State) widget.Layout {
	l := LayoutFor(s, st.Text)

	tr := l.Track
	s.FillRoundRect(float64(tr.Min.X), float64(tr.Min.Y), float64(tr.Dx()), float64(tr.Dy()),
		config.TrackRadius, config.Background)
	s.StrokeRoundRect(float64(tr.Min.X), float64(tr.Min.Y), float64(tr.Dx()), float64(tr.Dy()),
		config.TrackRadius, config.OutlineWidth, config.Accent)

	thumbX := l.ThumbX(st.Rate) - config.ThumbWidth/2
	s.FillRoundRect(thumbX, float64(tr.Min.Y-config.ThumbRise), config.ThumbWidth, config.ThumbHeight,
		config.ThumbRadius, config.Accent)

	box := l.Box
	outline := config.OutlineInactive
	if st.Mode == widget.TextEditing {
		outline = config.OutlineActive
	}
	s.FillRoundRect(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()),
		config.BoxRadius, config.Background)
	s.StrokeRoundRect(float64(box.Min.X), float64(box.Min.Y), float64(box.Dx()), float64(box.Dy()),
		config.BoxRadius, config.OutlineWidth, outline)
	shadowed(s, st.Text, float64(box.Min.X+config.BoxTextX), float64(box.Min.Y+config.BoxTextY))

	status := StatusLine(st.Paused, st.Rate, st.Display)
	sw, sh := s.TextSize(status)
	shadowed(s, status, float64(l.StatusX)-sw/2, float64(l.StatusY)-sh/2)

	return l
}

func shadowed(s Surface, text string, x, y float64) {
	if text == "" {
		return
	}
	s.DrawText(text, x+config.ShadowOffset, y+config.ShadowOffset, config.Shadow)
	s.DrawText(text, x, y, config.Text)
}
