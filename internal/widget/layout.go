package widget

import (
	"image"
	"math"

	"github.com/iburimskiy/fps-viewer/internal/config"
)

// Layout is the overlay geometry for one frame. It is derived from the
// surface size and the current text width and never stored between frames.
type Layout struct {
	Width, Height int
	Track         image.Rectangle
	Box           image.Rectangle
	StatusX       int
	StatusY       int
}

// ComputeLayout places the numeric box centred just above the middle of the
// surface and the slider track below it.
func ComputeLayout(width, height int, textWidth float64) Layout {
	boxW := int(math.Ceil(textWidth)) + config.BoxTextPadding
	if boxW < config.BoxMinWidth {
		boxW = config.BoxMinWidth
	}
	boxX := (width - boxW) / 2
	boxY := height/2 - config.BoxAboveCenter

	trackW := config.SliderWidth
	if avail := width - 2*config.SliderMargin; avail < trackW {
		trackW = max(avail, config.ThumbWidth)
	}
	trackX := (width - trackW) / 2
	trackY := boxY + config.SliderBelowBox

	return Layout{
		Width:   width,
		Height:  height,
		Box:     image.Rect(boxX, boxY, boxX+boxW, boxY+config.BoxHeight),
		Track:   image.Rect(trackX, trackY, trackX+trackW, trackY+config.SliderHeight),
		StatusX: width / 2,
		StatusY: height - config.StatusFromBottom,
	}
}

// InTrack reports whether p hits the slider track, edges inclusive.
func (l Layout) InTrack(x, y int) bool {
	return inside(l.Track, x, y)
}

// InBox reports whether p hits the numeric box.
func (l Layout) InBox(x, y int) bool {
	return x >= l.Box.Min.X && x < l.Box.Max.X && y >= l.Box.Min.Y && y < l.Box.Max.Y
}

func inside(r image.Rectangle, x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

// RateAt maps a pointer x onto the rate range, clamped to the track ends.
func (l Layout) RateAt(x int) int {
	w := l.Track.Dx()
	if w <= 0 {
		return config.MinRate
	}
	off := min(max(x-l.Track.Min.X, 0), w)
	span := float64(config.MaxRate - config.MinRate)
	r := int(math.Round(float64(config.MinRate) + float64(off)/float64(w)*span))
	return config.ClampRate(r)
}

// ThumbX is the inverse of RateAt: the track x the thumb centres on.
func (l Layout) ThumbX(rate int) float64 {
	span := float64(config.MaxRate - config.MinRate)
	return float64(l.Track.Min.X) + float64(rate-config.MinRate)/span*float64(l.Track.Dx())
}
