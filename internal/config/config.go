package config

import "image/color"

const (
	AppName     = "fps-viewer"
	WindowTitle = "FPS Viewer"

	// Rate bounds, in frames per second
	MinRate     = 1
	MaxRate     = 480
	DefaultRate = 60
	PausedRate  = 30

	// Measured rate is averaged over this window
	SampleWindowMillis = 500

	// Slider dimensions
	SliderWidth  = 660
	SliderHeight = 14
	SliderMargin = 20
	ThumbWidth   = 18
	ThumbHeight  = 28
	ThumbRise    = 7

	// Numeric box dimensions
	BoxMinWidth    = 70
	BoxHeight      = 32
	BoxTextPadding = 20
	BoxTextX       = 10
	BoxTextY       = 4
	BoxAboveCenter = 40
	SliderBelowBox = 60

	StatusFromBottom = 30
	ShadowOffset     = 2

	TrackRadius  = 7
	ThumbRadius  = 5
	BoxRadius    = 5
	OutlineWidth = 2

	DefaultFontSize = 26
)

var (
	Background      = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	Accent          = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Text            = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Shadow          = color.RGBA{R: 0, G: 50, B: 50, A: 255}
	OutlineActive   = color.RGBA{R: 0, G: 200, B: 200, A: 255}
	OutlineInactive = color.RGBA{R: 10, G: 50, B: 50, A: 255}
)

// ClampRate bounds r to [MinRate, MaxRate].
func ClampRate(r int) int {
	if r < MinRate {
		return MinRate
	}
	if r > MaxRate {
		return MaxRate
	}
	return r
}
