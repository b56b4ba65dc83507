package overlay

import "image/color"

// Surface is the drawing target the overlay needs. Implementations report
// their current size on every call so a resized window is picked up on the
// next frame.
type Surface interface {
	Size() (width, height int)
	FillRoundRect(x, y, w, h, radius float64, clr color.Color)
	StrokeRoundRect(x, y, w, h, radius, width float64, clr color.Color)
	// TextSize measures s in the overlay font.
	TextSize(s string) (width, height float64)
	// DrawText draws s with its top-left corner at x, y.
	DrawText(s string, x, y float64, clr color.Color)
}
