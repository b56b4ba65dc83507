package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the 1x1 source for vertex-coloured triangles.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// roundRect appends a closed rounded rectangle to p. The radius is capped so
// the corners never overlap.
func roundRect(p *vector.Path, x, y, w, h, r float32) {
	r = min(r, w/2, h/2)
	if r < 0 {
		r = 0
	}
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w, y, x+w, y+r, r)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w, y+h, x+w-r, y+h, r)
	p.LineTo(x+r, y+h)
	p.ArcTo(x, y+h, x, y+h-r, r)
	p.LineTo(x, y+r)
	p.ArcTo(x, y, x+r, y, r)
	p.Close()
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// paintVertices colours every vertex with clr (straight alpha) and points
// it at the white source pixel.
func paintVertices(vs []ebiten.Vertex, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	r := clamp01(float32(c.R) / 0xff)
	g := clamp01(float32(c.G) / 0xff)
	b := clamp01(float32(c.B) / 0xff)
	a := clamp01(float32(c.A) / 0xff)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
}
