package game

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFace parses the TTF at path, or the bundled Go Regular font when path
// is empty.
func LoadFace(path string, size float64) (text.Face, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
		data = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// surface draws the overlay onto the ebiten screen. Between frames it
// remembers the last layout size so input can be hit-tested in Update.
type surface struct {
	dst  *ebiten.Image
	face text.Face
	w, h int
}

func (s *surface) Size() (int, int) {
	if s.dst != nil {
		b := s.dst.Bounds()
		return b.Dx(), b.Dy()
	}
	return s.w, s.h
}

func (s *surface) FillRoundRect(x, y, w, h, radius float64, clr color.Color) {
	var p vector.Path
	roundRect(&p, float32(x), float32(y), float32(w), float32(h), float32(radius))
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	s.triangles(vs, is, clr)
}

func (s *surface) StrokeRoundRect(x, y, w, h, radius, width float64, clr color.Color) {
	var p vector.Path
	roundRect(&p, float32(x), float32(y), float32(w), float32(h), float32(radius))
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	s.triangles(vs, is, clr)
}

func (s *surface) triangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	if s.dst == nil || len(is) == 0 {
		return
	}
	paintVertices(vs, clr)
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func (s *surface) TextSize(str string) (float64, float64) {
	return text.Measure(str, s.face, 0)
}

func (s *surface) DrawText(str string, x, y float64, clr color.Color) {
	if s.dst == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, s.face, op)
}
