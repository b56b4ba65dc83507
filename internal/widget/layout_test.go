package widget

import (
	"math"
	"testing"

	"github.com/iburimskiy/fps-viewer/internal/config"
)

func TestComputeLayoutCentres(t *testing.T) {
	l := ComputeLayout(1000, 800, 30)
	if l.Box.Dx() != 70 {
		t.Fatalf("expected minimum box width 70, got %d", l.Box.Dx())
	}
	if l.Box.Min.X != 465 || l.Box.Min.Y != 360 {
		t.Fatalf("unexpected box origin %v", l.Box.Min)
	}
	if l.Track.Dx() != config.SliderWidth || l.Track.Min.X != 170 {
		t.Fatalf("unexpected track %v", l.Track)
	}
	if l.Track.Min.Y != l.Box.Min.Y+config.SliderBelowBox {
		t.Fatalf("track should sit below the box")
	}
	if l.StatusX != 500 || l.StatusY != 770 {
		t.Fatalf("unexpected status anchor %d,%d", l.StatusX, l.StatusY)
	}
}

func TestComputeLayoutBoxGrowsWithText(t *testing.T) {
	l := ComputeLayout(1000, 800, 80.2)
	if l.Box.Dx() != 81+config.BoxTextPadding {
		t.Fatalf("expected box to fit text, got %d", l.Box.Dx())
	}
}

func TestComputeLayoutFollowsResize(t *testing.T) {
	small := ComputeLayout(400, 300, 30)
	if small.Track.Dx() != 400-2*config.SliderMargin {
		t.Fatalf("track should narrow to window, got %d", small.Track.Dx())
	}
	big := ComputeLayout(1920, 1080, 30)
	if big.Track.Dx() != config.SliderWidth {
		t.Fatalf("track should keep full width, got %d", big.Track.Dx())
	}
	if small.Box == big.Box {
		t.Fatalf("box should move with the surface")
	}
}

func TestRateAtScenario(t *testing.T) {
	l := ComputeLayout(1000, 800, 30)
	x := l.Track.Min.X + l.Track.Dx()/4
	if got := l.RateAt(x); got != 121 {
		t.Fatalf("expected 121 at quarter track, got %d", got)
	}
}

func TestRateAtClampsOutsideTrack(t *testing.T) {
	l := ComputeLayout(1000, 800, 30)
	cases := []struct {
		x    int
		want int
	}{
		{-10000, config.MinRate},
		{l.Track.Min.X, config.MinRate},
		{l.Track.Max.X, config.MaxRate},
		{10000, config.MaxRate},
	}
	for _, c := range cases {
		if got := l.RateAt(c.x); got != c.want {
			t.Fatalf("RateAt(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestThumbRoundTrip(t *testing.T) {
	l := ComputeLayout(1000, 800, 30)
	w := l.Track.Dx()
	for off := 0; off <= w; off++ {
		r := l.RateAt(l.Track.Min.X + off)
		thumb := l.ThumbX(r) - float64(l.Track.Min.X)
		if math.Abs(thumb-float64(off)) > 1 {
			t.Fatalf("offset %d: rate %d thumb at %f", off, r, thumb)
		}
	}
}

func TestThumbEnds(t *testing.T) {
	l := ComputeLayout(1000, 800, 30)
	if l.ThumbX(config.MinRate) != float64(l.Track.Min.X) {
		t.Fatalf("min rate should sit at track start")
	}
	if l.ThumbX(config.MaxRate) != float64(l.Track.Max.X) {
		t.Fatalf("max rate should sit at track end")
	}
}
