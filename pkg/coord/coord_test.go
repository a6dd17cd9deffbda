package coord

import (
	"math"
	"testing"

	"github.com/go-strata/strata/pkg/graphics"
)

func TestCartesianConvert(t *testing.T) {
	c := NewCartesian(graphics.RectFromLTWH(0, 0, 100, 100))

	// Normalized origin is the bottom-left corner.
	if got := c.Convert(graphics.Point{}); !got.Equal(graphics.Point{X: 0, Y: 100}) {
		t.Fatalf("expected (0,100), got (%v,%v)", got.X, got.Y)
	}
	if got := c.Convert(graphics.Point{X: 1, Y: 1}); !got.Equal(graphics.Point{X: 100, Y: 0}) {
		t.Fatalf("expected (100,0), got (%v,%v)", got.X, got.Y)
	}
	if got := c.Convert(graphics.Point{X: 0.5, Y: 0.5}); !got.Equal(c.Center()) {
		t.Fatalf("expected midpoint to convert to center, got (%v,%v)", got.X, got.Y)
	}
}

func TestCartesianDimensions(t *testing.T) {
	c := NewCartesian(graphics.RectFromLTWH(10, 20, 300, 200))
	if c.Width() != 300 {
		t.Fatalf("expected width 300, got %v", c.Width())
	}
	if c.Height() != 200 {
		t.Fatalf("expected height 200, got %v", c.Height())
	}
	if c.IsPolar() {
		t.Fatal("cartesian coordinate reported polar")
	}
}

func TestCartesianInvertedAxes(t *testing.T) {
	// Corners may describe any orientation; dimensions stay positive.
	c := NewCartesianCorners(graphics.Point{X: 100, Y: 0}, graphics.Point{X: 0, Y: 100})
	if c.Width() != 100 || c.Height() != 100 {
		t.Fatalf("expected 100x100, got %vx%v", c.Width(), c.Height())
	}
	if got := c.Convert(graphics.Point{}); !got.Equal(graphics.Point{X: 100, Y: 0}) {
		t.Fatalf("expected start corner, got (%v,%v)", got.X, got.Y)
	}
}

func TestPolarConvert(t *testing.T) {
	p := NewPolar(graphics.RectFromLTWH(0, 0, 200, 200), 0, 2*math.Pi)
	if !p.IsPolar() {
		t.Fatal("polar coordinate reported cartesian")
	}

	center := p.Center()
	if !center.Equal(graphics.Point{X: 100, Y: 100}) {
		t.Fatalf("expected center (100,100), got (%v,%v)", center.X, center.Y)
	}

	// Zero radius maps to the center regardless of angle.
	if got := p.Convert(graphics.Point{X: 0.3}); !got.Equal(center) {
		t.Fatalf("expected center, got (%v,%v)", got.X, got.Y)
	}

	// Full radius at angle 0 lands on the right edge.
	if got := p.Convert(graphics.Point{X: 0, Y: 1}); !got.Equal(graphics.Point{X: 200, Y: 100}) {
		t.Fatalf("expected (200,100), got (%v,%v)", got.X, got.Y)
	}
}
