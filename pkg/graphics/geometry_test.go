package graphics

import (
	"math"
	"testing"
)

func TestRectFromPointsNormalizes(t *testing.T) {
	r := RectFromPoints(Point{X: 100, Y: 0}, Point{X: 0, Y: 50})
	if r.Left != 0 || r.Top != 0 || r.Right != 100 || r.Bottom != 50 {
		t.Fatalf("expected normalized corners, got %+v", r)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Fatalf("expected 100x50, got %vx%v", r.Width(), r.Height())
	}
}

func TestPointDistanceAndAngle(t *testing.T) {
	center := Point{X: 10, Y: 10}
	p := Point{X: 10, Y: 20}
	if got := center.DistanceTo(p); got != 10 {
		t.Fatalf("expected distance 10, got %v", got)
	}
	if got := center.AngleTo(p); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("expected angle π/2, got %v", got)
	}
}

func TestPointLerp(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 20}
	mid := a.Lerp(b, 0.5)
	if !mid.Equal(Point{X: 5, Y: 10}) {
		t.Fatalf("expected midpoint (5,10), got (%v,%v)", mid.X, mid.Y)
	}
	if !a.Lerp(b, 0).Equal(a) || !a.Lerp(b, 1).Equal(b) {
		t.Fatal("expected lerp endpoints to match inputs")
	}
}
