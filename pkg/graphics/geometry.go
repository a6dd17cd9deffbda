// Package graphics provides the geometric primitives shared by the chart
// packages: points, sizes, rectangles, and the small amount of angle and
// distance math the annotation layer needs.
package graphics

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 1e-9

// Point is a 2D point in pixel coordinates, or a normalized coordinate
// pair before the coordinate transform is applied.
type Point struct {
	X float64
	Y float64
}

// Equal reports whether two points coincide within tolerance.
func (p Point) Equal(q Point) bool {
	return scalar.EqualWithinAbs(p.X, q.X, epsilon) && scalar.EqualWithinAbs(p.Y, q.Y, epsilon)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// AngleTo returns the angle of the ray from p to q, in radians,
// measured counterclockwise from the positive x axis in the range (-π, π].
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Lerp returns the point a fraction t of the way from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromPoints constructs the bounding Rect of two corner points,
// regardless of which corner each point describes.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// TopLeft returns the minimum-x, minimum-y corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.Left, Y: r.Top}
}

// Contains reports whether the point lies within the rectangle,
// inclusive of edges.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}
