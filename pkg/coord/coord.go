// Package coord converts normalized scale output into pixel-space points.
//
// A Coordinate owns a rectangular region of the canvas and maps normalized
// (x, y) pairs in [0,1]² into it. Cartesian coordinates may run either axis
// in either direction; the conventional chart layout places the y origin at
// the bottom, so Start and End corners are not required to be the top-left
// and bottom-right.
package coord

import (
	"math"

	"github.com/go-strata/strata/pkg/graphics"
)

// Coordinate maps normalized points into pixel space.
type Coordinate interface {
	// Convert maps a normalized point into pixel coordinates.
	Convert(p graphics.Point) graphics.Point
	// Center returns the pixel center of the coordinate region.
	Center() graphics.Point
	// Width returns the rendered width in pixels.
	Width() float64
	// Height returns the rendered height in pixels.
	Height() float64
	// Start returns the pixel corner that normalized (0,0) maps to.
	Start() graphics.Point
	// End returns the pixel corner that normalized (1,1) maps to.
	End() graphics.Point
	// IsPolar reports whether the coordinate is polar.
	IsPolar() bool
}

// Cartesian maps normalized coordinates linearly between two corners.
type Cartesian struct {
	start graphics.Point
	end   graphics.Point
}

// NewCartesian builds a cartesian coordinate over the given pixel region,
// with the y axis running bottom-up as charts conventionally draw it:
// normalized (0,0) maps to the bottom-left corner.
func NewCartesian(region graphics.Rect) *Cartesian {
	return &Cartesian{
		start: graphics.Point{X: region.Left, Y: region.Bottom},
		end:   graphics.Point{X: region.Right, Y: region.Top},
	}
}

// NewCartesianCorners builds a cartesian coordinate with explicit corners,
// allowing either axis to run in either direction.
func NewCartesianCorners(start, end graphics.Point) *Cartesian {
	return &Cartesian{start: start, end: end}
}

func (c *Cartesian) Convert(p graphics.Point) graphics.Point {
	return graphics.Point{
		X: c.start.X + p.X*(c.end.X-c.start.X),
		Y: c.start.Y + p.Y*(c.end.Y-c.start.Y),
	}
}

func (c *Cartesian) Center() graphics.Point {
	return graphics.Point{
		X: (c.start.X + c.end.X) * 0.5,
		Y: (c.start.Y + c.end.Y) * 0.5,
	}
}

func (c *Cartesian) Width() float64 {
	return math.Abs(c.end.X - c.start.X)
}

func (c *Cartesian) Height() float64 {
	return math.Abs(c.end.Y - c.start.Y)
}

func (c *Cartesian) Start() graphics.Point { return c.start }
func (c *Cartesian) End() graphics.Point   { return c.end }
func (c *Cartesian) IsPolar() bool         { return false }

// Polar maps normalized x onto an angular sweep and normalized y onto the
// radius, about the center of the region.
type Polar struct {
	region     graphics.Rect
	startAngle float64
	endAngle   float64
}

// NewPolar builds a polar coordinate over the pixel region with the given
// angular sweep in radians.
func NewPolar(region graphics.Rect, startAngle, endAngle float64) *Polar {
	return &Polar{region: region, startAngle: startAngle, endAngle: endAngle}
}

func (p *Polar) Convert(pt graphics.Point) graphics.Point {
	angle := p.startAngle + pt.X*(p.endAngle-p.startAngle)
	r := pt.Y * p.radius()
	center := p.Center()
	return graphics.Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}

func (p *Polar) radius() float64 {
	return math.Min(p.region.Width(), p.region.Height()) * 0.5
}

func (p *Polar) Center() graphics.Point { return p.region.Center() }
func (p *Polar) Width() float64         { return p.region.Width() }
func (p *Polar) Height() float64        { return p.region.Height() }

func (p *Polar) Start() graphics.Point {
	return graphics.Point{X: p.region.Left, Y: p.region.Bottom}
}

func (p *Polar) End() graphics.Point {
	return graphics.Point{X: p.region.Right, Y: p.region.Top}
}

func (p *Polar) IsPolar() bool { return true }
