package render

import (
	"fmt"
	"io"
	"math"

	"github.com/go-strata/strata/pkg/graphics"
)

// ArcConfig is the resolved configuration of an arc annotation: a circular
// sweep about a center. The annotation layer guarantees
// StartAngle <= EndAngle.
type ArcConfig struct {
	Center     graphics.Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Style      Style
}

func (ArcConfig) isConfig() {}

// Arc draws a circular arc between two angles about a center point.
type Arc struct {
	componentBase
	cfg ArcConfig
}

// NewArc creates an arc component. It is not visible until Render.
func NewArc(cfg ArcConfig) *Arc {
	return &Arc{cfg: cfg}
}

// Config returns the current resolved configuration.
func (a *Arc) Config() ArcConfig { return a.cfg }

func (a *Arc) Update(cfg Config) {
	if c, ok := cfg.(ArcConfig); ok {
		a.cfg = c
	}
}

func (a *Arc) writeSVG(w io.Writer) {
	if !a.visible() {
		return
	}
	cfg := a.cfg
	sweep := cfg.EndAngle - cfg.StartAngle
	if sweep >= 2*math.Pi {
		// Full circle; an SVG arc with coincident endpoints collapses.
		fmt.Fprintf(w, `<circle cx="%s" cy="%s" r="%s" fill="none"%s/>`,
			trimFloat(cfg.Center.X), trimFloat(cfg.Center.Y),
			trimFloat(cfg.Radius), cfg.Style.svgAttrs())
		return
	}
	start := pointOnCircle(cfg.Center, cfg.Radius, cfg.StartAngle)
	end := pointOnCircle(cfg.Center, cfg.Radius, cfg.EndAngle)
	largeArc := 0
	if sweep > math.Pi {
		largeArc = 1
	}
	fmt.Fprintf(w, `<path d="M %s %s A %s %s 0 %d 1 %s %s" fill="none"%s/>`,
		trimFloat(start.X), trimFloat(start.Y),
		trimFloat(cfg.Radius), trimFloat(cfg.Radius), largeArc,
		trimFloat(end.X), trimFloat(end.Y), cfg.Style.svgAttrs())
}

func pointOnCircle(center graphics.Point, radius, angle float64) graphics.Point {
	return graphics.Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
