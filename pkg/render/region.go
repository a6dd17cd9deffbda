package render

import (
	"fmt"
	"io"

	"github.com/go-strata/strata/pkg/graphics"
)

// RegionConfig is the resolved configuration of a region annotation: a
// rectangle spanned by two resolved corner points.
type RegionConfig struct {
	Start graphics.Point
	End   graphics.Point
	Style Style
}

func (RegionConfig) isConfig() {}

// Region draws a filled rectangle between two resolved corners.
type Region struct {
	componentBase
	cfg RegionConfig
}

// NewRegion creates a region component. It is not visible until Render.
func NewRegion(cfg RegionConfig) *Region {
	return &Region{cfg: cfg}
}

// Config returns the current resolved configuration.
func (r *Region) Config() RegionConfig { return r.cfg }

func (r *Region) Update(cfg Config) {
	if c, ok := cfg.(RegionConfig); ok {
		r.cfg = c
	}
}

func (r *Region) writeSVG(w io.Writer) {
	if !r.visible() {
		return
	}
	rect := graphics.RectFromPoints(r.cfg.Start, r.cfg.End)
	fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
		trimFloat(rect.Left), trimFloat(rect.Top),
		trimFloat(rect.Width()), trimFloat(rect.Height()),
		r.cfg.Style.svgAttrs())
}
