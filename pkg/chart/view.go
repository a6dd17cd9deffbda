// Package chart provides a minimal chart view wiring scales, a
// coordinate transform, a theme, and render layers together, so the
// annotation controller has a host to run against.
package chart

import (
	"io"

	"github.com/go-strata/strata/pkg/annotation"
	"github.com/go-strata/strata/pkg/coord"
	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/scale"
	"github.com/go-strata/strata/pkg/theme"
)

// Config describes a view: its pixel size, scales, coordinate, and theme.
// Zero-value fields get workable defaults from New.
type Config struct {
	Size       graphics.Size
	XScale     *scale.Scale
	YScales    map[string]*scale.Scale
	Coordinate coord.Coordinate
	Theme      *theme.Theme
}

// View is a concrete annotation.View backed by in-memory render layers.
type View struct {
	size        graphics.Size
	xScale      *scale.Scale
	yScales     map[string]*scale.Scale
	coordinate  coord.Coordinate
	theme       *theme.Theme
	layers      map[annotation.Layer]*render.Group
	annotations *annotation.Controller
}

// New creates a view. A missing coordinate defaults to a cartesian over
// the full size; a missing theme defaults to the built-in theme.
func New(cfg Config) *View {
	size := cfg.Size
	if size.Width <= 0 {
		size.Width = 640
	}
	if size.Height <= 0 {
		size.Height = 480
	}
	co := cfg.Coordinate
	if co == nil {
		co = coord.NewCartesian(graphics.RectFromLTWH(0, 0, size.Width, size.Height))
	}
	th := cfg.Theme
	if th == nil {
		th = theme.Default()
	}
	v := &View{
		size:       size,
		xScale:     cfg.XScale,
		yScales:    cfg.YScales,
		coordinate: co,
		theme:      th,
		layers:     make(map[annotation.Layer]*render.Group),
	}
	v.annotations = annotation.NewController(v)
	return v
}

// Annotations returns the view's annotation controller.
func (v *View) Annotations() *annotation.Controller {
	return v.annotations
}

// Size returns the view's pixel size.
func (v *View) Size() graphics.Size { return v.size }

func (v *View) XScale() *scale.Scale { return v.xScale }

func (v *View) YScales() map[string]*scale.Scale { return v.yScales }

func (v *View) Coordinate() coord.Coordinate { return v.coordinate }

func (v *View) Theme() *theme.Theme { return v.theme }

// Layer returns the named layer group, creating it on first use.
func (v *View) Layer(name annotation.Layer) *render.Group {
	if g, ok := v.layers[name]; ok {
		return g
	}
	g := render.NewGroup(string(name))
	v.layers[name] = g
	return g
}

// SetCoordinate replaces the coordinate transform, as a host does when
// the chart region changes. Call the controller's Layout afterwards to
// reposition live annotations.
func (v *View) SetCoordinate(co coord.Coordinate) {
	if co != nil {
		v.coordinate = co
	}
}

// WriteSVG serializes the view's layers as an SVG document, background
// beneath foreground.
func (v *View) WriteSVG(w io.Writer) error {
	return render.WriteDocument(w, v.size,
		v.Layer(annotation.LayerBackground),
		v.Layer(annotation.LayerForeground))
}
