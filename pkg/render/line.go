package render

import (
	"fmt"
	"io"

	"github.com/go-strata/strata/pkg/graphics"
)

// LineConfig is the resolved configuration of a line annotation.
type LineConfig struct {
	Start graphics.Point
	End   graphics.Point
	// Text is the optional label placed along the line.
	Text  *TextConfig
	Style Style
}

func (LineConfig) isConfig() {}

// Line draws a straight segment between two resolved points, with an
// optional label.
type Line struct {
	componentBase
	cfg LineConfig
}

// NewLine creates a line component. It is not visible until Render.
func NewLine(cfg LineConfig) *Line {
	return &Line{cfg: cfg}
}

// Config returns the current resolved configuration.
func (l *Line) Config() LineConfig { return l.cfg }

func (l *Line) Update(cfg Config) {
	if c, ok := cfg.(LineConfig); ok {
		l.cfg = c
	}
}

func (l *Line) writeSVG(w io.Writer) {
	if !l.visible() {
		return
	}
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
		trimFloat(l.cfg.Start.X), trimFloat(l.cfg.Start.Y),
		trimFloat(l.cfg.End.X), trimFloat(l.cfg.End.Y),
		l.cfg.Style.svgAttrs())
	if l.cfg.Text != nil && l.cfg.Text.Content != "" {
		writeTextSVG(w, *l.cfg.Text)
	}
}
