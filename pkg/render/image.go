package render

import (
	"fmt"
	"io"

	"github.com/go-strata/strata/pkg/graphics"
)

// ImageConfig is the resolved configuration of an image annotation.
type ImageConfig struct {
	Start graphics.Point
	End   graphics.Point
	// Src is a URL, file path, or data URI for the image content.
	Src     string
	OffsetX float64
	OffsetY float64
	Style   Style
}

func (ImageConfig) isConfig() {}

// Image draws an external image into the rectangle spanned by two
// resolved points.
type Image struct {
	componentBase
	cfg ImageConfig
}

// NewImage creates an image component. It is not visible until Render.
func NewImage(cfg ImageConfig) *Image {
	return &Image{cfg: cfg}
}

// Config returns the current resolved configuration.
func (i *Image) Config() ImageConfig { return i.cfg }

func (i *Image) Update(cfg Config) {
	if c, ok := cfg.(ImageConfig); ok {
		i.cfg = c
	}
}

func (i *Image) writeSVG(w io.Writer) {
	if !i.visible() {
		return
	}
	rect := graphics.RectFromPoints(i.cfg.Start, i.cfg.End)
	fmt.Fprintf(w, `<image x="%s" y="%s" width="%s" height="%s" href="%s"%s/>`,
		trimFloat(rect.Left+i.cfg.OffsetX), trimFloat(rect.Top+i.cfg.OffsetY),
		trimFloat(rect.Width()), trimFloat(rect.Height()),
		escapeAttr(i.cfg.Src), i.cfg.Style.svgAttrs())
}
