package render

import (
	"fmt"
	"io"
	"math"
)

// TextConfig is the resolved configuration of a text annotation. X and Y
// are final pixel coordinates; OffsetX/OffsetY shift the rendered label
// without affecting the resolved anchor.
type TextConfig struct {
	X       float64
	Y       float64
	Content string
	// AutoRotate records whether the label follows its owner's direction.
	AutoRotate bool
	// Rotate is the label rotation in radians about its anchor. The
	// annotation layer sets it when AutoRotate is in effect.
	Rotate  float64
	OffsetX float64
	OffsetY float64
	Style   Style
}

// Anchor returns the label's effective anchor point after offsets.
func (c TextConfig) Anchor() (x, y float64) {
	return c.X + c.OffsetX, c.Y + c.OffsetY
}

func (TextConfig) isConfig() {}

// Text draws a label at a resolved anchor point.
type Text struct {
	componentBase
	cfg TextConfig
}

// NewText creates a text component. It is not visible until Render.
func NewText(cfg TextConfig) *Text {
	return &Text{cfg: cfg}
}

// Config returns the current resolved configuration.
func (t *Text) Config() TextConfig { return t.cfg }

func (t *Text) Update(cfg Config) {
	if c, ok := cfg.(TextConfig); ok {
		t.cfg = c
	}
}

func (t *Text) writeSVG(w io.Writer) {
	if !t.visible() {
		return
	}
	writeTextSVG(w, t.cfg)
}

func writeTextSVG(w io.Writer, cfg TextConfig) {
	x, y := cfg.Anchor()

	// SVG anchors text at the baseline start; shift by measured extent to
	// honor the declared alignment.
	size := cfg.Style.Float("fontSize", 12)
	extent := MeasureText(cfg.Content, size)
	switch cfg.Style.String("textAlign", "start") {
	case "center", "middle":
		x -= extent.Width / 2
	case "end", "right":
		x -= extent.Width
	}

	var transform string
	if cfg.Rotate != 0 {
		transform = fmt.Sprintf(` transform="rotate(%s %s %s)"`,
			trimFloat(cfg.Rotate*180/math.Pi), trimFloat(x), trimFloat(y))
	}
	fmt.Fprintf(w, `<text x="%s" y="%s"%s%s>%s</text>`,
		trimFloat(x), trimFloat(y), transform, cfg.Style.svgAttrs(),
		escapeAttr(cfg.Content))
}
