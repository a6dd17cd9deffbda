package render

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-strata/strata/pkg/graphics"
)

// measureFace is the reference face used for text extent estimation.
// Its glyphs are 13px tall; extents are scaled to the requested size.
var measureFace font.Face = basicfont.Face7x13

const measureFaceSize = 13.0

// MeasureText estimates the pixel extent of a single-line label at the
// given font size. The estimate uses a fixed-metric reference face, which
// is adequate for anchor alignment; exact glyph metrics are the
// rasterizer's concern.
func MeasureText(content string, fontSize float64) graphics.Size {
	if content == "" {
		return graphics.Size{}
	}
	if fontSize <= 0 {
		fontSize = 12
	}
	advance := font.MeasureString(measureFace, content)
	width := float64(advance.Round()) * fontSize / measureFaceSize
	return graphics.Size{Width: width, Height: fontSize}
}
