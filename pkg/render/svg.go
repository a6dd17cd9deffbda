package render

import (
	"fmt"
	"io"

	"github.com/go-strata/strata/pkg/graphics"
)

// WriteDocument serializes the given layer groups as a complete standalone
// SVG document of the given size. Layers are written in order, so earlier
// layers paint beneath later ones.
func WriteDocument(w io.Writer, size graphics.Size, layers ...*Group) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		trimFloat(size.Width), trimFloat(size.Height),
		trimFloat(size.Width), trimFloat(size.Height))
	if err != nil {
		return err
	}
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		layer.WriteSVG(w)
	}
	_, err = io.WriteString(w, "</svg>")
	return err
}
