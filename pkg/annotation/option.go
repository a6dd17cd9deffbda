package annotation

import (
	"fmt"

	"github.com/go-strata/strata/pkg/render"
)

// Kind identifies an annotation variant.
type Kind int

const (
	KindInvalid Kind = iota
	KindArc
	KindImage
	KindLine
	KindRegion
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindArc:
		return "arc"
	case KindImage:
		return "image"
	case KindLine:
		return "line"
	case KindRegion:
		return "region"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf maps a declaration type name to its Kind. Unknown names map to
// KindInvalid.
func KindOf(name string) Kind {
	switch name {
	case "arc":
		return KindArc
	case "image":
		return KindImage
	case "line":
		return KindLine
	case "region":
		return KindRegion
	case "text":
		return KindText
	default:
		return KindInvalid
	}
}

// Option is a declarative annotation description. The concrete types are
// ArcOption, ImageOption, LineOption, RegionOption, and TextOption; the
// union is closed. Options are treated as immutable once declared.
type Option interface {
	Kind() Kind
	top() bool
}

// topOf resolves the Top flag with its default of true: annotations render
// into the foreground layer unless explicitly routed behind the plot.
func topOf(top *bool) bool {
	return top == nil || *top
}

// ArcOption declares a circular arc swept between two resolved points
// about the coordinate center.
type ArcOption struct {
	Start Position
	End   Position
	Style render.Style
	// Top routes the arc to the foreground (true, default) or background
	// container.
	Top *bool
}

func (o *ArcOption) Kind() Kind { return KindArc }
func (o *ArcOption) top() bool  { return topOf(o.Top) }

// ImageOption declares an external image spanning two resolved points.
type ImageOption struct {
	Start Position
	End   Position
	// Src is a URL, file path, or data URI for the image content.
	Src     string
	OffsetX float64
	OffsetY float64
	Style   render.Style
	Top     *bool
}

func (o *ImageOption) Kind() Kind { return KindImage }
func (o *ImageOption) top() bool  { return topOf(o.Top) }

// LineOption declares a straight segment between two resolved points,
// optionally labeled.
type LineOption struct {
	Start Position
	End   Position
	// Text places a label along the line.
	Text  *LineText
	Style render.Style
	Top   *bool
}

func (o *LineOption) Kind() Kind { return KindLine }
func (o *LineOption) top() bool  { return topOf(o.Top) }

// LineText declares the label of a line annotation.
type LineText struct {
	// Position places the label along the line: "start", "center", "end",
	// or a percentage such as "30%". Empty means "center".
	Position string
	Content  string
	// AutoRotate aligns the label with the line's direction. Defaults to
	// the theme's setting.
	AutoRotate *bool
	OffsetX    float64
	OffsetY    float64
	Style      render.Style
}

// RegionOption declares a rectangular region spanning two resolved
// corner points.
type RegionOption struct {
	Start Position
	End   Position
	Style render.Style
	Top   *bool
}

func (o *RegionOption) Kind() Kind { return KindRegion }
func (o *RegionOption) top() bool  { return topOf(o.Top) }

// TextOption declares a label at a single resolved point.
type TextOption struct {
	Position Position
	Content  string
	// AutoRotate is passed through to the rendering layer. Defaults to
	// the theme's setting.
	AutoRotate *bool
	OffsetX    float64
	OffsetY    float64
	Style      render.Style
	Top        *bool
}

func (o *TextOption) Kind() Kind { return KindText }
func (o *TextOption) top() bool  { return topOf(o.Top) }
