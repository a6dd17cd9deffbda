// Package theme provides the default styling for chart annotations and an
// optional YAML theme pack loader.
//
// Style precedence throughout the library is user option > theme >
// built-in default: the annotation layer starts from the theme returned
// here and layers user-declared styles on top, field by field.
package theme

import "github.com/go-strata/strata/pkg/render"

// Theme contains the annotation styling for a chart.
type Theme struct {
	// Version identifies the theme pack, as a semantic version.
	Version string

	Annotation AnnotationTheme
}

// AnnotationTheme holds per-type annotation defaults.
type AnnotationTheme struct {
	Arc    ArcTheme
	Image  ImageTheme
	Line   LineTheme
	Region RegionTheme
	Text   TextTheme
}

// ArcTheme styles arc annotations.
type ArcTheme struct {
	Style render.Style
}

// ImageTheme styles image annotations.
type ImageTheme struct {
	Style render.Style
}

// LineTheme styles line annotations, including their nested labels.
type LineTheme struct {
	Style render.Style
	// Text provides the defaults for the line's nested label.
	Text TextTheme
}

// RegionTheme styles region annotations.
type RegionTheme struct {
	Style render.Style
}

// TextTheme styles text annotations.
type TextTheme struct {
	Style render.Style
	// AutoRotate aligns labels with their owning line when true.
	AutoRotate bool
}

// Default returns the built-in theme.
func Default() *Theme {
	lineText := TextTheme{
		Style: render.Style{
			"fill":      "#545454",
			"fontSize":  12.0,
			"textAlign": "center",
		},
		AutoRotate: true,
	}
	return &Theme{
		Version: "v1.0.0",
		Annotation: AnnotationTheme{
			Arc: ArcTheme{
				Style: render.Style{
					"stroke":    "#999999",
					"lineWidth": 1.0,
				},
			},
			Image: ImageTheme{
				Style: render.Style{},
			},
			Line: LineTheme{
				Style: render.Style{
					"stroke":    "#999999",
					"lineWidth": 1.0,
				},
				Text: lineText,
			},
			Region: RegionTheme{
				Style: render.Style{
					"fill":        "#000000",
					"fillOpacity": 0.04,
				},
			},
			Text: TextTheme{
				Style: render.Style{
					"fill":      "#545454",
					"fontSize":  12.0,
					"textAlign": "start",
				},
			},
		},
	}
}
