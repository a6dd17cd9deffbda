package annotation

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-strata/strata/pkg/coord"
	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/scale"
	"github.com/go-strata/strata/pkg/theme"
)

// resolver bundles the view state a config derivation needs.
type resolver struct {
	x     *scale.Scale
	ys    map[string]*scale.Scale
	coord coord.Coordinate
	theme *theme.Theme
}

func (r resolver) resolve(pos Position) (graphics.Point, bool) {
	return resolvePosition(pos, r.x, r.ys, r.coord)
}

// buildConfig derives the fully resolved component configuration for a
// declaration: resolved positions, computed geometry, and a style layered
// as user option over theme defaults. A nil option, an unresolvable
// position, or an unknown kind yields nil, dropping the annotation
// silently rather than failing the pass.
func buildConfig(opt Option, r resolver) render.Config {
	if opt == nil || r.theme == nil || r.coord == nil {
		return nil
	}
	switch o := opt.(type) {
	case *ArcOption:
		return buildArcConfig(o, r)
	case *ImageOption:
		return buildImageConfig(o, r)
	case *LineOption:
		return buildLineConfig(o, r)
	case *RegionOption:
		return buildRegionConfig(o, r)
	case *TextOption:
		return buildTextConfig(o, r)
	default:
		return nil
	}
}

func buildArcConfig(o *ArcOption, r resolver) render.Config {
	start, ok := r.resolve(o.Start)
	if !ok {
		return nil
	}
	end, ok := r.resolve(o.End)
	if !ok {
		return nil
	}
	center := r.coord.Center()
	startAngle := center.AngleTo(start)
	endAngle := center.AngleTo(end)
	// Always sweep in the positive direction: wrapping the end angle past
	// a full turn keeps startAngle <= endAngle unambiguous.
	if startAngle > endAngle {
		endAngle += 2 * math.Pi
	}
	return render.ArcConfig{
		Center:     center,
		Radius:     center.DistanceTo(start),
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Style:      render.MergeStyles(r.theme.Annotation.Arc.Style, o.Style),
	}
}

func buildImageConfig(o *ImageOption, r resolver) render.Config {
	start, ok := r.resolve(o.Start)
	if !ok {
		return nil
	}
	end, ok := r.resolve(o.End)
	if !ok {
		return nil
	}
	return render.ImageConfig{
		Start:   start,
		End:     end,
		Src:     o.Src,
		OffsetX: o.OffsetX,
		OffsetY: o.OffsetY,
		Style:   render.MergeStyles(r.theme.Annotation.Image.Style, o.Style),
	}
}

func buildLineConfig(o *LineOption, r resolver) render.Config {
	start, ok := r.resolve(o.Start)
	if !ok {
		return nil
	}
	end, ok := r.resolve(o.End)
	if !ok {
		return nil
	}
	cfg := render.LineConfig{
		Start: start,
		End:   end,
		Style: render.MergeStyles(r.theme.Annotation.Line.Style, o.Style),
	}
	if o.Text != nil {
		text := buildLineLabel(o.Text, r.theme.Annotation.Line.Text, start, end)
		cfg.Text = &text
	}
	return cfg
}

// buildLineLabel derives the nested label config of a line annotation
// from the theme's nested text defaults and the label's fractional
// position along the segment.
func buildLineLabel(t *LineText, defaults theme.TextTheme, start, end graphics.Point) render.TextConfig {
	anchor := start.Lerp(end, lineLabelFraction(t.Position))
	autoRotate := defaults.AutoRotate
	if t.AutoRotate != nil {
		autoRotate = *t.AutoRotate
	}
	var rotate float64
	if autoRotate {
		rotate = start.AngleTo(end)
	}
	return render.TextConfig{
		X:          anchor.X,
		Y:          anchor.Y,
		Content:    t.Content,
		AutoRotate: autoRotate,
		Rotate:     rotate,
		OffsetX:    t.OffsetX,
		OffsetY:    t.OffsetY,
		Style:      render.MergeStyles(defaults.Style, t.Style),
	}
}

// lineLabelFraction maps a label position spec to a fraction of the way
// from start to end. Unrecognized specs place the label at the center.
func lineLabelFraction(pos string) float64 {
	switch pos {
	case "start":
		return 0
	case "end":
		return 1
	case "", "center", "median":
		return 0.5
	}
	if strings.HasSuffix(pos, "%") {
		if f, err := strconv.ParseFloat(strings.TrimSuffix(pos, "%"), 64); err == nil {
			return f / 100
		}
	}
	return 0.5
}

func buildRegionConfig(o *RegionOption, r resolver) render.Config {
	start, ok := r.resolve(o.Start)
	if !ok {
		return nil
	}
	end, ok := r.resolve(o.End)
	if !ok {
		return nil
	}
	return render.RegionConfig{
		Start: start,
		End:   end,
		Style: render.MergeStyles(r.theme.Annotation.Region.Style, o.Style),
	}
}

func buildTextConfig(o *TextOption, r resolver) render.Config {
	p, ok := r.resolve(o.Position)
	if !ok {
		return nil
	}
	autoRotate := r.theme.Annotation.Text.AutoRotate
	if o.AutoRotate != nil {
		autoRotate = *o.AutoRotate
	}
	return render.TextConfig{
		X:          p.X,
		Y:          p.Y,
		Content:    o.Content,
		AutoRotate: autoRotate,
		OffsetX:    o.OffsetX,
		OffsetY:    o.OffsetY,
		Style:      render.MergeStyles(r.theme.Annotation.Text.Style, o.Style),
	}
}
