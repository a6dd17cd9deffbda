// Package decl loads YAML chart declarations and builds views from them.
package decl

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-strata/strata/pkg/annotation"
	"github.com/go-strata/strata/pkg/chart"
	"github.com/go-strata/strata/pkg/coord"
	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/scale"
	"github.com/go-strata/strata/pkg/theme"
)

// File mirrors the YAML chart declaration layout.
type File struct {
	Size        SizeDecl         `yaml:"size"`
	Scales      ScalesDecl       `yaml:"scales"`
	Coordinate  CoordDecl        `yaml:"coordinate"`
	Theme       string           `yaml:"theme"`
	Annotations []AnnotationDecl `yaml:"annotations"`
}

type SizeDecl struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ScalesDecl struct {
	X ScaleDecl   `yaml:"x"`
	Y []ScaleDecl `yaml:"y"`
}

type ScaleDecl struct {
	Field  string   `yaml:"field"`
	Values []string `yaml:"values"`
	Min    float64  `yaml:"min"`
	Max    float64  `yaml:"max"`
}

type CoordDecl struct {
	// Type is "cartesian" (default) or "polar".
	Type       string  `yaml:"type"`
	Padding    float64 `yaml:"padding"`
	StartAngle float64 `yaml:"startAngle"`
	EndAngle   float64 `yaml:"endAngle"`
}

// AnnotationDecl is the union of recognized per-annotation fields; Type
// decides which of them apply.
type AnnotationDecl struct {
	Type       string         `yaml:"type"`
	Top        *bool          `yaml:"top"`
	Start      any            `yaml:"start"`
	End        any            `yaml:"end"`
	Position   any            `yaml:"position"`
	Style      map[string]any `yaml:"style"`
	Src        string         `yaml:"src"`
	OffsetX    float64        `yaml:"offsetX"`
	OffsetY    float64        `yaml:"offsetY"`
	Content    string         `yaml:"content"`
	AutoRotate *bool          `yaml:"autoRotate"`
	Text       *LineTextDecl  `yaml:"text"`
}

type LineTextDecl struct {
	Position   string         `yaml:"position"`
	Content    string         `yaml:"content"`
	AutoRotate *bool          `yaml:"autoRotate"`
	OffsetX    float64        `yaml:"offsetX"`
	OffsetY    float64        `yaml:"offsetY"`
	Style      map[string]any `yaml:"style"`
}

// Load reads and parses a chart declaration.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("decl.Load", errors.KindConfig, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.New("decl.Load", errors.KindConfig, err)
	}
	return &f, nil
}

// BuildView constructs a chart view from the declaration and declares
// its annotations. Relative theme and image paths resolve against
// baseDir. Local image sources are inlined as data URIs through the
// shared cache so the emitted SVG is standalone.
func (f *File) BuildView(baseDir string, cache *render.SourceCache) (*chart.View, error) {
	size := graphics.Size{Width: f.Size.Width, Height: f.Size.Height}
	if size.Width <= 0 {
		size.Width = 640
	}
	if size.Height <= 0 {
		size.Height = 480
	}

	th := theme.Default()
	if f.Theme != "" {
		loaded, err := theme.Load(resolvePath(baseDir, f.Theme))
		if err != nil {
			return nil, err
		}
		th = loaded
	}

	yScales := make(map[string]*scale.Scale, len(f.Scales.Y))
	for _, d := range f.Scales.Y {
		yScales[d.Field] = buildScale(d)
	}

	view := chart.New(chart.Config{
		Size:       size,
		XScale:     buildScale(f.Scales.X),
		YScales:    yScales,
		Coordinate: f.Coordinate.build(size),
		Theme:      th,
	})

	ctrl := view.Annotations()
	for i, d := range f.Annotations {
		opt, err := d.option(baseDir, cache)
		if err != nil {
			return nil, errors.Newf("decl.BuildView", errors.KindConfig,
				"annotation %d: %v", i, err)
		}
		ctrl.Annotation(opt)
	}
	return view, nil
}

func buildScale(d ScaleDecl) *scale.Scale {
	if len(d.Values) > 0 {
		return scale.Category(d.Field, d.Values...)
	}
	return scale.Linear(d.Field, d.Min, d.Max)
}

func (d CoordDecl) build(size graphics.Size) coord.Coordinate {
	region := graphics.RectFromLTWH(d.Padding, d.Padding,
		size.Width-2*d.Padding, size.Height-2*d.Padding)
	if d.Type == "polar" {
		end := d.EndAngle
		if end == d.StartAngle {
			end = d.StartAngle + 2*math.Pi
		}
		return coord.NewPolar(region, d.StartAngle, end)
	}
	return coord.NewCartesian(region)
}

func (d AnnotationDecl) option(baseDir string, cache *render.SourceCache) (annotation.Option, error) {
	kind := annotation.KindOf(d.Type)
	switch kind {
	case annotation.KindArc:
		return &annotation.ArcOption{
			Start: parsePosition(d.Start),
			End:   parsePosition(d.End),
			Style: render.Style(d.Style),
			Top:   d.Top,
		}, nil
	case annotation.KindImage:
		src, err := inlineSource(baseDir, d.Src, cache)
		if err != nil {
			return nil, err
		}
		return &annotation.ImageOption{
			Start:   parsePosition(d.Start),
			End:     parsePosition(d.End),
			Src:     src,
			OffsetX: d.OffsetX,
			OffsetY: d.OffsetY,
			Style:   render.Style(d.Style),
			Top:     d.Top,
		}, nil
	case annotation.KindLine:
		opt := &annotation.LineOption{
			Start: parsePosition(d.Start),
			End:   parsePosition(d.End),
			Style: render.Style(d.Style),
			Top:   d.Top,
		}
		if d.Text != nil {
			opt.Text = &annotation.LineText{
				Position:   d.Text.Position,
				Content:    d.Text.Content,
				AutoRotate: d.Text.AutoRotate,
				OffsetX:    d.Text.OffsetX,
				OffsetY:    d.Text.OffsetY,
				Style:      render.Style(d.Text.Style),
			}
		}
		return opt, nil
	case annotation.KindRegion:
		return &annotation.RegionOption{
			Start: parsePosition(d.Start),
			End:   parsePosition(d.End),
			Style: render.Style(d.Style),
			Top:   d.Top,
		}, nil
	case annotation.KindText:
		return &annotation.TextOption{
			Position:   parsePosition(d.Position),
			Content:    d.Content,
			AutoRotate: d.AutoRotate,
			OffsetX:    d.OffsetX,
			OffsetY:    d.OffsetY,
			Style:      render.Style(d.Style),
			Top:        d.Top,
		}, nil
	default:
		return nil, fmt.Errorf("unknown annotation type %q", d.Type)
	}
}

// parsePosition converts a YAML position value: a two-element sequence
// becomes a Pair, a mapping becomes Fields. Anything else is nil.
func parsePosition(v any) annotation.Position {
	switch p := v.(type) {
	case []any:
		if len(p) != 2 {
			return nil
		}
		return annotation.Pair{X: parseValue(p[0]), Y: parseValue(p[1])}
	case map[string]any:
		fields := make(annotation.Fields, len(p))
		for k, raw := range p {
			fields[k] = parseValue(raw)
		}
		return fields
	default:
		return nil
	}
}

func parseValue(v any) annotation.Value {
	switch t := v.(type) {
	case string:
		return annotation.Str(t)
	case float64:
		return annotation.Num(t)
	case int:
		return annotation.Num(float64(t))
	default:
		return annotation.Str(fmt.Sprint(t))
	}
}

// inlineSource converts a local image path into a cached data URI; URLs
// and data URIs pass through untouched.
func inlineSource(baseDir, src string, cache *render.SourceCache) (string, error) {
	if src == "" {
		return "", fmt.Errorf("image annotation requires src")
	}
	path := resolvePath(baseDir, src)
	if _, err := os.Stat(path); err != nil {
		return src, nil
	}
	return cache.Get(path, func() (string, error) {
		return render.EncodeFileDataURI(path)
	})
}

func resolvePath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
