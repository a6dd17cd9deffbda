package annotation

import (
	"math"
	"testing"

	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/scale"
	"github.com/go-strata/strata/pkg/theme"
)

func testResolver() resolver {
	x, ys := testScales()
	return resolver{
		x:     x,
		ys:    ys,
		coord: testCoord(),
		theme: theme.Default(),
	}
}

func TestBuildConfigNilOption(t *testing.T) {
	if cfg := buildConfig(nil, testResolver()); cfg != nil {
		t.Fatal("expected nil config for nil option")
	}
}

func TestBuildLineConfigWithCenteredLabel(t *testing.T) {
	r := testResolver()
	cfg := buildConfig(&LineOption{
		Start: XY(0, 0),
		End:   Percent("100%", "100%"),
		Text:  &LineText{Position: "center", Content: "X"},
	}, r)

	line, ok := cfg.(render.LineConfig)
	if !ok {
		t.Fatalf("expected LineConfig, got %T", cfg)
	}
	if line.Text == nil {
		t.Fatal("expected nested text config")
	}
	mid := line.Start.Lerp(line.End, 0.5)
	if line.Text.X != mid.X || line.Text.Y != mid.Y {
		t.Fatalf("expected label at midpoint (%v,%v), got (%v,%v)",
			mid.X, mid.Y, line.Text.X, line.Text.Y)
	}
	if line.Text.Content != "X" {
		t.Fatalf("expected content X, got %q", line.Text.Content)
	}
}

func TestBuildLineLabelFractions(t *testing.T) {
	cases := map[string]float64{
		"start":  0,
		"center": 0.5,
		"end":    1,
		"30%":    0.3,
		"":       0.5,
		"bogus":  0.5,
	}
	for pos, want := range cases {
		if got := lineLabelFraction(pos); math.Abs(got-want) > 1e-9 {
			t.Fatalf("position %q: expected %v, got %v", pos, want, got)
		}
	}
}

func TestBuildLineLabelAutoRotate(t *testing.T) {
	defaults := theme.Default().Annotation.Line.Text
	start := graphics.Point{X: 0, Y: 0}
	end := graphics.Point{X: 10, Y: 10}

	cfg := buildLineLabel(&LineText{Content: "x"}, defaults, start, end)
	if !cfg.AutoRotate {
		t.Fatal("expected theme default autoRotate true")
	}
	if math.Abs(cfg.Rotate-math.Pi/4) > 1e-9 {
		t.Fatalf("expected rotation π/4, got %v", cfg.Rotate)
	}

	off := false
	cfg = buildLineLabel(&LineText{Content: "x", AutoRotate: &off}, defaults, start, end)
	if cfg.AutoRotate || cfg.Rotate != 0 {
		t.Fatal("expected autoRotate override to suppress rotation")
	}
}

func TestBuildArcConfigSweepAdjustment(t *testing.T) {
	r := testResolver()
	// Start below center (angle π/2 in screen coordinates), end to the
	// right of center (angle 0): the end angle wraps a full turn forward.
	cfg := buildConfig(&ArcOption{
		Start: Percent("50%", "75%"),
		End:   Percent("75%", "50%"),
	}, r)

	arc, ok := cfg.(render.ArcConfig)
	if !ok {
		t.Fatalf("expected ArcConfig, got %T", cfg)
	}
	if math.Abs(arc.StartAngle-math.Pi/2) > 1e-9 {
		t.Fatalf("expected start angle π/2, got %v", arc.StartAngle)
	}
	if math.Abs(arc.EndAngle-2*math.Pi) > 1e-9 {
		t.Fatalf("expected end angle 2π, got %v", arc.EndAngle)
	}
	if arc.StartAngle > arc.EndAngle {
		t.Fatal("expected startAngle <= endAngle after adjustment")
	}
	if math.Abs(arc.Radius-25) > 1e-9 {
		t.Fatalf("expected radius 25, got %v", arc.Radius)
	}
}

func TestBuildArcConfigNoAdjustmentWhenOrdered(t *testing.T) {
	r := testResolver()
	// Start right of center (angle 0), end below center (angle π/2):
	// already sweeping forward, no wrap.
	cfg := buildConfig(&ArcOption{
		Start: Percent("75%", "50%"),
		End:   Percent("50%", "75%"),
	}, r)

	arc := cfg.(render.ArcConfig)
	if math.Abs(arc.EndAngle-math.Pi/2) > 1e-9 {
		t.Fatalf("expected end angle π/2, got %v", arc.EndAngle)
	}
}

func TestBuildTextConfigSplicesPosition(t *testing.T) {
	r := testResolver()
	cfg := buildConfig(&TextOption{
		Position: Percent("50%", "50%"),
		Content:  "note",
		OffsetX:  3,
	}, r)

	text, ok := cfg.(render.TextConfig)
	if !ok {
		t.Fatalf("expected TextConfig, got %T", cfg)
	}
	center := r.coord.Center()
	if text.X != center.X || text.Y != center.Y {
		t.Fatalf("expected position spliced to (%v,%v), got (%v,%v)",
			center.X, center.Y, text.X, text.Y)
	}
	if text.OffsetX != 3 {
		t.Fatalf("expected offsetX passthrough, got %v", text.OffsetX)
	}
}

func TestBuildConfigStylePrecedence(t *testing.T) {
	r := testResolver()
	cfg := buildConfig(&RegionOption{
		Start: XY(0, 0),
		End:   XY(1, 1),
		Style: render.Style{"fill": "#123456"},
	}, r)

	region := cfg.(render.RegionConfig)
	if got := region.Style.String("fill", ""); got != "#123456" {
		t.Fatalf("expected user fill to override theme, got %q", got)
	}
	// Theme keys the user does not set survive the merge.
	if got := region.Style.Float("fillOpacity", 0); got != 0.04 {
		t.Fatalf("expected theme fillOpacity, got %v", got)
	}
}

func TestBuildConfigUnresolvablePosition(t *testing.T) {
	r := testResolver()
	cfg := buildConfig(&LineOption{
		Start: Func(func(*scale.Scale, map[string]*scale.Scale) Position { return nil }),
		End:   XY(1, 1),
	}, r)
	if cfg != nil {
		t.Fatal("expected unresolvable position to suppress the config")
	}
}
