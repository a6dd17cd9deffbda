package chart

import (
	"strings"
	"testing"

	"github.com/go-strata/strata/pkg/annotation"
	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/scale"
)

func TestNewViewDefaults(t *testing.T) {
	v := New(Config{})
	if v.Size().Width != 640 || v.Size().Height != 480 {
		t.Fatalf("expected default size 640x480, got %+v", v.Size())
	}
	if v.Coordinate() == nil {
		t.Fatal("expected default coordinate")
	}
	if v.Theme() == nil {
		t.Fatal("expected default theme")
	}
}

func TestViewLayersAreStable(t *testing.T) {
	v := New(Config{})
	a := v.Layer(annotation.LayerForeground)
	b := v.Layer(annotation.LayerForeground)
	if a != b {
		t.Fatal("expected the same layer group on repeated lookups")
	}
	if a == v.Layer(annotation.LayerBackground) {
		t.Fatal("expected distinct foreground and background layers")
	}
}

func TestViewRendersAnnotationsToSVG(t *testing.T) {
	v := New(Config{
		Size:   graphics.Size{Width: 100, Height: 100},
		XScale: scale.Category("city", "a", "b", "c"),
		YScales: map[string]*scale.Scale{
			"temp": scale.Linear("temp", 0, 100),
		},
	})
	v.Annotations().
		Line(&annotation.LineOption{
			Start: annotation.XY(0, 0),
			End:   annotation.Percent("100%", "100%"),
		}).
		Text(&annotation.TextOption{
			Position: annotation.Percent("50%", "50%"),
			Content:  "center",
		})
	v.Annotations().Render()

	var b strings.Builder
	if err := v.WriteSVG(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "<line") {
		t.Fatalf("expected line element, got %s", out)
	}
	if !strings.Contains(out, ">center</text>") {
		t.Fatalf("expected text element, got %s", out)
	}
}

func TestViewSetCoordinate(t *testing.T) {
	v := New(Config{Size: graphics.Size{Width: 100, Height: 100}})
	before := v.Coordinate()
	v.SetCoordinate(nil)
	if v.Coordinate() != before {
		t.Fatal("expected nil coordinate to be ignored")
	}
}
