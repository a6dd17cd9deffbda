package render

import (
	"strings"
	"testing"

	"github.com/go-strata/strata/pkg/graphics"
)

func TestGroupAddRemove(t *testing.T) {
	g := NewGroup("layer")
	a := NewLine(LineConfig{})
	b := NewRegion(RegionConfig{})
	g.Add(a)
	g.Add(b)
	if g.Len() != 2 {
		t.Fatalf("expected 2 components, got %d", g.Len())
	}
	g.Remove(a)
	if g.Len() != 1 {
		t.Fatalf("expected 1 component after remove, got %d", g.Len())
	}
	if g.Components()[0] != Component(b) {
		t.Fatal("expected remaining component to be b")
	}
	// Removing an unknown component is a no-op.
	g.Remove(a)
	if g.Len() != 1 {
		t.Fatalf("expected remove of unknown component to be ignored, got %d", g.Len())
	}
}

func TestGroupClearDestroysComponents(t *testing.T) {
	g := NewGroup("layer")
	child := g.NewChild("inner")
	a := NewText(TextConfig{Content: "x"})
	b := NewText(TextConfig{Content: "y"})
	g.Add(a)
	child.Add(b)

	g.Clear()
	if g.Len() != 0 {
		t.Fatalf("expected empty group, got %d", g.Len())
	}
	if !a.Destroyed() || !b.Destroyed() {
		t.Fatal("expected all components destroyed by clear")
	}
}

func TestGroupDetach(t *testing.T) {
	parent := NewGroup("parent")
	child := parent.NewChild("child")
	child.Detach()

	var b strings.Builder
	parent.WriteSVG(&b)
	if strings.Contains(b.String(), "child") {
		t.Fatalf("expected detached child to be gone, got %s", b.String())
	}
}

func TestComponentNotVisibleUntilRender(t *testing.T) {
	g := NewGroup("layer")
	line := NewLine(LineConfig{Start: graphics.Point{}, End: graphics.Point{X: 10, Y: 10}})
	g.Add(line)

	var before strings.Builder
	g.WriteSVG(&before)
	if strings.Contains(before.String(), "<line") {
		t.Fatal("expected unrendered component to emit nothing")
	}

	line.Render()
	var after strings.Builder
	g.WriteSVG(&after)
	if !strings.Contains(after.String(), "<line") {
		t.Fatalf("expected rendered line element, got %s", after.String())
	}

	line.Destroy()
	var destroyed strings.Builder
	g.WriteSVG(&destroyed)
	if strings.Contains(destroyed.String(), "<line") {
		t.Fatal("expected destroyed component to emit nothing")
	}
}
