package render

import (
	"fmt"
	"io"
)

// Group is an ordered container of components and child groups. Chart
// layers are groups; the annotation controller nests its own container
// group inside a layer.
type Group struct {
	name       string
	parent     *Group
	children   []*Group
	components []Component
}

// NewGroup creates a detached group with the given name.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

// Name returns the group's name.
func (g *Group) Name() string { return g.name }

// NewChild creates a child group attached to g.
func (g *Group) NewChild(name string) *Group {
	child := &Group{name: name, parent: g}
	g.children = append(g.children, child)
	return child
}

// Detach removes g from its parent. Detaching a root group is a no-op.
func (g *Group) Detach() {
	if g.parent == nil {
		return
	}
	siblings := g.parent.children
	for i, c := range siblings {
		if c == g {
			g.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	g.parent = nil
}

// Add attaches a component to the group.
func (g *Group) Add(c Component) {
	g.components = append(g.components, c)
}

// Remove detaches a component from the group. Unknown components are
// ignored.
func (g *Group) Remove(c Component) {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i], g.components[i+1:]...)
			return
		}
	}
}

// Clear destroys and removes every component and child group.
func (g *Group) Clear() {
	for _, c := range g.components {
		c.Destroy()
	}
	g.components = nil
	for _, child := range g.children {
		child.Clear()
		child.parent = nil
	}
	g.children = nil
}

// Len returns the number of directly attached components.
func (g *Group) Len() int {
	return len(g.components)
}

// Children returns the directly attached child groups in order.
func (g *Group) Children() []*Group {
	out := make([]*Group, len(g.children))
	copy(out, g.children)
	return out
}

// Components returns the directly attached components in order.
func (g *Group) Components() []Component {
	out := make([]Component, len(g.components))
	copy(out, g.components)
	return out
}

// WriteSVG serializes the group and its children as a <g> element.
func (g *Group) WriteSVG(w io.Writer) {
	fmt.Fprintf(w, "<g data-name=%q>", g.name)
	for _, c := range g.components {
		c.writeSVG(w)
	}
	for _, child := range g.children {
		child.WriteSVG(w)
	}
	io.WriteString(w, "</g>")
}
