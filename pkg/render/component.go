package render

import "io"

// Config is a resolved component configuration. The concrete types are
// LineConfig, TextConfig, RegionConfig, ImageConfig, and ArcConfig; a
// component ignores configs of the wrong concrete type rather than
// failing, so a mismatched update degrades to a no-op.
type Config interface {
	isConfig()
}

// Component is a live renderable annotation instance.
//
// Render makes the component visible in its group; Update replaces its
// resolved configuration in place; Destroy detaches it permanently.
// All three are idempotent.
type Component interface {
	Render()
	Update(cfg Config)
	Destroy()
	// Destroyed reports whether Destroy has been called.
	Destroyed() bool

	writeSVG(w io.Writer)
}

// componentBase carries the lifecycle state shared by all components.
type componentBase struct {
	rendered  bool
	destroyed bool
}

func (b *componentBase) Render() {
	if b.destroyed {
		return
	}
	b.rendered = true
}

func (b *componentBase) Destroy() {
	b.destroyed = true
	b.rendered = false
}

func (b *componentBase) Destroyed() bool {
	return b.destroyed
}

func (b *componentBase) visible() bool {
	return b.rendered && !b.destroyed
}
