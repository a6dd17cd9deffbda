// Package render provides the renderable annotation components and the
// group containers they attach to.
//
// Components are lightweight draw descriptions: each one holds a resolved
// configuration produced by the annotation layer and knows how to emit
// itself as SVG. The annotation controller owns component lifecycle through
// the Component interface (Render, Update, Destroy); this package never
// decides when a component is created or torn down.
//
// Groups form a two-level hierarchy: a chart view owns layer groups
// (foreground, background) and the annotation controller attaches its own
// container group to each. WriteDocument serializes a set of layers into a
// complete SVG document.
package render
