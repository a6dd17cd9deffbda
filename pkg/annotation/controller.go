package annotation

import (
	"sort"

	"github.com/go-strata/strata/pkg/coord"
	"github.com/go-strata/strata/pkg/render"
	"github.com/go-strata/strata/pkg/scale"
	"github.com/go-strata/strata/pkg/theme"
)

// Layer names the chart layers annotations may render into, relative to
// the primary plot layer.
type Layer string

const (
	LayerForeground Layer = "foreground"
	LayerBackground Layer = "background"
)

// View is the host the controller consumes: scales, the coordinate
// transform, theme defaults, and the layer groups annotations attach to.
type View interface {
	XScale() *scale.Scale
	// YScales maps data-field names to the chart's y scales.
	YScales() map[string]*scale.Scale
	Coordinate() coord.Coordinate
	Theme() *theme.Theme
	Layer(name Layer) *render.Group
}

// Record tracks one live annotation: its component, the container it is
// attached to, and the declaration it was derived from. The declaration
// back-reference matters because Layout and Update re-derive the
// configuration from the current option, never from a stale copy.
type Record struct {
	Component render.Component
	Container *render.Group
	Kind      Kind
	Top       bool
	Option    Option
}

// componentFactories maps each annotation kind to its component
// constructor. An unknown kind has no entry and its declaration is
// dropped without a record.
var componentFactories = map[Kind]func(render.Config) render.Component{
	KindArc: func(cfg render.Config) render.Component {
		if c, ok := cfg.(render.ArcConfig); ok {
			return render.NewArc(c)
		}
		return nil
	},
	KindImage: func(cfg render.Config) render.Component {
		if c, ok := cfg.(render.ImageConfig); ok {
			return render.NewImage(c)
		}
		return nil
	},
	KindLine: func(cfg render.Config) render.Component {
		if c, ok := cfg.(render.LineConfig); ok {
			return render.NewLine(c)
		}
		return nil
	},
	KindRegion: func(cfg render.Config) render.Component {
		if c, ok := cfg.(render.RegionConfig); ok {
			return render.NewRegion(c)
		}
		return nil
	},
	KindText: func(cfg render.Config) render.Component {
		if c, ok := cfg.(render.TextConfig); ok {
			return render.NewText(c)
		}
		return nil
	},
}

// declared pairs an option with the stable handle assigned at
// declaration time. Handles, not option identity, key the cache.
type declared struct {
	id  int
	opt Option
}

// Controller owns the declared annotation options of one view and the
// live components rendered from them.
//
// The controller is single-threaded: callers must serialize lifecycle
// calls relative to declaration calls.
type Controller struct {
	view       View
	foreground *render.Group
	background *render.Group
	options    []declared
	cache      map[int]*Record
	nextID     int
}

// NewController creates a controller bound to the given view. Containers
// are not created until Init (or the first Render/Update).
func NewController(v View) *Controller {
	return &Controller{
		view:  v,
		cache: make(map[int]*Record),
	}
}

// Annotation appends a declaration of any kind and returns the
// controller for chaining. Nil options are ignored.
func (c *Controller) Annotation(opt Option) *Controller {
	if opt == nil {
		return c
	}
	c.options = append(c.options, declared{id: c.nextID, opt: opt})
	c.nextID++
	return c
}

// Arc appends an arc declaration.
func (c *Controller) Arc(opt *ArcOption) *Controller {
	if opt == nil {
		return c
	}
	return c.Annotation(opt)
}

// Image appends an image declaration.
func (c *Controller) Image(opt *ImageOption) *Controller {
	if opt == nil {
		return c
	}
	return c.Annotation(opt)
}

// Line appends a line declaration.
func (c *Controller) Line(opt *LineOption) *Controller {
	if opt == nil {
		return c
	}
	return c.Annotation(opt)
}

// Region appends a region declaration.
func (c *Controller) Region(opt *RegionOption) *Controller {
	if opt == nil {
		return c
	}
	return c.Annotation(opt)
}

// Text appends a text declaration.
func (c *Controller) Text(opt *TextOption) *Controller {
	if opt == nil {
		return c
	}
	return c.Annotation(opt)
}

// SetOptions replaces the declared option set. Options already declared
// keep their handles, so a following Update reuses their live
// components; unknown options get fresh handles and render as new
// components. Nil entries are skipped.
func (c *Controller) SetOptions(opts ...Option) *Controller {
	existing := make(map[Option]int, len(c.options))
	for _, d := range c.options {
		existing[d.opt] = d.id
	}
	next := make([]declared, 0, len(opts))
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if id, ok := existing[opt]; ok {
			next = append(next, declared{id: id, opt: opt})
			continue
		}
		next = append(next, declared{id: c.nextID, opt: opt})
		c.nextID++
	}
	c.options = next
	return c
}

// Options returns the declared options in order.
func (c *Controller) Options() []Option {
	out := make([]Option, len(c.options))
	for i, d := range c.options {
		out[i] = d.opt
	}
	return out
}

// Init creates the controller's container groups inside the view's
// foreground and background layers. It is idempotent; Render and Update
// call it as needed.
func (c *Controller) Init() {
	if c.foreground != nil {
		return
	}
	c.foreground = c.view.Layer(LayerForeground).NewChild("annotation")
	c.background = c.view.Layer(LayerBackground).NewChild("annotation")
}

// Render materializes every declared annotation that has no live
// component yet.
func (c *Controller) Render() {
	c.Init()
	for _, d := range c.options {
		if _, ok := c.cache[d.id]; ok {
			continue
		}
		if rec := c.createAnnotation(d); rec != nil {
			rec.Component.Render()
			c.cache[d.id] = rec
		}
	}
}

// Layout recomputes every live annotation's configuration against the
// current scales and coordinate and updates the component in place. No
// components are created or destroyed.
func (c *Controller) Layout() {
	r := c.resolver()
	for _, d := range c.options {
		rec, ok := c.cache[d.id]
		if !ok {
			continue
		}
		if cfg := buildConfig(d.opt, r); cfg != nil {
			rec.Component.Update(cfg)
		}
	}
}

// Update reconciles the declared options against the live components:
// surviving declarations are updated in place (their container is never
// reassigned), new declarations are created and rendered, and any
// component whose declaration is gone is destroyed and detached. The
// cache is rebuilt wholesale so stale entries are pruned by omission.
func (c *Controller) Update() {
	c.Init()
	r := c.resolver()
	next := make(map[int]*Record, len(c.options))
	for _, d := range c.options {
		if rec, ok := c.cache[d.id]; ok {
			if cfg := buildConfig(d.opt, r); cfg != nil {
				rec.Component.Update(cfg)
			}
			rec.Option = d.opt
			next[d.id] = rec
			continue
		}
		if rec := c.createAnnotation(d); rec != nil {
			rec.Component.Render()
			next[d.id] = rec
		}
	}
	for id, rec := range c.cache {
		if _, ok := next[id]; ok {
			continue
		}
		rec.Component.Destroy()
		rec.Container.Remove(rec.Component)
	}
	c.cache = next
}

// Clear tears down all rendered state. Declared options survive unless
// includeOptions is true.
func (c *Controller) Clear(includeOptions bool) {
	if c.foreground != nil {
		c.foreground.Clear()
	}
	if c.background != nil {
		c.background.Clear()
	}
	c.cache = make(map[int]*Record)
	if includeOptions {
		c.options = nil
	}
}

// Destroy performs a full clear including options and removes the
// controller's containers from the view's layers.
func (c *Controller) Destroy() {
	c.Clear(true)
	if c.foreground != nil {
		c.foreground.Detach()
		c.foreground = nil
	}
	if c.background != nil {
		c.background.Detach()
		c.background = nil
	}
}

// Components returns the live records in declaration order.
func (c *Controller) Components() []*Record {
	ids := make([]int, 0, len(c.cache))
	for id := range c.cache {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*Record, len(ids))
	for i, id := range ids {
		out[i] = c.cache[id]
	}
	return out
}

func (c *Controller) resolver() resolver {
	return resolver{
		x:     c.view.XScale(),
		ys:    c.view.YScales(),
		coord: c.view.Coordinate(),
		theme: c.view.Theme(),
	}
}

func (c *Controller) createAnnotation(d declared) *Record {
	cfg := buildConfig(d.opt, c.resolver())
	if cfg == nil {
		return nil
	}
	factory, ok := componentFactories[d.opt.Kind()]
	if !ok {
		return nil
	}
	comp := factory(cfg)
	if comp == nil {
		return nil
	}
	top := d.opt.top()
	container := c.background
	if top {
		container = c.foreground
	}
	container.Add(comp)
	return &Record{
		Component: comp,
		Container: container,
		Kind:      d.opt.Kind(),
		Top:       top,
		Option:    d.opt,
	}
}
