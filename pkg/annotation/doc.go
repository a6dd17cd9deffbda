// Package annotation manages auxiliary chart graphics: lines, regions,
// text labels, images, and arcs anchored to data coordinates or
// percentage offsets.
//
// Annotations are declared through the Controller's builder methods and
// materialized by its lifecycle methods. A declaration describes where an
// annotation sits in data terms (scale values, keywords like "min" and
// "median", percentage offsets, per-field value maps, or a callback); the
// controller resolves those into pixel positions through the chart's
// scales and coordinate transform, builds a themed configuration, and
// hands it to a renderable component from the render package.
//
// # Declaring Annotations
//
// Builder methods append declarations and chain:
//
//	ctrl := annotation.NewController(view)
//	ctrl.Line(&annotation.LineOption{
//	        Start: annotation.Pair{X: annotation.Str("min"), Y: annotation.Num(60)},
//	        End:   annotation.Pair{X: annotation.Str("max"), Y: annotation.Num(60)},
//	        Text:  &annotation.LineText{Position: "end", Content: "limit"},
//	    }).
//	    Region(&annotation.RegionOption{
//	        Start: annotation.Pair{X: annotation.Str("2019-01"), Y: annotation.Str("min")},
//	        End:   annotation.Pair{X: annotation.Str("2019-06"), Y: annotation.Str("max")},
//	    })
//	ctrl.Render()
//
// # Lifecycle
//
// Render materializes every declared annotation. Layout recomputes
// positions after the coordinate region or scales change. Update
// reconciles the declared set against the live components: surviving
// declarations are updated in place, new ones are created, and components
// whose declaration was removed are destroyed. Clear tears down rendered
// state, optionally keeping declarations; Destroy removes the
// controller's containers entirely.
//
// All methods are synchronous and must be serialized by the caller; the
// controller performs no locking.
//
// # Error Handling
//
// The controller degrades gracefully rather than failing a render pass
// over a single bad annotation: unknown declaration kinds are dropped
// silently, unresolvable positions suppress their annotation, and
// malformed values scale to best-effort geometry.
package annotation
