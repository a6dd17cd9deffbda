package annotation

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-strata/strata/pkg/coord"
	"github.com/go-strata/strata/pkg/graphics"
	"github.com/go-strata/strata/pkg/scale"
)

// resolvePosition maps a position specification to a pixel point. The
// second return value is false when the position cannot be resolved
// (nil position, or a callback that returned nil or another callback).
func resolvePosition(pos Position, x *scale.Scale, ys map[string]*scale.Scale, co coord.Coordinate) (graphics.Point, bool) {
	if pos == nil || co == nil {
		return graphics.Point{}, false
	}
	if fn, ok := pos.(Func); ok {
		if fn == nil {
			return graphics.Point{}, false
		}
		inner := fn(x, ys)
		if inner == nil {
			return graphics.Point{}, false
		}
		// One level only: a callback returning a callback is not
		// re-entered.
		if _, again := inner.(Func); again {
			return graphics.Point{}, false
		}
		return resolveStatic(inner, x, ys, co)
	}
	return resolveStatic(pos, x, ys, co)
}

func resolveStatic(pos Position, x *scale.Scale, ys map[string]*scale.Scale, co coord.Coordinate) (graphics.Point, bool) {
	switch p := pos.(type) {
	case Pair:
		if isPercentValue(p.X) && isPercentValue(p.Y) {
			return resolvePercent(p, co), true
		}
		nx := normalizeValue(p.X, x)
		ny := normalizeValue(p.Y, firstYScale(ys))
		return co.Convert(graphics.Point{X: nx, Y: ny}), true
	case Fields:
		var nx, ny float64
		for _, field := range sortedKeys(p) {
			v := p[field]
			switch {
			case x != nil && field == x.Field:
				nx = normalizeValue(v, x)
			case ys[field] != nil:
				ny = normalizeValue(v, ys[field])
			}
		}
		return co.Convert(graphics.Point{X: nx, Y: ny}), true
	default:
		return graphics.Point{}, false
	}
}

// resolvePercent places a percentage pair relative to the coordinate's
// bounding box. The offset anchors at the minimum corner so coordinate
// systems with inverted axes resolve consistently.
func resolvePercent(p Pair, co coord.Coordinate) graphics.Point {
	px := percentOf(p.X) / 100
	py := percentOf(p.Y) / 100
	start, end := co.Start(), co.End()
	return graphics.Point{
		X: px*co.Width() + math.Min(start.X, end.X),
		Y: py*co.Height() + math.Min(start.Y, end.Y),
	}
}

// isPercentValue reports whether the value is a string ending in "%"
// whose numeric prefix parses. Anything else falls through to standard
// scale normalization.
func isPercentValue(v Value) bool {
	if !v.isStr || !strings.HasSuffix(v.str, "%") {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSuffix(v.str, "%"), 64)
	return err == nil
}

func percentOf(v Value) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v.str, "%"), 64)
	if err != nil {
		return 0
	}
	return f
}

// firstYScale picks the y scale a plain pair's second element resolves
// against. Field names are ordered so the choice is deterministic.
func firstYScale(ys map[string]*scale.Scale) *scale.Scale {
	if len(ys) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ys))
	for k := range ys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return ys[keys[0]]
}

func sortedKeys(f Fields) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
