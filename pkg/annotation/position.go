package annotation

import "github.com/go-strata/strata/pkg/scale"

// Value is one coordinate of a position: either a number in the scale's
// domain or a string. Strings are interpreted at resolution time as
// keywords ("start", "end", "median", "min", "max"), percentages
// ("50%"), or raw category values.
type Value struct {
	num   float64
	str   string
	isStr bool
}

// Num constructs a numeric value.
func Num(v float64) Value {
	return Value{num: v}
}

// Str constructs a string value: a keyword, percentage, or category.
func Str(s string) Value {
	return Value{str: s, isStr: true}
}

// Position specifies where an annotation point is anchored. It is a
// closed union: Pair, Fields, or Func.
type Position interface {
	isPosition()
}

// Pair anchors a point with one value per axis.
type Pair struct {
	X Value
	Y Value
}

func (Pair) isPosition() {}

// XY is shorthand for a numeric pair.
func XY(x, y float64) Pair {
	return Pair{X: Num(x), Y: Num(y)}
}

// Percent is shorthand for a percentage pair such as Percent("50%", "50%").
func Percent(x, y string) Pair {
	return Pair{X: Str(x), Y: Str(y)}
}

// Fields anchors a point by data-field values: each key names a field
// bound to the chart's x scale or one of its y scales. Keys matching no
// scale are ignored.
type Fields map[string]Value

func (Fields) isPosition() {}

// Func computes a position lazily from the chart's current scales. The
// returned position is resolved one level only: a Func returning another
// Func resolves to nothing.
type Func func(x *scale.Scale, ys map[string]*scale.Scale) Position

func (Func) isPosition() {}
