// Package scale maps data domains onto the normalized [0,1] range used by
// the coordinate transform.
//
// A Scale is either categorical (a finite ordered list of values) or
// continuous (a numeric min/max domain). Both kinds produce pre-transform
// normalized output; pixel placement is the coordinate package's job.
package scale

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Scale maps one data field onto [0,1].
//
// If Values is non-empty the scale is categorical and Min/Max are ignored;
// otherwise the scale is continuous over [Min, Max].
type Scale struct {
	// Field is the data field this scale is bound to.
	Field string
	// Values holds the ordered categories of a categorical scale.
	Values []string
	// Min and Max bound the domain of a continuous scale.
	Min float64
	Max float64
}

// Category constructs a categorical scale over the given ordered values.
func Category(field string, values ...string) *Scale {
	return &Scale{Field: field, Values: values}
}

// Linear constructs a continuous scale over [min, max].
func Linear(field string, min, max float64) *Scale {
	return &Scale{Field: field, Min: min, Max: max}
}

// IsCategory reports whether the scale is categorical.
func (s *Scale) IsCategory() bool {
	return len(s.Values) > 0
}

// ScaleIndex maps a (possibly fractional) category index onto [0,1].
// A single-category or empty scale maps every index to 0.
func (s *Scale) ScaleIndex(index float64) float64 {
	n := len(s.Values)
	if n <= 1 {
		return 0
	}
	return index / float64(n-1)
}

// ScaleNumber maps a numeric domain value onto [0,1]. For categorical
// scales the number is interpreted as a category index.
func (s *Scale) ScaleNumber(v float64) float64 {
	if s.IsCategory() {
		return s.ScaleIndex(v)
	}
	if s.Max == s.Min {
		return 0
	}
	return (v - s.Min) / (s.Max - s.Min)
}

// ScaleString maps a raw string domain value onto [0,1]. For categorical
// scales the string is looked up among the categories; an unknown category
// maps to 0. For continuous scales the string is parsed as a number; an
// unparseable value maps to 0 rather than failing, so one malformed
// annotation cannot break a render pass.
func (s *Scale) ScaleString(v string) float64 {
	if s.IsCategory() {
		return s.ScaleIndex(float64(s.Index(v)))
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return s.ScaleNumber(f)
}

// Index returns the position of a category value, or 0 if absent.
func (s *Scale) Index(v string) int {
	for i, c := range s.Values {
		if c == v {
			return i
		}
	}
	return 0
}

// Ticks returns n evenly spaced domain values for a continuous scale,
// spanning [Min, Max] inclusive. Categorical scales return their values'
// indices. n below 2 yields a min/max pair.
func (s *Scale) Ticks(n int) []float64 {
	if n < 2 {
		n = 2
	}
	if s.IsCategory() {
		ticks := make([]float64, len(s.Values))
		for i := range ticks {
			ticks[i] = float64(i)
		}
		return ticks
	}
	ticks := make([]float64, n)
	floats.Span(ticks, s.Min, s.Max)
	return ticks
}
