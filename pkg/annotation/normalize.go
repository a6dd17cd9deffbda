package annotation

import "github.com/go-strata/strata/pkg/scale"

// normalizeValue maps a raw value or keyword against a single scale onto
// the normalized [0,1] domain. The output is pre-transform: pairing two
// normalized values and converting them through the coordinate transform
// is the caller's job.
//
// Exact keyword matches take precedence over any numeric interpretation
// of the string.
func normalizeValue(v Value, s *scale.Scale) float64 {
	if s == nil {
		return 0
	}
	if !v.isStr {
		return s.ScaleNumber(v.num)
	}
	switch v.str {
	case "start":
		return 0
	case "end":
		return 1
	case "median":
		if s.IsCategory() {
			return s.ScaleIndex(float64(len(s.Values)-1) / 2)
		}
		return s.ScaleNumber((s.Min + s.Max) / 2)
	case "min":
		if s.IsCategory() {
			return s.ScaleIndex(0)
		}
		return s.ScaleNumber(s.Min)
	case "max":
		if s.IsCategory() {
			return s.ScaleIndex(float64(len(s.Values) - 1))
		}
		return s.ScaleNumber(s.Max)
	default:
		return s.ScaleString(v.str)
	}
}
