package render

import (
	"fmt"
	"sort"
	"strings"
)

// Style is a style-attribute mapping passed through verbatim from the
// annotation option to the rendering layer. Recognized keys follow the
// usual chart vocabulary: "stroke", "lineWidth", "lineDash", "fill",
// "opacity", "fillOpacity", "strokeOpacity", "fontSize", "fontFamily",
// "textAlign", "textBaseline".
type Style map[string]any

// MergeStyles layers style maps left to right: later maps override earlier
// ones key by key. The result is always a fresh map; inputs are not
// mutated. Nil maps are skipped.
func MergeStyles(layers ...Style) Style {
	merged := Style{}
	for _, layer := range layers {
		for k, v := range layer {
			merged[k] = v
		}
	}
	return merged
}

// Float reads a numeric style value, accepting the numeric types YAML and
// literal configuration produce. Returns fallback when absent or
// non-numeric.
func (s Style) Float(key string, fallback float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	default:
		return fallback
	}
}

// String reads a string style value, returning fallback when absent.
func (s Style) String(key, fallback string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return fallback
}

// svgAttrs converts the style mapping to SVG presentation attributes.
// Unknown keys are ignored. Keys are emitted in sorted order so output is
// deterministic.
func (s Style) svgAttrs() string {
	if len(s) == 0 {
		return ""
	}
	names := map[string]string{
		"stroke":        "stroke",
		"fill":          "fill",
		"lineWidth":     "stroke-width",
		"opacity":       "opacity",
		"fillOpacity":   "fill-opacity",
		"strokeOpacity": "stroke-opacity",
		"fontSize":      "font-size",
		"fontFamily":    "font-family",
	}
	keys := make([]string, 0, len(s))
	for k := range s {
		if _, ok := names[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, ` %s="%s"`, names[k], formatAttr(s[k]))
	}
	if dash, ok := s["lineDash"].([]float64); ok && len(dash) > 0 {
		parts := make([]string, len(dash))
		for i, d := range dash {
			parts[i] = trimFloat(d)
		}
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, strings.Join(parts, ","))
	}
	return b.String()
}

func formatAttr(v any) string {
	switch t := v.(type) {
	case string:
		return escapeAttr(t)
	case float64:
		return trimFloat(t)
	case float32:
		return trimFloat(float64(t))
	case int:
		return fmt.Sprintf("%d", t)
	default:
		return escapeAttr(fmt.Sprint(t))
	}
}

func trimFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", f), "0"), ".")
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
