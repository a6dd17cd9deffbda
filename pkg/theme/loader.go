package theme

import (
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-strata/strata/pkg/errors"
	"github.com/go-strata/strata/pkg/render"
)

// pack mirrors the YAML theme pack layout. Every field is optional;
// omitted fields keep their built-in defaults.
type pack struct {
	Version    string         `yaml:"version"`
	Annotation annotationPack `yaml:"annotation"`
}

type annotationPack struct {
	Arc    stylePack `yaml:"arc"`
	Image  stylePack `yaml:"image"`
	Line   linePack  `yaml:"line"`
	Region stylePack `yaml:"region"`
	Text   textPack  `yaml:"text"`
}

type stylePack struct {
	Style map[string]any `yaml:"style"`
}

type linePack struct {
	Style map[string]any `yaml:"style"`
	Text  textPack       `yaml:"text"`
}

type textPack struct {
	Style      map[string]any `yaml:"style"`
	AutoRotate *bool          `yaml:"autoRotate"`
}

// Load reads a YAML theme pack and overlays it on the built-in defaults.
// The pack's version field, when present, must be a valid semantic
// version ("v1.2.0").
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("theme.Load", errors.KindTheme, err)
	}
	return Parse(data)
}

// Parse decodes a YAML theme pack and overlays it on the built-in
// defaults.
func Parse(data []byte) (*Theme, error) {
	var p pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.New("theme.Parse", errors.KindTheme, err)
	}
	if p.Version != "" && !semver.IsValid(p.Version) {
		return nil, errors.Newf("theme.Parse", errors.KindTheme,
			"invalid theme pack version %q", p.Version)
	}

	t := Default()
	if p.Version != "" {
		t.Version = p.Version
	}
	t.Annotation.Arc.Style = overlay(t.Annotation.Arc.Style, p.Annotation.Arc.Style)
	t.Annotation.Image.Style = overlay(t.Annotation.Image.Style, p.Annotation.Image.Style)
	t.Annotation.Line.Style = overlay(t.Annotation.Line.Style, p.Annotation.Line.Style)
	t.Annotation.Region.Style = overlay(t.Annotation.Region.Style, p.Annotation.Region.Style)
	applyText(&t.Annotation.Line.Text, p.Annotation.Line.Text)
	applyText(&t.Annotation.Text, p.Annotation.Text)
	return t, nil
}

func overlay(base render.Style, over map[string]any) render.Style {
	if len(over) == 0 {
		return base
	}
	return render.MergeStyles(base, render.Style(over))
}

func applyText(dst *TextTheme, src textPack) {
	dst.Style = overlay(dst.Style, src.Style)
	if src.AutoRotate != nil {
		dst.AutoRotate = *src.AutoRotate
	}
}
