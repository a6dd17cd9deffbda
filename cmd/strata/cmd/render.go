package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-strata/strata/cmd/strata/internal/decl"
	"github.com/go-strata/strata/pkg/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a chart declaration to SVG",
		Long: `Render reads a YAML chart declaration, resolves its annotations
against the declared scales and coordinate region, and writes a
standalone SVG document.`,
		Usage: "strata render <chart.yaml> [-o output.svg]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	input, output, err := parseIOArgs(args, ".svg")
	if err != nil {
		return err
	}

	svg, err := renderDeclaration(input)
	if err != nil {
		return err
	}

	if output == "-" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}

// sourceCache is shared across renders in one invocation so repeated
// image annotations encode their file once.
var sourceCache = render.NewSourceCache()

func renderDeclaration(path string) (string, error) {
	f, err := decl.Load(path)
	if err != nil {
		return "", err
	}
	view, err := f.BuildView(filepath.Dir(path), sourceCache)
	if err != nil {
		return "", err
	}

	view.Annotations().Render()

	var b strings.Builder
	if err := view.WriteSVG(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// parseIOArgs extracts the input path and the optional -o output path,
// defaulting the output to the input name with the given extension.
func parseIOArgs(args []string, ext string) (input, output string, err error) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-o":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("-o requires a path")
			}
			output = args[i+1]
			i++
		case strings.HasPrefix(args[i], "-o="):
			output = strings.TrimPrefix(args[i], "-o=")
		case strings.HasPrefix(args[i], "-"):
			return "", "", fmt.Errorf("unknown flag %q", args[i])
		case input == "":
			input = args[i]
		default:
			return "", "", fmt.Errorf("unexpected argument %q", args[i])
		}
	}
	if input == "" {
		return "", "", fmt.Errorf("a chart declaration path is required")
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ext
	}
	return input, output, nil
}
