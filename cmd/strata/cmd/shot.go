package cmd

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/go-strata/strata/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "shot",
		Short: "Rasterize a chart declaration to PNG or JPEG",
		Long: `Shot renders a YAML chart declaration to SVG, loads it in a headless
browser, and screenshots the result. The output format follows the
output file extension (.png or .jpg).`,
		Usage: "strata shot <chart.yaml> [-o output.png]",
		Run:   runShot,
	})
}

func runShot(args []string) error {
	input, output, err := parseIOArgs(args, ".png")
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	switch format {
	case "png", "jpg", "jpeg":
	default:
		return fmt.Errorf("unsupported output format %q (use .png or .jpg)", format)
	}

	svg, err := renderDeclaration(input)
	if err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer out.Close()

	if err := rasterize(svg, format, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)
	return nil
}

// rasterize loads the SVG as a data URI in headless Chrome and
// screenshots the svg element.
func rasterize(svg, format string, w io.Writer) error {
	dataURI := "data:image/svg+xml;base64," +
		base64.StdEncoding.EncodeToString([]byte(svg))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx, cancelTimeout := context.WithTimeout(ctx, 30*time.Second)
	defer cancelTimeout()

	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshot, chromedp.ByQuery),
	}

	log.Println("Rasterizing via headless browser...")
	if err := chromedp.Run(ctx, tasks); err != nil {
		return errors.New("cmd.rasterize", errors.KindRaster, err)
	}
	if len(screenshot) == 0 {
		return errors.Newf("cmd.rasterize", errors.KindRaster, "empty screenshot")
	}

	switch format {
	case "png":
		// The screenshot is already PNG.
		_, err := io.Copy(w, bytes.NewReader(screenshot))
		return err
	default:
		img, err := png.Decode(bytes.NewReader(screenshot))
		if err != nil {
			return errors.New("cmd.rasterize", errors.KindRaster, err)
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	}
}
