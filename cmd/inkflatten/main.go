// Command inkflatten flattens an annotation session onto a raster
// image. It reads strokes from a CBOR session snapshot or a JSON
// stroke list, composites them over an optional base PNG, and writes
// the result as a PNG.
package main

import (
	"encoding/json"
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/viewstage/ink"
	"github.com/viewstage/ink/session"
)

func main() {
	var (
		snapshot = flag.String("session", "", "CBOR session snapshot to flatten")
		strokes  = flag.String("strokes", "", "JSON stroke list to flatten")
		base     = flag.String("base", "", "optional base PNG (captured frame)")
		width    = flag.Int("width", 1280, "canvas width")
		height   = flag.Int("height", 720, "canvas height")
		fit      = flag.Bool("fit", false, "scale the base image to the canvas")
		output   = flag.String("output", "flattened.png", "output file")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	list, err := loadStrokes(*snapshot, *strokes)
	if err != nil {
		log.Fatalf("Failed to load strokes: %v", err)
	}

	var baseImg image.Image
	if *base != "" {
		baseImg, err = loadPNG(*base)
		if err != nil {
			log.Fatalf("Failed to load base image: %v", err)
		}
		if *fit {
			baseImg = scaleToCanvas(baseImg, *width, *height)
		}
	}

	pm := ink.Composite(baseImg, list, *width, *height)
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Flattened %d strokes to %s (%dx%d)\n", len(list), *output, *width, *height)
}

// loadStrokes reads the stroke list from whichever input was given.
func loadStrokes(snapshot, strokes string) ([]ink.Stroke, error) {
	switch {
	case snapshot != "":
		data, err := os.ReadFile(snapshot)
		if err != nil {
			return nil, err
		}
		s, err := session.Decode(data)
		if err != nil {
			return nil, err
		}
		return s.Strokes, nil
	case strokes != "":
		data, err := os.ReadFile(strokes)
		if err != nil {
			return nil, err
		}
		var list []ink.Stroke
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, err
		}
		return list, nil
	default:
		return nil, nil
	}
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Decode(f)
}

// scaleToCanvas resizes the captured frame to cover the canvas exactly.
func scaleToCanvas(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
