// Command frameplot draws a 3-D coordinate frame for a pose and writes
// it to an image or an interactive HTML page.
//
// Usage:
//
//	go run ./cmd/frameplot -rotation "0.866,-0.5,0,0.5,0.866,0,0,0,1" \
//	    -translation "1,2,0" -label -out frame.html
//
// Flags:
//
//	-rotation     Nine comma-separated values, row by row (default: identity)
//	-translation  Three comma-separated values (default: origin)
//	-lengths      One or three comma-separated basis lengths (default: 1)
//	-colors       One or three comma-separated colours (default: red,green,blue)
//	-labels       Three comma-separated label texts (default: X,Y,Z)
//	-label        Draw basis labels
//	-column-major Treat the rotation's columns as basis vectors
//	-title        Plot title
//	-out          Output file; .html renders go-echarts, anything else gonum/plot
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot"
	"github.com/banshee-data/frameplot/render"
	"github.com/banshee-data/frameplot/render/echarts3d"
	"github.com/banshee-data/frameplot/render/vgplot"
)

func main() {
	rotation := flag.String("rotation", "1,0,0,0,1,0,0,0,1", "Rotation matrix, nine values row by row")
	translation := flag.String("translation", "0,0,0", "Translation vector, three values")
	lengths := flag.String("lengths", "", "Basis vector lengths, one or three values")
	colors := flag.String("colors", "", "Arrow colours, one or three values")
	labels := flag.String("labels", "", "Label texts, three values")
	label := flag.Bool("label", false, "Draw basis labels")
	columnMajor := flag.Bool("column-major", false, "Treat matrix columns as basis vectors")
	title := flag.String("title", "coordinate frame", "Plot title")
	out := flag.String("out", "frame.png", "Output file (.html for an interactive page)")
	flag.Parse()

	pose, cfg, err := buildPlot(*rotation, *translation, *lengths, *colors, *labels, *label, *columnMajor)
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	if strings.HasSuffix(*out, ".html") {
		scene := echarts3d.NewScene(*title)
		if _, err := frameplot.Plot(scene, pose, cfg); err != nil {
			log.Fatalf("Failed to plot frame: %v", err)
		}
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		if err := scene.Render(f); err != nil {
			log.Fatalf("Failed to render scene: %v", err)
		}
	} else {
		scene := vgplot.NewScene(*title)
		if _, err := frameplot.Plot(scene, pose, cfg); err != nil {
			log.Fatalf("Failed to plot frame: %v", err)
		}
		if err := scene.Save(*out); err != nil {
			log.Fatalf("Failed to save scene: %v", err)
		}
	}

	log.Printf("Wrote %s", *out)
}

func buildPlot(rotation, translation, lengths, colors, labels string, label, columnMajor bool) (frameplot.Pose, frameplot.Config, error) {
	var pose frameplot.Pose
	var cfg frameplot.Config

	rot, err := parseFloats(rotation, 9)
	if err != nil {
		return pose, cfg, fmt.Errorf("rotation: %w", err)
	}
	for i := 0; i < 3; i++ {
		copy(pose.Rotation[i][:], rot[3*i:3*i+3])
	}

	tr, err := parseFloats(translation, 3)
	if err != nil {
		return pose, cfg, fmt.Errorf("translation: %w", err)
	}
	pose.Translation = r3.Vec{X: tr[0], Y: tr[1], Z: tr[2]}

	if lengths != "" {
		cfg.Lengths, err = parseFloats(lengths, 0)
		if err != nil {
			return pose, cfg, fmt.Errorf("lengths: %w", err)
		}
	}

	if colors != "" {
		for _, c := range strings.Split(colors, ",") {
			cfg.Colors = append(cfg.Colors, render.ColorSpec(strings.TrimSpace(c)))
		}
	}

	cfg.LabelBasis = label
	if labels != "" {
		parts := strings.Split(labels, ",")
		if len(parts) != 3 {
			return pose, cfg, fmt.Errorf("labels: want 3 values, got %d", len(parts))
		}
		for i, p := range parts {
			cfg.Labels[i] = strings.TrimSpace(p)
		}
		cfg.LabelBasis = true
	}

	if columnMajor {
		cfg.Indexing = frameplot.ColumnMajor
	}

	return pose, cfg, nil
}

// parseFloats splits a comma-separated list; want 0 accepts any count.
func parseFloats(s string, want int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if want > 0 && len(parts) != want {
		return nil, fmt.Errorf("want %d values, got %d", want, len(parts))
	}

	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}
