package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot"
	"github.com/banshee-data/frameplot/render"
)

func TestBuildPlot(t *testing.T) {
	pose, cfg, err := buildPlot(
		"0,-1,0,1,0,0,0,0,1",
		"1,2,3",
		"0.5",
		"red,green,blue",
		"e1, e2, e3",
		false,
		true,
	)
	if err != nil {
		t.Fatalf("buildPlot failed: %v", err)
	}

	wantPose := frameplot.Pose{
		Rotation:    [3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		Translation: r3.Vec{X: 1, Y: 2, Z: 3},
	}
	if diff := cmp.Diff(wantPose, pose); diff != "" {
		t.Errorf("pose mismatch (-want +got):\n%s", diff)
	}

	wantCfg := frameplot.Config{
		Lengths:    []float64{0.5},
		Indexing:   frameplot.ColumnMajor,
		LabelBasis: true, // implied by -labels
		Labels:     [3]string{"e1", "e2", "e3"},
		Colors:     []render.ColorSpec{"red", "green", "blue"},
	}
	if diff := cmp.Diff(wantCfg, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPlotErrors(t *testing.T) {
	tests := []struct {
		name     string
		rotation string
		labels   string
	}{
		{"short rotation", "1,0,0", ""},
		{"junk rotation", "1,0,0,0,x,0,0,0,1", ""},
		{"wrong label count", "1,0,0,0,1,0,0,0,1", "a,b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := buildPlot(tc.rotation, "0,0,0", "", "", tc.labels, false, false)
			if err == nil {
				t.Error("buildPlot succeeded, want error")
			}
		})
	}
}

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 1, 2.5 ,3", 3)
	if err != nil {
		t.Fatalf("parseFloats failed: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 2.5, 3}, got); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	if _, err := parseFloats("1,2", 3); err == nil {
		t.Error("wrong count accepted")
	}
	if _, err := parseFloats("1,b,3", 3); err == nil {
		t.Error("junk value accepted")
	}
}
