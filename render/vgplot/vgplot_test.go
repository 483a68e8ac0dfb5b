package vgplot

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot"
	"github.com/banshee-data/frameplot/render"
)

var identity = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func TestSceneSavePNG(t *testing.T) {
	scene := NewScene("frame")

	_, err := frameplot.Plot(scene, frameplot.Pose{
		Rotation:    identity,
		Translation: r3.Vec{X: 1, Y: 2, Z: 3},
	}, frameplot.Config{LabelBasis: true})
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "frame.png")
	if err := scene.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestSceneUpdateKeepsOneGroup(t *testing.T) {
	scene := NewScene("frame")

	frame, err := frameplot.Plot(scene, frameplot.Pose{Rotation: identity}, frameplot.Config{})
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	_, err = frameplot.Plot(scene, frameplot.Pose{
		Rotation:    identity,
		Translation: r3.Vec{Z: 5},
	}, frameplot.Config{Update: frame})
	if err != nil {
		t.Fatalf("update Plot failed: %v", err)
	}

	if len(scene.groups) != 1 {
		t.Errorf("scene has %d groups after update, want 1", len(scene.groups))
	}
	if got := scene.groups[0].arrows[0].Tail; got != (r3.Vec{Z: 5}) {
		t.Errorf("arrow tail = %v, want {0 0 5}", got)
	}
}

func TestProjection(t *testing.T) {
	scene := NewScene("proj")
	scene.Azimuth = 0
	scene.Elevation = 0

	// Looking along +X: screen u is +Y, screen v is +Z.
	tests := []struct {
		name string
		in   r3.Vec
		want [2]float64
	}{
		{"origin", r3.Vec{}, [2]float64{0, 0}},
		{"view axis collapses", r3.Vec{X: 7}, [2]float64{0, 0}},
		{"y maps to u", r3.Vec{Y: 2}, [2]float64{2, 0}},
		{"z maps to v", r3.Vec{Z: 3}, [2]float64{0, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := scene.project(tc.in)
			if math.Abs(got.X-tc.want[0]) > 1e-12 || math.Abs(got.Y-tc.want[1]) > 1e-12 {
				t.Errorf("project(%v) = (%v, %v), want (%v, %v)",
					tc.in, got.X, got.Y, tc.want[0], tc.want[1])
			}
		})
	}
}

func TestProjectionPreservesLengthsInViewPlane(t *testing.T) {
	scene := NewScene("proj")

	// Any vector orthogonal to the view direction keeps its length
	// under orthographic projection.
	az := scene.Azimuth * math.Pi / 180
	inPlane := r3.Vec{X: -math.Sin(az), Y: math.Cos(az)}

	got := scene.project(inPlane)
	norm := math.Hypot(got.X, got.Y)
	if math.Abs(norm-1) > 1e-12 {
		t.Errorf("projected length = %v, want 1", norm)
	}
}

func TestArrowSetStyle(t *testing.T) {
	a := &Arrow{opacity: 1}

	if err := a.SetStyle("opacity", 0.25); err != nil {
		t.Errorf("opacity rejected: %v", err)
	}
	if err := a.SetStyle("dash", "dotted"); err != nil {
		t.Errorf("dash rejected: %v", err)
	}
	if err := a.SetStyle("dash", "zigzag"); err == nil {
		t.Error("unknown dash pattern accepted")
	}
	if err := a.SetStyle("sparkle", 1); err == nil {
		t.Error("unknown style key accepted")
	}
}

func TestStrokeColorTranslucency(t *testing.T) {
	a := &Arrow{Color: color.RGBA{R: 0xff, A: 0xff}, opacity: 1}

	if got := a.strokeColor(); got != a.Color {
		t.Errorf("opaque stroke = %v, want the arrow colour %v", got, a.Color)
	}

	a.opacity = 0.5
	got, ok := a.strokeColor().(color.NRGBA)
	if !ok {
		t.Fatalf("translucent stroke is %T, want color.NRGBA", a.strokeColor())
	}
	if got.R != 0xff || got.G != 0 || got.B != 0 {
		t.Errorf("translucent stroke changed the colour: %v", got)
	}
	if got.A != 127 {
		t.Errorf("translucent stroke alpha = %d, want 127", got.A)
	}
}

func TestLabelSetStyle(t *testing.T) {
	l := &Label{}

	if err := l.SetStyle("font-size", 18.0); err != nil {
		t.Errorf("font-size rejected: %v", err)
	}
	if err := l.SetStyle("color", "#123456"); err != nil {
		t.Errorf("colour rejected: %v", err)
	}
	if err := l.SetStyle("color", "shiny"); err == nil {
		t.Error("unknown colour accepted")
	}
	if err := l.SetStyle("angle", 45); err == nil {
		t.Error("unknown style key accepted")
	}
}

func TestClosedSceneRejectsWork(t *testing.T) {
	scene := NewScene("closed")
	scene.Close()

	if _, err := scene.NewGroup(); err == nil {
		t.Error("NewGroup on closed scene should fail")
	}
	if _, err := scene.Plot(); err == nil {
		t.Error("Plot on closed scene should fail")
	}
}

var _ render.Container = (*Scene)(nil)
var _ render.Group = (*Group)(nil)
