package echarts3d

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot"
	"github.com/banshee-data/frameplot/render"
)

var identity = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func TestSceneRendersFrame(t *testing.T) {
	scene := NewScene("test frame")

	_, err := frameplot.Plot(scene, frameplot.Pose{
		Rotation:    identity,
		Translation: r3.Vec{X: 1},
	}, frameplot.Config{
		LabelBasis: true,
		Colors:     []render.ColorSpec{"#ff0000", "#00ff00", "#0000ff"},
	})
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := scene.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()

	for _, want := range []string{"line3D", "scatter3D", "#ff0000", "#00ff00", "#0000ff", "\"X\"", "\"Y\"", "\"Z\""} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}
}

func TestRenderDefaultOpacityIsVisible(t *testing.T) {
	scene := NewScene("opacity")

	_, err := frameplot.Plot(scene, frameplot.Pose{Rotation: identity}, frameplot.Config{})
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := scene.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()

	// echarts treats opacity 0 as "do not draw", so unstyled arrows
	// must serialise at full opacity.
	if strings.Contains(html, `"opacity":0`) {
		t.Error("unstyled arrow rendered with zero opacity")
	}
	if !strings.Contains(html, `"opacity":1`) {
		t.Error("unstyled arrow missing full opacity")
	}
}

func TestSeriesNamesCarryGroupID(t *testing.T) {
	scene := NewScene("ids")

	frame, err := frameplot.Plot(scene, frameplot.Pose{Rotation: identity}, frameplot.Config{})
	if err != nil {
		t.Fatalf("Plot failed: %v", err)
	}
	id := frame.Group().(*Group).ID
	if id == "" {
		t.Fatal("group has no id")
	}

	var buf bytes.Buffer
	if err := scene.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), id+"/arrow0") {
		t.Errorf("rendered HTML does not name series by group id %s", id)
	}
}

func TestClosedSceneRejectsPlot(t *testing.T) {
	scene := NewScene("closed")
	scene.Close()

	if _, err := frameplot.Plot(scene, frameplot.Pose{Rotation: identity}, frameplot.Config{}); !errors.Is(err, frameplot.ErrInvalidParent) {
		t.Fatalf("Plot on closed scene error = %v, want ErrInvalidParent", err)
	}

	var buf bytes.Buffer
	if err := scene.Render(&buf); err == nil {
		t.Error("Render on closed scene should fail")
	}
}

func TestGroupSetParentRejectsForeignScene(t *testing.T) {
	a := NewScene("a")
	b := NewScene("b")

	g, err := a.NewGroup()
	if err != nil {
		t.Fatalf("NewGroup failed: %v", err)
	}

	if err := g.SetParent(b); err == nil {
		t.Error("SetParent onto a different scene should fail")
	}
	if err := g.SetParent(render.NewMockCanvas()); err == nil {
		t.Error("SetParent onto a foreign container type should fail")
	}
}

func TestArrowSetStyle(t *testing.T) {
	a := &Arrow{}

	if err := a.SetStyle("opacity", 0.5); err != nil {
		t.Errorf("opacity rejected: %v", err)
	}
	if err := a.SetStyle("dash", "dashed"); err != nil {
		t.Errorf("dash rejected: %v", err)
	}
	if err := a.SetStyle("opacity", 2.0); err == nil {
		t.Error("out-of-range opacity accepted")
	}
	if err := a.SetStyle("dash", "wavy"); err == nil {
		t.Error("unknown dash pattern accepted")
	}
	if err := a.SetStyle("glow", true); err == nil {
		t.Error("unknown style key accepted")
	}
}

func TestLabelSetStyle(t *testing.T) {
	l := &Label{}

	if err := l.SetStyle("font-size", 14.0); err != nil {
		t.Errorf("font-size rejected: %v", err)
	}
	if err := l.SetStyle("color", "orange"); err != nil {
		t.Errorf("colour rejected: %v", err)
	}
	if err := l.SetStyle("color", "not-a-colour"); err == nil {
		t.Error("unknown colour accepted")
	}
	if err := l.SetStyle("font-size", -1.0); err == nil {
		t.Error("negative font size accepted")
	}
	if err := l.SetStyle("shadow", 1); err == nil {
		t.Error("unknown style key accepted")
	}
}

func TestArrowPolylineIncludesHeadStrokes(t *testing.T) {
	a := &Arrow{Direction: r3.Vec{X: 2}, Head: 0.15}
	data := arrowPolyline(a)
	if len(data) != 5 {
		t.Fatalf("polyline has %d points, want 5 (shaft + two barbs)", len(data))
	}

	// Degenerate arrow keeps only the shaft.
	z := &Arrow{Head: 0.15}
	if got := len(arrowPolyline(z)); got != 2 {
		t.Errorf("zero-length polyline has %d points, want 2", got)
	}
}
