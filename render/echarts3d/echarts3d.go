// Package echarts3d renders frames to an interactive HTML page using
// go-echarts 3-D line charts. Arrows become line3D polylines (shaft
// plus two head strokes), labels become single-point scatter3D series
// with the series label shown.
package echarts3d

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/frameplot/render"
)

// Scene is a render.Container whose contents can be rendered to HTML.
// It is not safe for concurrent use.
type Scene struct {
	Title string

	closed bool
	groups []*Group
}

// NewScene creates an empty scene.
func NewScene(title string) *Scene {
	return &Scene{Title: title}
}

// Close marks the scene invalid; later Plot calls against it fail.
func (s *Scene) Close() { s.closed = true }

func (s *Scene) Valid() bool { return !s.closed }

func (s *Scene) NewGroup() (render.Group, error) {
	if s.closed {
		return nil, fmt.Errorf("scene is closed")
	}
	g := &Group{ID: uuid.NewString(), scene: s, parent: s}
	s.groups = append(s.groups, g)
	return g, nil
}

// RemoveGroup detaches a group and everything in it from the scene.
func (s *Scene) RemoveGroup(g render.Group) error {
	for i, have := range s.groups {
		if render.Group(have) == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("group not in scene")
}

// Group holds the primitives of one frame.
type Group struct {
	ID string

	scene  *Scene
	parent render.Container
	arrows []*Arrow
	labels []*Label
}

func (g *Group) Valid() bool { return g.scene.Valid() }

func (g *Group) NewGroup() (render.Group, error) {
	child := &Group{ID: uuid.NewString(), scene: g.scene, parent: g}
	g.scene.groups = append(g.scene.groups, child)
	return child, nil
}

func (g *Group) SetParent(p render.Container) error {
	switch t := p.(type) {
	case *Scene:
		if t != g.scene {
			return fmt.Errorf("parent scene is not this group's scene")
		}
	case *Group:
		if t.scene != g.scene {
			return fmt.Errorf("parent group belongs to a different scene")
		}
	default:
		return fmt.Errorf("unsupported parent container %T", p)
	}
	g.parent = p
	return nil
}

func (g *Group) NewArrow() (render.Arrow, error) {
	a := &Arrow{opacity: 1}
	g.arrows = append(g.arrows, a)
	return a, nil
}

func (g *Group) NewLabel() (render.Label, error) {
	l := &Label{}
	g.labels = append(g.labels, l)
	return l, nil
}

func (g *Group) RemoveLabel(l render.Label) error {
	for i, have := range g.labels {
		if render.Label(have) == l {
			g.labels = append(g.labels[:i], g.labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("label not in group")
}

// Arrow is one basis vector.
type Arrow struct {
	Tail      r3.Vec
	Direction r3.Vec
	Color     color.RGBA
	Width     float64
	Head      float64

	opacity  float64
	lineType string
}

func (a *Arrow) SetTail(v r3.Vec) { a.Tail = v }

func (a *Arrow) SetDirection(v r3.Vec) { a.Direction = v }

func (a *Arrow) SetColor(c color.RGBA) { a.Color = c }

func (a *Arrow) SetLineWidth(w float64) { a.Width = w }

func (a *Arrow) SetHeadSize(h float64) { a.Head = h }

// SetStyle accepts "opacity" (float64 in [0,1]) and "dash" ("solid",
// "dashed" or "dotted"). Anything else is rejected.
func (a *Arrow) SetStyle(key string, value any) error {
	switch key {
	case "opacity":
		v, ok := value.(float64)
		if !ok || v < 0 || v > 1 {
			return fmt.Errorf("opacity wants a float64 in [0,1], got %v", value)
		}
		a.opacity = v
	case "dash":
		v, ok := value.(string)
		if !ok || (v != "solid" && v != "dashed" && v != "dotted") {
			return fmt.Errorf("dash wants solid, dashed or dotted, got %v", value)
		}
		a.lineType = v
	default:
		return fmt.Errorf("unknown arrow style %q", key)
	}
	return nil
}

// Label is one basis label.
type Label struct {
	Position r3.Vec
	Text     string

	fontSize  float64
	textColor string
}

func (l *Label) SetPosition(v r3.Vec) { l.Position = v }

func (l *Label) SetText(s string) { l.Text = s }

// SetStyle accepts "font-size" (float64) and "color" (a colour spec).
// Anything else is rejected.
func (l *Label) SetStyle(key string, value any) error {
	switch key {
	case "font-size":
		v, ok := value.(float64)
		if !ok || v <= 0 {
			return fmt.Errorf("font-size wants a positive float64, got %v", value)
		}
		l.fontSize = v
	case "color":
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("color wants a string, got %T", value)
		}
		c, err := render.ColorSpec(v).Resolve()
		if err != nil {
			return err
		}
		l.textColor = render.Hex(c)
	default:
		return fmt.Errorf("unknown label style %q", key)
	}
	return nil
}

// Render writes the scene as a self-contained HTML page.
func (s *Scene) Render(w io.Writer) error {
	if s.closed {
		return fmt.Errorf("scene is closed")
	}

	chart := charts.NewLine3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: s.Title,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: s.Title}),
		charts.WithGrid3DOpts(opts.Grid3D{BoxWidth: 100, BoxDepth: 100}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z"}),
	)

	for _, g := range s.groups {
		for ai, a := range g.arrows {
			chart.AddSeries(
				fmt.Sprintf("%s/arrow%d", g.ID, ai),
				arrowPolyline(a),
				charts.WithLineStyleOpts(opts.LineStyle{
					Color:   render.Hex(a.Color),
					Width:   float32(a.Width),
					Type:    a.lineType,
					Opacity: opts.Float(float32(a.opacity)),
				}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: render.Hex(a.Color)}),
			)
		}
		for _, l := range g.labels {
			chart.MultiSeries = append(chart.MultiSeries, labelSeries(l))
		}
	}

	return chart.Render(w)
}

// arrowPolyline traces shaft and head in one polyline:
// tail -> tip -> left barb -> tip -> right barb.
func arrowPolyline(a *Arrow) []opts.Chart3DData {
	tip := r3.Add(a.Tail, a.Direction)
	points := []r3.Vec{a.Tail, tip}

	if left, right, ok := render.ArrowBarbs(a.Tail, a.Direction, a.Head); ok {
		points = append(points, left, tip, right)
	}

	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		data[i] = opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z}}
	}
	return data
}

func labelSeries(l *Label) charts.SingleSeries {
	label := &opts.Label{
		Show:      opts.Bool(true),
		Formatter: "{a}",
		Position:  "right",
	}
	if l.fontSize > 0 {
		label.FontSize = float32(l.fontSize)
	}
	if l.textColor != "" {
		label.Color = l.textColor
	}

	return charts.SingleSeries{
		Name:  l.Text,
		Type:  types.ChartScatter3D,
		Label: label,
		Data: []opts.Chart3DData{
			{Value: []interface{}{l.Position.X, l.Position.Y, l.Position.Z}},
		},
	}
}
