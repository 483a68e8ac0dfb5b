// Package vgplot renders frames to static images through gonum/plot.
// The 3-D scene is projected orthographically onto a view plane set by
// azimuth and elevation angles; arrows become line plotters with two
// projected head strokes and labels become text plotters.
package vgplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/frameplot/render"
)

// Scene is a render.Container rendered by projecting onto a 2-D plot.
// It is not safe for concurrent use.
type Scene struct {
	Title string

	// Azimuth and Elevation set the viewing direction in degrees.
	Azimuth   float64
	Elevation float64

	closed bool
	groups []*Group
}

// NewScene creates an empty scene with the conventional 3-D plot view
// (azimuth -37.5, elevation 30).
func NewScene(title string) *Scene {
	return &Scene{Title: title, Azimuth: -37.5, Elevation: 30}
}

// Close marks the scene invalid; later Plot calls against it fail.
func (s *Scene) Close() { s.closed = true }

func (s *Scene) Valid() bool { return !s.closed }

func (s *Scene) NewGroup() (render.Group, error) {
	if s.closed {
		return nil, fmt.Errorf("scene is closed")
	}
	g := &Group{scene: s, parent: s}
	s.groups = append(s.groups, g)
	return g, nil
}

// project maps a scene point onto the view plane.
func (s *Scene) project(p r3.Vec) plotter.XY {
	sa, ca := math.Sincos(s.Azimuth * math.Pi / 180)
	se, ce := math.Sincos(s.Elevation * math.Pi / 180)

	right := r3.Vec{X: -sa, Y: ca}
	up := r3.Vec{X: -se * ca, Y: -se * sa, Z: ce}
	return plotter.XY{X: r3.Dot(p, right), Y: r3.Dot(p, up)}
}

// Group holds the primitives of one frame.
type Group struct {
	scene  *Scene
	parent render.Container
	arrows []*Arrow
	labels []*Label
}

func (g *Group) Valid() bool { return g.scene.Valid() }

func (g *Group) NewGroup() (render.Group, error) {
	child := &Group{scene: g.scene, parent: g}
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

	opacity float64
	dashes  []vg.Length
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
		if !ok {
			return fmt.Errorf("dash wants a string, got %T", value)
		}
		switch v {
		case "solid":
			a.dashes = nil
		case "dashed":
			a.dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		case "dotted":
			a.dashes = []vg.Length{vg.Points(1), vg.Points(2)}
		default:
			return fmt.Errorf("dash wants solid, dashed or dotted, got %q", v)
		}
	default:
		return fmt.Errorf("unknown arrow style %q", key)
	}
	return nil
}

// strokeColor applies the opacity override. Translucent strokes use
// NRGBA: RGBA is alpha-premultiplied, so lowering only A would make the
// colour invalid.
func (a *Arrow) strokeColor() color.Color {
	if a.opacity < 1 {
		return color.NRGBA{R: a.Color.R, G: a.Color.G, B: a.Color.B, A: uint8(a.opacity * 255)}
	}
	return a.Color
}

// Label is one basis label.
type Label struct {
	Position r3.Vec
	Text     string

	fontSize  float64
	textColor *color.RGBA
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
		l.textColor = &c
	default:
		return fmt.Errorf("unknown label style %q", key)
	}
	return nil
}

// Plot builds the projected 2-D plot for the scene.
func (s *Scene) Plot() (*plot.Plot, error) {
	if s.closed {
		return nil, fmt.Errorf("scene is closed")
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "u"
	p.Y.Label.Text = "v"
	p.Add(plotter.NewGrid())

	var ext extent

	for _, g := range s.groups {
		for _, a := range g.arrows {
			tip := r3.Add(a.Tail, a.Direction)
			segments := []plotter.XYs{{s.project(a.Tail), s.project(tip)}}
			if left, right, ok := render.ArrowBarbs(a.Tail, a.Direction, a.Head); ok {
				segments = append(segments,
					plotter.XYs{s.project(left), s.project(tip), s.project(right)})
			}

			for _, seg := range segments {
				ext.addAll(seg)
				line, err := plotter.NewLine(seg)
				if err != nil {
					return nil, fmt.Errorf("arrow line: %w", err)
				}
				line.Color = a.strokeColor()
				line.Width = vg.Points(a.Width)
				line.Dashes = a.dashes
				p.Add(line)
			}
		}

		if len(g.labels) > 0 {
			xys := make(plotter.XYs, len(g.labels))
			texts := make([]string, len(g.labels))
			for i, l := range g.labels {
				xys[i] = s.project(l.Position)
				texts[i] = l.Text
			}
			ext.addAll(xys)

			labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
			if err != nil {
				return nil, fmt.Errorf("labels: %w", err)
			}
			for i, l := range g.labels {
				if l.fontSize > 0 {
					labels.TextStyle[i].Font.Size = vg.Points(l.fontSize)
				}
				if l.textColor != nil {
					labels.TextStyle[i].Color = *l.textColor
				}
			}
			p.Add(labels)
		}
	}

	ext.applySquare(p)
	return p, nil
}

// Save renders the scene to path; the image format follows the file
// extension, as in plot.Plot.Save.
func (s *Scene) Save(path string) error {
	p, err := s.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save scene: %w", err)
	}
	return nil
}

// extent tracks projected bounds so both axes can share one square
// range and arrows keep their aspect ratio.
type extent struct {
	set                    bool
	minX, maxX, minY, maxY float64
}

func (e *extent) addAll(pts plotter.XYs) {
	for _, pt := range pts {
		if !e.set {
			e.minX, e.maxX, e.minY, e.maxY = pt.X, pt.X, pt.Y, pt.Y
			e.set = true
			continue
		}
		e.minX = math.Min(e.minX, pt.X)
		e.maxX = math.Max(e.maxX, pt.X)
		e.minY = math.Min(e.minY, pt.Y)
		e.maxY = math.Max(e.maxY, pt.Y)
	}
}

func (e *extent) applySquare(p *plot.Plot) {
	if !e.set {
		return
	}

	span := math.Max(e.maxX-e.minX, e.maxY-e.minY)
	if span == 0 {
		span = 1
	}
	pad := span * 0.1

	cx := (e.minX + e.maxX) / 2
	cy := (e.minY + e.maxY) / 2
	half := span/2 + pad

	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}
