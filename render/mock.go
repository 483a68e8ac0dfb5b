package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// MockCanvas implements Container for testing. It records every group,
// arrow and label created through it so tests can assert on object
// identity and mutation order without a real backend.
type MockCanvas struct {
	Deleted bool
	Groups  []*MockGroup

	// RejectStyle maps style keys to the error any SetStyle call with
	// that key returns, simulating a backend rejection.
	RejectStyle map[string]error
}

// NewMockCanvas creates an empty live canvas.
func NewMockCanvas() *MockCanvas {
	return &MockCanvas{}
}

func (c *MockCanvas) Valid() bool { return !c.Deleted }

func (c *MockCanvas) NewGroup() (Group, error) {
	if c.Deleted {
		return nil, fmt.Errorf("canvas deleted")
	}
	g := &MockGroup{Parent: c, canvas: c}
	c.Groups = append(c.Groups, g)
	return g, nil
}

// MockGroup implements Group, holding its primitives in creation order.
type MockGroup struct {
	Parent Container
	Arrows []*MockArrow
	Labels []*MockLabel

	canvas *MockCanvas
}

func (g *MockGroup) Valid() bool { return true }

func (g *MockGroup) NewGroup() (Group, error) {
	child := &MockGroup{Parent: g, canvas: g.canvas}
	return child, nil
}

func (g *MockGroup) SetParent(p Container) error {
	if p == nil || !p.Valid() {
		return fmt.Errorf("invalid parent")
	}
	g.Parent = p
	return nil
}

func (g *MockGroup) NewArrow() (Arrow, error) {
	a := &MockArrow{group: g}
	g.Arrows = append(g.Arrows, a)
	return a, nil
}

func (g *MockGroup) NewLabel() (Label, error) {
	l := &MockLabel{group: g}
	g.Labels = append(g.Labels, l)
	return l, nil
}

func (g *MockGroup) RemoveLabel(l Label) error {
	for i, have := range g.Labels {
		if Label(have) == l {
			g.Labels = append(g.Labels[:i], g.Labels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("label not in group")
}

// MockArrow records the last value set for each visual property.
type MockArrow struct {
	Tail      r3.Vec
	Direction r3.Vec
	Color     color.RGBA
	LineWidth float64
	HeadSize  float64
	Styles    map[string]any

	group *MockGroup
}

func (a *MockArrow) SetTail(v r3.Vec) { a.Tail = v }

func (a *MockArrow) SetDirection(v r3.Vec) { a.Direction = v }

func (a *MockArrow) SetColor(c color.RGBA) { a.Color = c }

func (a *MockArrow) SetLineWidth(w float64) { a.LineWidth = w }

func (a *MockArrow) SetHeadSize(h float64) { a.HeadSize = h }

func (a *MockArrow) SetStyle(key string, value any) error {
	if err := a.group.canvas.RejectStyle[key]; err != nil {
		return err
	}
	if a.Styles == nil {
		a.Styles = make(map[string]any)
	}
	a.Styles[key] = value
	return nil
}

// MockLabel records the last value set for each text property.
type MockLabel struct {
	Position r3.Vec
	Text     string
	Styles   map[string]any

	group *MockGroup
}

func (l *MockLabel) SetPosition(v r3.Vec) { l.Position = v }

func (l *MockLabel) SetText(s string) { l.Text = s }

func (l *MockLabel) SetStyle(key string, value any) error {
	if err := l.group.canvas.RejectStyle[key]; err != nil {
		return err
	}
	if l.Styles == nil {
		l.Styles = make(map[string]any)
	}
	l.Styles[key] = value
	return nil
}
