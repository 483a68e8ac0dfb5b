// Package render defines the collaborator surface frameplot draws
// against. A backend supplies containers that host graphic primitives,
// arrow and label primitives whose visual properties can be mutated in
// place, and a colour resolver. The library never owns the lifetime of
// these objects; it creates them inside a caller-supplied container and
// mutates their properties on later calls.
package render

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// Container is anything that can host graphic primitives: a whole
// canvas, or a group nested inside one.
type Container interface {
	// Valid reports whether the container is still usable. A closed
	// canvas or an orphaned group returns false.
	Valid() bool

	// NewGroup creates an empty child group inside the container.
	NewGroup() (Group, error)
}

// Group is a reparentable container owning a set of primitives. One
// plotted frame lives in exactly one group.
type Group interface {
	Container

	// SetParent moves the group under a different container.
	SetParent(Container) error

	// NewArrow adds an arrow primitive to the group.
	NewArrow() (Arrow, error)

	// NewLabel adds a text primitive to the group.
	NewLabel() (Label, error)

	// RemoveLabel detaches a label previously created by NewLabel.
	RemoveLabel(Label) error
}

// Arrow is a vector primitive: a shaft from a tail position along a
// direction, with an arrowhead at the tip.
type Arrow interface {
	SetTail(r3.Vec)
	SetDirection(r3.Vec)
	SetColor(color.RGBA)

	// SetLineWidth sets the shaft stroke width in points.
	SetLineWidth(float64)

	// SetHeadSize sets the arrowhead length as a fraction of the
	// arrow length.
	SetHeadSize(float64)

	// SetStyle applies a backend-specific style property. Unknown keys
	// or bad values are rejected with an error.
	SetStyle(key string, value any) error
}

// Label is a text primitive anchored at a 3-D position.
type Label interface {
	SetPosition(r3.Vec)
	SetText(string)

	// SetStyle applies a backend-specific style property. Unknown keys
	// or bad values are rejected with an error.
	SetStyle(key string, value any) error
}
