package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ArrowBarbs computes the two barb endpoints of an arrowhead for an
// arrow from tail along dir, with the barb length given as a fraction
// of the arrow length. ok is false for zero-length arrows or heads,
// which have no drawable barbs.
func ArrowBarbs(tail, dir r3.Vec, head float64) (left, right r3.Vec, ok bool) {
	n := r3.Norm(dir)
	if n == 0 || head <= 0 {
		return r3.Vec{}, r3.Vec{}, false
	}

	tip := r3.Add(tail, dir)
	unit := r3.Unit(dir)

	// Barbs lie in the plane spanned by the arrow and a horizontal
	// perpendicular, so heads read well in the default view.
	up := r3.Vec{Z: 1}
	if math.Abs(unit.Z) > 0.999 {
		up = r3.Vec{X: 1}
	}
	side := r3.Unit(r3.Cross(unit, up))

	back := r3.Scale(head*n, unit)
	barb := r3.Scale(head*n*0.5, side)

	left = r3.Add(r3.Sub(tip, back), barb)
	right = r3.Sub(r3.Sub(tip, back), barb)
	return left, right, true
}
