// Package geom holds the small amount of linear algebra behind frame
// plotting: 3x3 rotation-matrix checks and row extraction on top of
// gonum's mat and spatial/r3 types.
package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// HasNaN reports whether any component of v is NaN.
func HasNaN(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsFinite reports whether every element of m is a finite number
// (no NaN, no +/-Inf).
func IsFinite(m [3][3]float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(m[i][j]) || math.IsInf(m[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// Transpose returns the transpose of m.
func Transpose(m [3][3]float64) [3][3]float64 {
	var t [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Row returns row i of m as a vector.
func Row(m [3][3]float64, i int) r3.Vec {
	return r3.Vec{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// IsOrthonormal reports whether R satisfies R·Rᵀ = I with every element
// of the product within tol of the identity. Callers must have checked
// finiteness first; NaN elements make the comparison fail anyway.
func IsOrthonormal(m [3][3]float64, tol float64) bool {
	r := mat.NewDense(3, 3, flatten(m))
	var rrt mat.Dense
	rrt.Mul(r, r.T())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(rrt.At(i, j)-want) > tol {
				return false
			}
		}
	}
	return true
}

func flatten(m [3][3]float64) []float64 {
	out := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		out = append(out, m[i][0], m[i][1], m[i][2])
	}
	return out
}
