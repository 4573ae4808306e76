package svgshape

import (
	"math"

	"github.com/jbeda/geom"
)

// Matrix2D represents an SVG style matrix
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{A: 1, D: 1}

// Mult returns a*b
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Transform multiplies the input vector by matrix m and outputs the results vector
// components.
func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TransformCoord applies the matrix to a point.
func (m Matrix2D) TransformCoord(p geom.Coord) geom.Coord {
	x, y := m.Transform(p.X, p.Y)
	return geom.Coord{X: x, Y: y}
}

func translation(tx, ty float64) Matrix2D {
	return Matrix2D{A: 1, D: 1, E: tx, F: ty}
}

func scaling(sx, sy float64) Matrix2D {
	return Matrix2D{A: sx, D: sy}
}

// rotation builds a counter-clockwise rotation about the origin,
// angle in radians.
func rotation(angle float64) Matrix2D {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Matrix2D{A: cos, B: sin, C: -sin, D: cos}
}
