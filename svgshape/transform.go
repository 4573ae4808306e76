package svgshape

import (
	"math"
	"regexp"
	"strings"

	"github.com/hoaily19/svgturtle/svgpath"
)

// TransformOp is a single operation from a transform attribute.
type TransformOp interface {
	// Matrix returns the 2D matrix realizing the operation.
	Matrix() Matrix2D
}

// Translate shifts by Tx,Ty.
type Translate struct {
	Tx, Ty float64
}

func (t Translate) Matrix() Matrix2D { return translation(t.Tx, t.Ty) }

// Scale scales by Sx,Sy about the origin.
type Scale struct {
	Sx, Sy float64
}

func (s Scale) Matrix() Matrix2D { return scaling(s.Sx, s.Sy) }

// Rotate rotates by Angle degrees, about Cx,Cy when AboutCenter is set,
// else about the origin.
type Rotate struct {
	Angle       float64 // degrees
	Cx, Cy      float64
	AboutCenter bool
}

func (r Rotate) Matrix() Matrix2D {
	m := rotation(r.Angle * math.Pi / 180)
	if r.AboutCenter {
		m = translation(r.Cx, r.Cy).Mult(m).Mult(translation(-r.Cx, -r.Cy))
	}
	return m
}

// RawMatrix wraps a literal matrix(a b c d e f) operation.
type RawMatrix struct {
	M Matrix2D
}

func (r RawMatrix) Matrix() Matrix2D { return r.M }

var transformRe = regexp.MustCompile(`(\w+)\s*\(([^)]*)\)`)

// ParseTransformList scans a transform attribute and returns its operations
// in textual order. Malformed or unrecognized operations (skews included)
// are skipped rather than failing the whole attribute.
func ParseTransformList(v string) []TransformOp {
	var ops []TransformOp
	for _, m := range transformRe.FindAllStringSubmatch(v, -1) {
		name := strings.ToLower(strings.TrimSpace(m[1]))
		args := svgpath.ParseFloats(m[2])
		switch name {
		case "translate":
			if len(args) == 1 {
				ops = append(ops, Translate{Tx: args[0]})
			} else if len(args) >= 2 {
				ops = append(ops, Translate{Tx: args[0], Ty: args[1]})
			}
		case "scale":
			if len(args) == 1 {
				ops = append(ops, Scale{Sx: args[0], Sy: args[0]})
			} else if len(args) >= 2 {
				ops = append(ops, Scale{Sx: args[0], Sy: args[1]})
			}
		case "rotate":
			if len(args) == 1 {
				ops = append(ops, Rotate{Angle: args[0]})
			} else if len(args) >= 3 {
				ops = append(ops, Rotate{Angle: args[0], Cx: args[1], Cy: args[2], AboutCenter: true})
			}
		case "matrix":
			if len(args) >= 6 {
				ops = append(ops, RawMatrix{M: Matrix2D{
					A: args[0], B: args[1], C: args[2],
					D: args[3], E: args[4], F: args[5],
				}})
			}
		}
	}
	return ops
}

// Compose folds a list of operations into one matrix. Operations are folded
// with each listed matrix applied on the outside, so the last listed
// operation acts last on already transformed points.
func Compose(ops []TransformOp) Matrix2D {
	m := Identity
	for _, op := range ops {
		m = op.Matrix().Mult(m)
	}
	return m
}

// ParseTransform parses a transform attribute into a single matrix.
func ParseTransform(v string) Matrix2D {
	return Compose(ParseTransformList(v))
}
