package svgshape

import (
	"math"
	"testing"
)

func nearPt(t *testing.T, gotX, gotY, wantX, wantY, tol float64) {
	t.Helper()
	if math.Abs(gotX-wantX) > tol || math.Abs(gotY-wantY) > tol {
		t.Errorf("got (%v, %v), want (%v, %v)", gotX, gotY, wantX, wantY)
	}
}

func TestTranslate(t *testing.T) {
	m := ParseTransform("translate(3, 4)")
	x, y := m.Transform(1, 1)
	nearPt(t, x, y, 4, 5, 1e-9)

	// single argument leaves y untouched
	m = ParseTransform("translate(3)")
	x, y = m.Transform(0, 7)
	nearPt(t, x, y, 3, 7, 1e-9)
}

func TestScale(t *testing.T) {
	m := ParseTransform("scale(2, 3)")
	x, y := m.Transform(2, 2)
	nearPt(t, x, y, 4, 6, 1e-9)

	// single argument scales both axes
	m = ParseTransform("scale(2)")
	x, y = m.Transform(3, 5)
	nearPt(t, x, y, 6, 10, 1e-9)
}

func TestRotate(t *testing.T) {
	m := ParseTransform("rotate(90)")
	x, y := m.Transform(1, 0)
	nearPt(t, x, y, 0, 1, 1e-9)

	// rotation about a center keeps the center fixed
	m = ParseTransform("rotate(90, 1, 1)")
	x, y = m.Transform(1, 1)
	nearPt(t, x, y, 1, 1, 1e-9)
	x, y = m.Transform(2, 1)
	nearPt(t, x, y, 1, 2, 1e-9)
}

func TestRawMatrix(t *testing.T) {
	m := ParseTransform("matrix(1 0 0 1 5 -2)")
	x, y := m.Transform(1, 1)
	nearPt(t, x, y, 6, -1, 1e-9)
	if m != (Translate{Tx: 5, Ty: -2}).Matrix() {
		t.Errorf("matrix and translate disagree: %v", m)
	}
}

func TestComposeFoldOrder(t *testing.T) {
	// The last listed operation acts on already transformed points:
	// (1,0) is translated to (2,0) first, then scaled to (4,0).
	m := ParseTransform("translate(1, 0) scale(2, 2)")
	x, y := m.Transform(1, 0)
	nearPt(t, x, y, 4, 0, 1e-9)
}

func TestParseTransformListSkipsUnknown(t *testing.T) {
	ops := ParseTransformList("skewX(20) translate(1,2) frobnicate(9)")
	if len(ops) != 1 {
		t.Fatalf("ops: got %d, want 1", len(ops))
	}
	if _, ok := ops[0].(Translate); !ok {
		t.Errorf("got %T, want Translate", ops[0])
	}

	// short argument lists are skipped too
	if ops := ParseTransformList("matrix(1 2 3)"); len(ops) != 0 {
		t.Errorf("short matrix: got %v", ops)
	}
}

func TestParseTransformEmpty(t *testing.T) {
	if m := ParseTransform(""); m != Identity {
		t.Errorf("empty attribute: got %v", m)
	}
}

func TestMatrixMultTransformAgree(t *testing.T) {
	a := translation(2, 3)
	b := rotation(math.Pi / 2)
	ab := a.Mult(b)
	// multiplying then transforming matches transforming twice
	x1, y1 := b.Transform(1, 0)
	x1, y1 = a.Transform(x1, y1)
	x2, y2 := ab.Transform(1, 0)
	nearPt(t, x2, y2, x1, y1, 1e-9)
}
