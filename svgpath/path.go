// Implements an abstract representation of curved
// paths as parametric segments, which can then be
// flattened into polylines by consumers.
package svgpath

import (
	"math"

	"github.com/jbeda/geom"
)

// lengthSteps is the number of chords summed when measuring
// the arc length of a curved segment.
const lengthSteps = 32

// Segment is one parametric curve piece.
type Segment interface {
	// Length returns the arc length of the segment.
	Length() float64

	// PointAt evaluates the curve at t in [0,1];
	// t=0 is the start point and t=1 the end point.
	PointAt(t float64) geom.Coord

	// Bounds returns an axis-aligned box containing the segment.
	Bounds() geom.Rect
}

// Subpath is a continuous run of segments: each segment
// starts where the previous one ended.
type Subpath []Segment

// Path is an ordered sequence of continuous subpaths.
type Path []Subpath

// Line is a straight segment.
type Line struct {
	Start, End geom.Coord
}

func (l Line) Length() float64 {
	return math.Hypot(l.End.X-l.Start.X, l.End.Y-l.Start.Y)
}

func (l Line) PointAt(t float64) geom.Coord {
	return geom.Coord{
		X: bezierLine(l.Start.X, l.End.X, t),
		Y: bezierLine(l.Start.Y, l.End.Y, t),
	}
}

func (l Line) Bounds() geom.Rect {
	r := geom.Rect{Min: l.Start, Max: l.Start}
	r.ExpandToContainCoord(l.End)
	return r
}

// QuadBezier is a quadratic bezier segment.
type QuadBezier struct {
	Start, Control, End geom.Coord
}

func (q QuadBezier) Length() float64 { return chordLength(q) }

func (q QuadBezier) PointAt(t float64) geom.Coord {
	return geom.Coord{
		X: bezierQuad(q.Start.X, q.Control.X, q.End.X, t),
		Y: bezierQuad(q.Start.Y, q.Control.Y, q.End.Y, t),
	}
}

func (q QuadBezier) Bounds() geom.Rect { return sampledBounds(q) }

// CubicBezier is a cubic bezier segment.
type CubicBezier struct {
	Start, Control1, Control2, End geom.Coord
}

func (cu CubicBezier) Length() float64 { return chordLength(cu) }

func (cu CubicBezier) PointAt(t float64) geom.Coord {
	return geom.Coord{
		X: bezierSpline(cu.Start.X, cu.Control1.X, cu.Control2.X, cu.End.X, t),
		Y: bezierSpline(cu.Start.Y, cu.Control1.Y, cu.Control2.Y, cu.End.Y, t),
	}
}

func (cu CubicBezier) Bounds() geom.Rect { return sampledBounds(cu) }

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// chordLength measures a segment by summing short chords. It must only
// use PointAt, since segments delegate Length here.
func chordLength(s Segment) float64 {
	var sum float64
	prev := s.PointAt(0)
	for i := 1; i <= lengthSteps; i++ {
		p := s.PointAt(float64(i) / lengthSteps)
		sum += math.Hypot(p.X-prev.X, p.Y-prev.Y)
		prev = p
	}
	return sum
}

// sampledBounds approximates the bounding box of a curved segment by
// parametric sampling, endpoints included.
func sampledBounds(s Segment) geom.Rect {
	p := s.PointAt(0)
	r := geom.Rect{Min: p, Max: p}
	for i := 1; i <= lengthSteps; i++ {
		r.ExpandToContainCoord(s.PointAt(float64(i) / lengthSteps))
	}
	return r
}

// Sample approximates a segment with n = max(2, ceil(Length/unit)) points
// evenly spaced in parameter over [0,1], both endpoints included. A
// zero-length (or unmeasurable) segment still yields its two endpoints.
func Sample(s Segment, unit float64) []geom.Coord {
	n := 2
	if unit > 0 {
		if m := int(math.Ceil(s.Length() / unit)); m > n {
			n = m
		}
	}
	pts := make([]geom.Coord, n)
	for i := range pts {
		pts[i] = s.PointAt(float64(i) / float64(n-1))
	}
	return pts
}

// Bounds unions the bounding boxes of every segment of the path.
// The second return value is false when the path has no segments.
func (p Path) Bounds() (geom.Rect, bool) {
	var r geom.Rect
	seen := false
	for _, sp := range p {
		for _, seg := range sp {
			b := seg.Bounds()
			if !seen {
				r, seen = b, true
			} else {
				r.ExpandToContainRect(b)
			}
		}
	}
	return r, seen
}
