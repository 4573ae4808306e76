package svgpath

import (
	"math"

	"github.com/jbeda/geom"
)

// Rect builds the outline of an axis-aligned rectangle. When rx or ry is
// positive the corners are rounded with quarter-ellipse arcs; the radii are
// clamped to half the corresponding side. A rectangle with zero width or
// height produces no geometry.
func Rect(x, y, w, h, rx, ry float64) Path {
	if w <= 0 || h <= 0 {
		return nil
	}
	if rx < 0 {
		rx = 0
	}
	if ry < 0 {
		ry = 0
	}
	// An rx with no ry (or the reverse) borrows the other radius.
	if rx > 0 && ry == 0 {
		ry = rx
	}
	if ry > 0 && rx == 0 {
		rx = ry
	}
	if rx > w/2 {
		rx = w / 2
	}
	if ry > h/2 {
		ry = h / 2
	}
	if rx == 0 || ry == 0 {
		sub := Subpath{
			Line{Start: geom.Coord{X: x, Y: y}, End: geom.Coord{X: x + w, Y: y}},
			Line{Start: geom.Coord{X: x + w, Y: y}, End: geom.Coord{X: x + w, Y: y + h}},
			Line{Start: geom.Coord{X: x + w, Y: y + h}, End: geom.Coord{X: x, Y: y + h}},
			Line{Start: geom.Coord{X: x, Y: y + h}, End: geom.Coord{X: x, Y: y}},
		}
		return Path{sub}
	}
	// Edges run clockwise from the top edge; each corner is a quarter arc
	// centered rx,ry inside the corner.
	sub := Subpath{
		Line{Start: geom.Coord{X: x + rx, Y: y}, End: geom.Coord{X: x + w - rx, Y: y}},
		Arc{Cx: x + w - rx, Cy: y + ry, Rx: rx, Ry: ry, EtaStart: -math.Pi / 2, EtaDelta: math.Pi / 2},
		Line{Start: geom.Coord{X: x + w, Y: y + ry}, End: geom.Coord{X: x + w, Y: y + h - ry}},
		Arc{Cx: x + w - rx, Cy: y + h - ry, Rx: rx, Ry: ry, EtaStart: 0, EtaDelta: math.Pi / 2},
		Line{Start: geom.Coord{X: x + w - rx, Y: y + h}, End: geom.Coord{X: x + rx, Y: y + h}},
		Arc{Cx: x + rx, Cy: y + h - ry, Rx: rx, Ry: ry, EtaStart: math.Pi / 2, EtaDelta: math.Pi / 2},
		Line{Start: geom.Coord{X: x, Y: y + h - ry}, End: geom.Coord{X: x, Y: y + ry}},
		Arc{Cx: x + rx, Cy: y + ry, Rx: rx, Ry: ry, EtaStart: math.Pi, EtaDelta: math.Pi / 2},
	}
	return Path{sub}
}

// Ellipse builds a full ellipse outline centered on cx,cy as a single arc
// segment. Degenerate radii produce no geometry.
func Ellipse(cx, cy, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	return Path{Subpath{Arc{Cx: cx, Cy: cy, Rx: rx, Ry: ry, EtaStart: 0, EtaDelta: 2 * math.Pi}}}
}

// Polyline builds an open chain of line segments through the given points.
func Polyline(pts []geom.Coord) Path {
	if len(pts) < 2 {
		return nil
	}
	var sub Subpath
	for i := 1; i < len(pts); i++ {
		sub = append(sub, Line{Start: pts[i-1], End: pts[i]})
	}
	return Path{sub}
}
