package svgshape

import (
	"github.com/hoaily19/svgturtle/svgpath"
)

// flatten samples every subpath of the shape into a closed ring and maps
// each point through the transform. Subpaths that flatten to nothing are
// dropped.
func flatten(p svgpath.Path, m Matrix2D, segUnit float64) Polygon {
	var poly Polygon
	for _, sp := range p {
		ring := flattenSubpath(sp, segUnit)
		for i, pt := range ring {
			ring[i] = m.TransformCoord(pt)
		}
		if len(ring) > 0 {
			poly = append(poly, ring)
		}
	}
	return poly
}

// flattenSubpath samples the segments of one subpath in order and joins
// them into a single ring. Consecutive segments share an endpoint, so a
// segment's first sample is dropped when it repeats the point before it.
// The ring is closed by appending the first point, unless the samples
// already ended there.
func flattenSubpath(sp svgpath.Subpath, segUnit float64) Ring {
	var ring Ring
	for _, seg := range sp {
		pts := svgpath.Sample(seg, segUnit)
		if len(ring) > 0 && len(pts) > 0 && pts[0] == ring[len(ring)-1] {
			pts = pts[1:]
		}
		ring = append(ring, pts...)
	}
	if len(ring) > 1 && ring[len(ring)-1] != ring[0] {
		ring = append(ring, ring[0])
	}
	return ring
}
