package svgpath

import (
	"math"

	"github.com/jbeda/geom"
)

// Arc is an elliptical arc segment in center parameterization.
type Arc struct {
	Cx, Cy   float64 // ellipse center
	Rx, Ry   float64 // radii
	Rotation float64 // x-axis rotation, radians
	EtaStart float64 // parametric start angle
	EtaDelta float64 // signed parametric sweep
}

func (a Arc) Length() float64 { return chordLength(a) }

func (a Arc) PointAt(t float64) geom.Coord {
	eta := a.EtaStart + a.EtaDelta*t
	sinTheta, cosTheta := math.Sin(a.Rotation), math.Cos(a.Rotation)
	x, y := ellipsePointAt(a.Rx, a.Ry, sinTheta, cosTheta, eta, a.Cx, a.Cy)
	return geom.Coord{X: x, Y: y}
}

func (a Arc) Bounds() geom.Rect { return sampledBounds(a) }

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// arcFromEndpoints converts an endpoint arc (the A path command) to
// center parameterization. The radii are increased minimally when no
// ellipse through both endpoints exists. Returns false for degenerate
// radii, in which case the caller should fall back to a straight line.
func arcFromEndpoints(sx, sy, rx, ry, rotDeg float64, largeArc, sweep bool, ex, ey float64) (Arc, bool) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}
	rot := rotDeg * math.Pi / 180
	cx, cy := findEllipseCenter(&rx, &ry, rot, sx, sy, ex, ey, !sweep, !largeArc)

	startAngle := math.Atan2(sy-cy, sx-cx) - rot
	endAngle := math.Atan2(ey-cy, ex-cx) - rot
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if (arcBig && !largeArc) || (!arcBig && largeArc) { // Go has no boolean XOR
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}
	return Arc{Cx: cx, Cy: cy, Rx: rx, Ry: ry, Rotation: rot, EtaStart: etaStart, EtaDelta: deltaEta}, true
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
