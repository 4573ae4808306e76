package turtle

import (
	"github.com/jbeda/geom"
)

const (
	// extentEpsilon is the floor applied to extent dimensions so a
	// degenerate document still maps to a finite world rectangle.
	extentEpsilon = 1e-6

	// marginRatio is the symmetric margin added around the extent.
	marginRatio = 0.02
)

// Mapping fixes how document coordinates land on a drawing window: the
// window dimensions to set up, and the world rectangle to install. The
// world rectangle is expressed in drawing coordinates, where the y axis
// points up, so the document's y extent appears negated.
type Mapping struct {
	WindowWidth, WindowHeight float64
	World                     geom.Rect
}

// FitExtent sizes a window to the aspect ratio of the document extent
// and derives the world rectangle covering the extent with a margin.
// The smaller of the two available window dimensions is scaled up along
// the wide axis, so the document never renders squashed.
func FitExtent(extent geom.Rect, availW, availH float64) Mapping {
	w, h := extent.Width(), extent.Height()
	if w < extentEpsilon {
		w = extentEpsilon
	}
	if h < extentEpsilon {
		h = extentEpsilon
	}
	ar := w / h

	m := availW
	if availH < m {
		m = availH
	}
	var winW, winH float64
	if ar > 1 {
		winW, winH = m*ar, m
	} else {
		winW, winH = m, m/ar
	}

	dx, dy := w*marginRatio, h*marginRatio
	world := geom.Rect{
		Min: geom.Coord{X: extent.Min.X - dx, Y: -(extent.Max.Y + dy)},
		Max: geom.Coord{X: extent.Max.X + dx, Y: -(extent.Min.Y - dy)},
	}
	return Mapping{WindowWidth: winW, WindowHeight: winH, World: world}
}
