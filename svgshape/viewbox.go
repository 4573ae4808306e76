package svgshape

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

// DefaultExtent is the drawing extent assumed when a document declares
// no viewport and contains no geometry to measure.
var DefaultExtent = geom.Rect{Max: geom.Coord{X: 1000, Y: 1000}}

var dimensionSuffixRe = regexp.MustCompile(`[A-Za-z%]+$`)

// parseDimension reads a width or height attribute, tolerating a trailing
// unit suffix such as px or %. Unparseable or non-finite values read
// as zero, which the extent fallback chain treats as absent.
func parseDimension(v string) float64 {
	v = strings.TrimSpace(v)
	v = dimensionSuffixRe.ReplaceAllString(v, "")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

// Extent resolves the world-coordinate region the document covers:
// a declared viewBox wins, then positive width/height spanning from the
// origin, then the measured bounds of the flattened geometry, and as a
// last resort DefaultExtent.
func (doc *Document) Extent() geom.Rect {
	if doc.HasViewBox {
		return doc.ViewBox
	}
	if doc.Width > 0 && doc.Height > 0 {
		return geom.Rect{Max: geom.Coord{X: doc.Width, Y: doc.Height}}
	}
	return BoundsOf(doc.Elements)
}

// BoundsOf measures the bounding box of every ring point of the given
// elements. With no points to measure it returns DefaultExtent.
func BoundsOf(els []Element) geom.Rect {
	var r geom.Rect
	seen := false
	for _, el := range els {
		for _, ring := range el.Poly {
			for _, p := range ring {
				if !seen {
					r = geom.Rect{Min: p, Max: p}
					seen = true
				} else {
					r.ExpandToContainCoord(p)
				}
			}
		}
	}
	if !seen {
		return DefaultExtent
	}
	return r
}
