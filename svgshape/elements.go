package svgshape

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/jbeda/geom"

	"github.com/hoaily19/svgturtle/svgpath"
)

type shapeFunc func(c *cursor, attrs []xml.Attr) error

var shapeFuncs = map[string]shapeFunc{
	"svg":      svgF,
	"g":        gF,
	"defs":     defsF,
	"path":     pathF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polylineF, // rings close during flattening, so polygon needs no extra point
}

// attrFloat parses a plain numeric attribute; anything malformed
// reads as zero.
func attrFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func svgF(c *cursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "width":
			c.doc.Width = parseDimension(attr.Value)
		case "height":
			c.doc.Height = parseDimension(attr.Value)
		case "viewBox", "viewbox":
			vals := svgpath.ParseFloats(attr.Value)
			if len(vals) != 4 {
				break
			}
			x, y, w, h := vals[0], vals[1], vals[2], vals[3]
			c.doc.ViewBox = geom.Rect{
				Min: geom.Coord{X: x, Y: y},
				Max: geom.Coord{X: x + w, Y: y + h},
			}
			c.doc.HasViewBox = true
		}
	}
	return nil
}

func gF(*cursor, []xml.Attr) error { return nil } // g does nothing but push the state

func defsF(c *cursor, _ []xml.Attr) error {
	c.inDefs = true
	return nil
}

func pathF(c *cursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local == "d" {
			c.shape = svgpath.Parse(attr.Value)
		}
	}
	return nil
}

func rectF(c *cursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x = attrFloat(attr.Value)
		case "y":
			y = attrFloat(attr.Value)
		case "width":
			w = attrFloat(attr.Value)
		case "height":
			h = attrFloat(attr.Value)
		case "rx":
			rx = attrFloat(attr.Value)
		case "ry":
			ry = attrFloat(attr.Value)
		}
	}
	c.shape = svgpath.Rect(x, y, w, h, rx, ry)
	return nil
}

func circleF(c *cursor, attrs []xml.Attr) error {
	var cx, cy, rx, ry float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			cx = attrFloat(attr.Value)
		case "cy":
			cy = attrFloat(attr.Value)
		case "r":
			rx = attrFloat(attr.Value)
			ry = rx
		case "rx":
			rx = attrFloat(attr.Value)
		case "ry":
			ry = attrFloat(attr.Value)
		}
	}
	// zero radii are not drawn, but not an error
	c.shape = svgpath.Ellipse(cx, cy, rx, ry)
	return nil
}

func lineF(c *cursor, attrs []xml.Attr) error {
	var x1, y1, x2, y2 float64
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1 = attrFloat(attr.Value)
		case "y1":
			y1 = attrFloat(attr.Value)
		case "x2":
			x2 = attrFloat(attr.Value)
		case "y2":
			y2 = attrFloat(attr.Value)
		}
	}
	c.shape = svgpath.Polyline([]geom.Coord{{X: x1, Y: y1}, {X: x2, Y: y2}})
	return nil
}

func polylineF(c *cursor, attrs []xml.Attr) error {
	c.shape = svgpath.Polyline(pointsAttr(attrs))
	return nil
}

func pointsAttr(attrs []xml.Attr) []geom.Coord {
	for _, attr := range attrs {
		if attr.Name.Local == "points" {
			vals := svgpath.ParseFloats(attr.Value)
			pts := make([]geom.Coord, 0, len(vals)/2)
			for i := 0; i+1 < len(vals); i += 2 {
				pts = append(pts, geom.Coord{X: vals[i], Y: vals[i+1]})
			}
			return pts
		}
	}
	return nil
}
