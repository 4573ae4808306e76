package turtle

import (
	"github.com/jbeda/geom"

	"github.com/hoaily19/svgturtle/svgshape"
)

// DefaultPenWidth outlines shapes that carry no stroke-width.
const DefaultPenWidth = 0.5

// Draw replays the document onto the turtle in document order. The
// window is sized to the document extent, batch sets the tracer
// granularity while drawing, and the turtle is left pen-up with live
// tracing restored.
func Draw(dst Turtle, doc *svgshape.Document, batch int) {
	availW, availH := dst.WindowSize()
	m := FitExtent(doc.Extent(), availW, availH)
	dst.Setup(m.WindowWidth, m.WindowHeight)
	dst.SetWorldCoordinates(m.World.Min.X, m.World.Min.Y, m.World.Max.X, m.World.Max.Y)
	dst.Tracer(batch)

	for _, el := range doc.Elements {
		drawElement(dst, el)
	}

	dst.Tracer(1)
	dst.ClearStamps()
	dst.Up()
}

// drawElement traces one flattened shape. All rings share a fill: the
// pen hops back to the first ring's first point between rings so the
// fill region stays connected.
func drawElement(dst Turtle, el svgshape.Element) {
	if len(el.Poly) == 0 || len(el.Poly[0]) == 0 {
		return
	}

	dst.PenWidth(DefaultPenWidth)
	if el.Style.HasStrokeWidth {
		dst.PenWidth(el.Style.StrokeWidth)
	}

	fill := el.Style.Fill
	if fill == "" {
		fill = "none"
	}
	stroke := el.Style.Stroke
	if stroke == "" {
		stroke = "black"
	}

	anchor := el.Poly[0][0]
	headTo(dst, anchor, false)
	if fill != "none" {
		dst.BeginFill()
	}
	for i, ring := range el.Poly {
		drawRing(dst, ring, stroke, fill)
		if i != 0 {
			headTo(dst, anchor, false)
		}
	}
	if fill != "none" {
		dst.EndFill()
	}
}

func drawRing(dst Turtle, ring svgshape.Ring, stroke, fill string) {
	// the turtle always needs a concrete fill color, even when the
	// region is not filled
	if fill == "none" {
		fill = "black"
	}
	dst.Color(stroke, fill)
	headTo(dst, ring[0], false)
	for _, p := range ring[1:] {
		headTo(dst, p, true)
	}
	dst.Up()
}

// headTo moves the pen to a document point, negating y into drawing
// coordinates, and restamps the pen marker at the new position.
func headTo(dst Turtle, p geom.Coord, draw bool) {
	if draw {
		dst.Down()
	} else {
		dst.Up()
	}
	dst.ClearStamps()
	dst.Goto(p.X, -p.Y)
	dst.Stamp()
}
