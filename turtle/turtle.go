// Replays flattened SVG documents through a turtle-style drawing
// capability: a pen with position, color and width, driven pen-up or
// pen-down through world coordinates.
// The concrete surface is pluggable; see svgturtle/turtleraster for a
// raster implementation.
package turtle

// Turtle is the drawing capability a rendering surface provides.
// Coordinates are world coordinates as installed by
// SetWorldCoordinates; y grows upward.
type Turtle interface {
	// WindowSize reports the surface dimensions available before Setup.
	WindowSize() (w, h float64)

	// Setup fixes the drawing window dimensions.
	Setup(w, h float64)

	// SetWorldCoordinates maps the window onto the world rectangle
	// with corners (llx,lly) and (urx,ury).
	SetWorldCoordinates(llx, lly, urx, ury float64)

	// Tracer sets the batching granularity of visible updates; 1 means
	// every drawing step is shown as it happens.
	Tracer(batch int)

	// PenWidth sets the stroke width of subsequent pen-down moves.
	PenWidth(w float64)

	// Color sets the pen and fill colors from SVG color strings.
	Color(stroke, fill string)

	// Up lifts the pen; Goto then moves without drawing.
	Up()

	// Down lowers the pen; Goto then draws.
	Down()

	// Goto moves the pen to a world coordinate.
	Goto(x, y float64)

	// Stamp leaves a marker of the pen at its current position.
	Stamp()

	// ClearStamps removes all stamped markers.
	ClearStamps()

	// BeginFill starts recording a filled region.
	BeginFill()

	// EndFill closes the recorded region and fills it.
	EndFill()
}
