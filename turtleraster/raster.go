// Implements a raster turtle surface, by wrapping rasterx.
// Pen-down moves accumulate into polylines that are stroked when the
// pen lifts; filled regions accumulate between BeginFill and EndFill.
package turtleraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jbeda/geom"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/hoaily19/svgturtle/turtle"
)

var _ turtle.Turtle = (*Surface)(nil) // assert interface conformance

// Surface renders turtle drawing commands into an image.RGBA.
type Surface struct {
	availW, availH float64
	winW, winH     float64
	world          geom.Rect

	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher

	pos       geom.Coord // in world coordinates
	penDown   bool
	penWidth  float64
	strokeCol color.Color
	fillCol   color.Color

	trail     []geom.Coord // pen-down moves since the pen dropped
	fillTrail []geom.Coord // all moves since BeginFill
	filling   bool
	stamps    []geom.Coord
	batch     int
}

// NewSurface returns a surface reporting the given available dimensions.
// The backing image is allocated by Setup.
func NewSurface(width, height int) *Surface {
	return &Surface{
		availW:   float64(width),
		availH:   float64(height),
		penWidth: 1,
		batch:    1,
	}
}

func (s *Surface) WindowSize() (float64, float64) { return s.availW, s.availH }

// Setup allocates a white backing image of the given dimensions together
// with its rasterizers. The world rectangle defaults to the image
// extent until SetWorldCoordinates replaces it.
func (s *Surface) Setup(w, h float64) {
	iw, ih := int(w+0.5), int(h+0.5)
	if iw < 1 {
		iw = 1
	}
	if ih < 1 {
		ih = 1
	}
	s.winW, s.winH = float64(iw), float64(ih)
	s.img = image.NewRGBA(image.Rect(0, 0, iw, ih))
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	s.scanner = rasterx.NewScannerGV(iw, ih, s.img, s.img.Bounds())
	s.filler = rasterx.NewFiller(iw, ih, s.scanner)
	s.dasher = rasterx.NewDasher(iw, ih, s.scanner)
	s.world = geom.Rect{Max: geom.Coord{X: s.winW, Y: s.winH}}
}

func (s *Surface) SetWorldCoordinates(llx, lly, urx, ury float64) {
	s.world = geom.Rect{Min: geom.Coord{X: llx, Y: lly}, Max: geom.Coord{X: urx, Y: ury}}
}

func (s *Surface) Tracer(batch int) { s.batch = batch }

func (s *Surface) PenWidth(w float64) { s.penWidth = w }

func (s *Surface) Color(stroke, fill string) {
	s.strokeCol = ParseColor(stroke)
	s.fillCol = ParseColor(fill)
}

// device maps a world coordinate onto the image, flipping y so the
// world's upward axis points up on screen.
func (s *Surface) device(p geom.Coord) fixed.Point26_6 {
	x := (p.X - s.world.Min.X) / s.world.Width() * s.winW
	y := s.winH - (p.Y-s.world.Min.Y)/s.world.Height()*s.winH
	return rasterx.ToFixedP(x, y)
}

func (s *Surface) Down() {
	if s.penDown {
		return
	}
	s.penDown = true
	s.trail = append(s.trail[:0], s.pos)
}

// Up lifts the pen and strokes the trail drawn since it dropped.
func (s *Surface) Up() {
	if !s.penDown {
		return
	}
	s.penDown = false
	s.strokeTrail()
	s.trail = nil
}

func (s *Surface) Goto(x, y float64) {
	s.pos = geom.Coord{X: x, Y: y}
	if s.penDown {
		s.trail = append(s.trail, s.pos)
	}
	if s.filling {
		s.fillTrail = append(s.fillTrail, s.pos)
	}
}

func (s *Surface) strokeTrail() {
	if len(s.trail) < 2 || s.strokeCol == nil || s.dasher == nil {
		return
	}
	width := s.penWidth
	if width <= 0 {
		width = 1
	}
	s.dasher.Clear()
	s.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap,
		rasterx.Round, nil, 0)
	s.scanner.SetColor(rasterx.ApplyOpacity(s.strokeCol, 1))
	s.dasher.Start(s.device(s.trail[0]))
	for _, p := range s.trail[1:] {
		s.dasher.Line(s.device(p))
	}
	s.dasher.Stop(false)
	s.dasher.Draw()
	s.dasher.Clear()
}

func (s *Surface) BeginFill() {
	s.filling = true
	s.fillTrail = append(s.fillTrail[:0], s.pos)
}

// EndFill closes the region visited since BeginFill and fills it.
func (s *Surface) EndFill() {
	if !s.filling {
		return
	}
	s.filling = false
	if len(s.fillTrail) < 3 || s.fillCol == nil || s.filler == nil {
		s.fillTrail = nil
		return
	}
	s.filler.Clear()
	s.scanner.SetColor(rasterx.ApplyOpacity(s.fillCol, 1))
	s.filler.Start(s.device(s.fillTrail[0]))
	for _, p := range s.fillTrail[1:] {
		s.filler.Line(s.device(p))
	}
	s.filler.Stop(true)
	s.filler.Draw()
	s.filler.Clear()
	s.fillTrail = nil
}

func (s *Surface) Stamp() { s.stamps = append(s.stamps, s.pos) }

func (s *Surface) ClearStamps() { s.stamps = nil }

// Image composites any remaining stamps as pen-colored dots and returns
// the backing image. It is nil before Setup.
func (s *Surface) Image() *image.RGBA {
	if s.img == nil {
		return nil
	}
	if len(s.stamps) > 0 && s.filler != nil {
		col := s.strokeCol
		if col == nil {
			col = color.NRGBA{A: 0xFF}
		}
		r := s.penWidth * 2
		if r < 2 {
			r = 2
		}
		s.filler.Clear()
		s.scanner.SetColor(rasterx.ApplyOpacity(col, 1))
		for _, p := range s.stamps {
			d := s.device(p)
			rasterx.AddCircle(float64(d.X)/64, float64(d.Y)/64, r, s.filler)
		}
		s.filler.Draw()
		s.filler.Clear()
	}
	return s.img
}
