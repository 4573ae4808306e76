package turtle

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jbeda/geom"

	"github.com/hoaily19/svgturtle/svgshape"
)

// scriptTurtle records every call it receives as one line of script.
type scriptTurtle struct {
	calls []string
}

func (s *scriptTurtle) log(format string, args ...interface{}) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *scriptTurtle) WindowSize() (float64, float64) { return 800, 600 }
func (s *scriptTurtle) Setup(w, h float64)             { s.log("setup %g %g", w, h) }
func (s *scriptTurtle) SetWorldCoordinates(llx, lly, urx, ury float64) {
	s.log("world %.1f %.1f %.1f %.1f", llx, lly, urx, ury)
}
func (s *scriptTurtle) Tracer(batch int)          { s.log("tracer %d", batch) }
func (s *scriptTurtle) PenWidth(w float64)        { s.log("penwidth %g", w) }
func (s *scriptTurtle) Color(stroke, fill string) { s.log("color %s %s", stroke, fill) }
func (s *scriptTurtle) Up()                       { s.log("up") }
func (s *scriptTurtle) Down()                     { s.log("down") }
func (s *scriptTurtle) Goto(x, y float64)         { s.log("goto %g %g", x+0, y+0) } // +0 drops negative zero
func (s *scriptTurtle) Stamp()                    { s.log("stamp") }
func (s *scriptTurtle) ClearStamps()              { s.log("clearstamps") }
func (s *scriptTurtle) BeginFill()                { s.log("beginfill") }
func (s *scriptTurtle) EndFill()                  { s.log("endfill") }

func (s *scriptTurtle) count(call string) int {
	n := 0
	for _, c := range s.calls {
		if c == call || strings.HasPrefix(c, call+" ") {
			n++
		}
	}
	return n
}

func (s *scriptTurtle) indexOf(call string) int {
	for i, c := range s.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func squareDoc(fill, stroke string) *svgshape.Document {
	return &svgshape.Document{
		ViewBox:    geom.Rect{Max: geom.Coord{X: 10, Y: 10}},
		HasViewBox: true,
		Elements: []svgshape.Element{{
			Poly: svgshape.Polygon{svgshape.Ring{
				{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
			}},
			Style: svgshape.Style{Fill: fill, Stroke: stroke},
		}},
	}
}

func TestDrawPrologueAndEpilogue(t *testing.T) {
	s := &scriptTurtle{}
	Draw(s, squareDoc("red", "red"), 10)

	if s.calls[0] != "setup 600 600" {
		t.Errorf("first call: got %q", s.calls[0])
	}
	if s.calls[1] != "world -0.2 -10.2 10.2 0.2" {
		t.Errorf("world: got %q", s.calls[1])
	}
	if s.calls[2] != "tracer 10" {
		t.Errorf("tracer: got %q", s.calls[2])
	}
	tail := s.calls[len(s.calls)-3:]
	if tail[0] != "tracer 1" || tail[1] != "clearstamps" || tail[2] != "up" {
		t.Errorf("epilogue: got %v", tail)
	}
}

func TestDrawFilledElement(t *testing.T) {
	s := &scriptTurtle{}
	Draw(s, squareDoc("red", "blue"), 1)

	if s.count("beginfill") != 1 || s.count("endfill") != 1 {
		t.Fatalf("fill calls: %v", s.calls)
	}
	// fill opens before any pen-down tracing
	if s.indexOf("beginfill") > s.indexOf("down") {
		t.Error("fill must open before tracing starts")
	}
	if s.count("color blue red") != 1 {
		t.Errorf("color: %v", s.calls)
	}
	// the y axis is negated on the way to the pen
	if s.count("goto 10 -10") != 1 {
		t.Errorf("expected a visit to (10, -10): %v", s.calls)
	}
}

func TestDrawUnfilledElement(t *testing.T) {
	s := &scriptTurtle{}
	Draw(s, squareDoc("none", "black"), 1)

	if s.count("beginfill") != 0 || s.count("endfill") != 0 {
		t.Errorf("unexpected fill calls: %v", s.calls)
	}
	// the pen still needs a concrete fill color
	if s.count("color black black") == 0 {
		t.Errorf("color: %v", s.calls)
	}
}

func TestDrawDefaultsWhenStyleEmpty(t *testing.T) {
	s := &scriptTurtle{}
	Draw(s, squareDoc("", ""), 1)

	if s.count("beginfill") != 0 {
		t.Error("empty fill should not fill")
	}
	if s.count("color black black") == 0 {
		t.Errorf("default colors: %v", s.calls)
	}
	if s.count("penwidth 0.5") != 1 {
		t.Errorf("default pen width: %v", s.calls)
	}
}

func TestDrawStrokeWidthOverride(t *testing.T) {
	doc := squareDoc("red", "red")
	doc.Elements[0].Style.StrokeWidth = 3
	doc.Elements[0].Style.HasStrokeWidth = true
	s := &scriptTurtle{}
	Draw(s, doc, 1)

	if s.count("penwidth 3") != 1 {
		t.Errorf("pen width: %v", s.calls)
	}
}

func TestDrawMultiRingHopsToAnchor(t *testing.T) {
	doc := squareDoc("red", "red")
	doc.Elements[0].Poly = append(doc.Elements[0].Poly, svgshape.Ring{
		{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 2, Y: 2},
	})
	s := &scriptTurtle{}
	Draw(s, doc, 1)

	// the anchor (0,0) is visited at the start and again after the
	// second ring, keeping the fill region connected
	if got := s.count("goto 0 0"); got < 3 {
		t.Errorf("anchor visits: got %d, want at least 3: %v", got, s.calls)
	}
	if s.count("beginfill") != 1 {
		t.Errorf("fill opened per ring: %v", s.calls)
	}
}

func TestDrawSkipsEmptyElements(t *testing.T) {
	doc := &svgshape.Document{Elements: []svgshape.Element{{}}}
	s := &scriptTurtle{}
	Draw(s, doc, 1)
	if s.count("color") != 0 || s.count("down") != 0 {
		t.Errorf("empty element drew: %v", s.calls)
	}
}
