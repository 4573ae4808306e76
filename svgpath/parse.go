package svgpath

import (
	"regexp"
	"strconv"

	"github.com/jbeda/geom"
)

// Permissive float token grammar: optional sign, optional integer part,
// optional fraction, optional exponent. Shared with the transform and
// viewBox parsers.
var floatRe = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)

// ParseFloats extracts every float token from s; any malformed remainder
// of the string is skipped rather than stopping the scan.
func ParseFloats(s string) []float64 {
	matches := floatRe.FindAllString(s, -1)
	vals := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// A d attribute is a run of single-letter commands, each followed by its
// numeric arguments.
var commandRe = regexp.MustCompile(`([MmLlHhVvCcSsQqTtAaZz])([^MmLlHhVvCcSsQqTtAaZz]*)`)

// pathCursor accumulates segments while compiling a d attribute.
type pathCursor struct {
	path             Path
	cur              Subpath
	placeX, placeY   float64 // current point
	startX, startY   float64 // start of the current subpath
	cntlPtX, cntlPtY float64 // last control point, for smooth commands
	lastCmd          byte
}

// Parse compiles an SVG path d attribute into a Path. A command with a
// short or malformed argument list contributes what it can and the scan
// moves on to the next command; nothing here is fatal.
func Parse(d string) Path {
	c := &pathCursor{}
	for _, m := range commandRe.FindAllStringSubmatch(d, -1) {
		c.command(m[1][0], ParseFloats(m[2]))
	}
	c.finish()
	return c.path
}

func (c *pathCursor) finish() {
	if len(c.cur) > 0 {
		c.path = append(c.path, c.cur)
		c.cur = nil
	}
}

func (c *pathCursor) moveTo(x, y float64) {
	c.finish()
	c.placeX, c.placeY = x, y
	c.startX, c.startY = x, y
}

func (c *pathCursor) lineTo(x, y float64) {
	c.cur = append(c.cur, Line{
		Start: geom.Coord{X: c.placeX, Y: c.placeY},
		End:   geom.Coord{X: x, Y: y},
	})
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) quadTo(cx, cy, x, y float64) {
	c.cur = append(c.cur, QuadBezier{
		Start:   geom.Coord{X: c.placeX, Y: c.placeY},
		Control: geom.Coord{X: cx, Y: cy},
		End:     geom.Coord{X: x, Y: y},
	})
	c.cntlPtX, c.cntlPtY = cx, cy
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.cur = append(c.cur, CubicBezier{
		Start:    geom.Coord{X: c.placeX, Y: c.placeY},
		Control1: geom.Coord{X: c1x, Y: c1y},
		Control2: geom.Coord{X: c2x, Y: c2y},
		End:      geom.Coord{X: x, Y: y},
	})
	c.cntlPtX, c.cntlPtY = c2x, c2y
	c.placeX, c.placeY = x, y
}

func (c *pathCursor) arcTo(rx, ry, rotDeg float64, largeArc, sweep bool, x, y float64) {
	if x == c.placeX && y == c.placeY {
		return
	}
	arc, ok := arcFromEndpoints(c.placeX, c.placeY, rx, ry, rotDeg, largeArc, sweep, x, y)
	if !ok {
		// degenerate radii draw as a straight line
		c.lineTo(x, y)
		return
	}
	c.cur = append(c.cur, arc)
	c.placeX, c.placeY = x, y
}

// closePath ends the current subpath and returns the pen to its start
// point. The closing chord itself is supplied by ring closure during
// flattening, so no segment is emitted here.
func (c *pathCursor) closePath() {
	c.finish()
	c.placeX, c.placeY = c.startX, c.startY
}

// reflectControl gives the first control point of a smooth curve command:
// the reflection of the previous control point about the current point,
// or the current point itself when the previous command set none.
func (c *pathCursor) reflectControl(prev string) (float64, float64) {
	for i := 0; i < len(prev); i++ {
		if prev[i] == c.lastCmd {
			return 2*c.placeX - c.cntlPtX, 2*c.placeY - c.cntlPtY
		}
	}
	return c.placeX, c.placeY
}

func (c *pathCursor) command(cmd byte, v []float64) {
	rel := cmd >= 'a'
	// re-evaluated per coordinate group: relative commands chain from the
	// point the previous group ended on
	off := func() (float64, float64) {
		if rel {
			return c.placeX, c.placeY
		}
		return 0, 0
	}

	switch cmd {
	case 'M', 'm':
		if len(v) < 2 {
			break
		}
		ox, oy := off()
		c.moveTo(v[0]+ox, v[1]+oy)
		for i := 2; i+1 < len(v); i += 2 {
			ox, oy = off()
			c.lineTo(v[i]+ox, v[i+1]+oy)
		}
	case 'L', 'l':
		for i := 0; i+1 < len(v); i += 2 {
			ox, oy := off()
			c.lineTo(v[i]+ox, v[i+1]+oy)
		}
	case 'H', 'h':
		for _, x := range v {
			ox, _ := off()
			c.lineTo(x+ox, c.placeY)
		}
	case 'V', 'v':
		for _, y := range v {
			_, oy := off()
			c.lineTo(c.placeX, y+oy)
		}
	case 'C', 'c':
		for i := 0; i+5 < len(v); i += 6 {
			ox, oy := off()
			c.cubicTo(v[i]+ox, v[i+1]+oy, v[i+2]+ox, v[i+3]+oy, v[i+4]+ox, v[i+5]+oy)
		}
	case 'S', 's':
		for i := 0; i+3 < len(v); i += 4 {
			ox, oy := off()
			c1x, c1y := c.reflectControl("CcSs")
			c.cubicTo(c1x, c1y, v[i]+ox, v[i+1]+oy, v[i+2]+ox, v[i+3]+oy)
			c.lastCmd = cmd
		}
	case 'Q', 'q':
		for i := 0; i+3 < len(v); i += 4 {
			ox, oy := off()
			c.quadTo(v[i]+ox, v[i+1]+oy, v[i+2]+ox, v[i+3]+oy)
		}
	case 'T', 't':
		for i := 0; i+1 < len(v); i += 2 {
			ox, oy := off()
			cx, cy := c.reflectControl("QqTt")
			c.quadTo(cx, cy, v[i]+ox, v[i+1]+oy)
			c.lastCmd = cmd
		}
	case 'A', 'a':
		for i := 0; i+6 < len(v); i += 7 {
			ox, oy := off()
			c.arcTo(v[i], v[i+1], v[i+2], v[i+3] != 0, v[i+4] != 0, v[i+5]+ox, v[i+6]+oy)
		}
	case 'Z', 'z':
		c.closePath()
	}
	c.lastCmd = cmd
}
