// Provides parsing of SVG vector artwork into flat polygons.
// Shapes are compiled to parametric paths, sampled into polylines and
// pushed through their accumulated transforms, leaving world-space
// polygons that drawing backends can consume directly.
// See for example svgturtle/turtle or svgturtle/turtleraster .
package svgshape

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/jbeda/geom"
	"golang.org/x/net/html/charset"

	"github.com/hoaily19/svgturtle/svgpath"
)

// Ring is a closed polyline: when it came from a closed shape its last
// point repeats its first.
type Ring []geom.Coord

// Polygon is the flattened outline of one shape, one ring per subpath.
type Polygon []Ring

// Element binds a flattened polygon to its paint style.
type Element struct {
	Poly  Polygon
	Style Style
}

// Document holds the flattened contents of a parsed SVG.
type Document struct {
	Width, Height float64   // top level width and height attributes, zero when absent
	ViewBox       geom.Rect // declared viewBox, valid only when HasViewBox
	HasViewBox    bool
	Elements      []Element
}

// DefaultSegUnit is the curve sampling interval used when Options
// leaves SegUnit unset.
const DefaultSegUnit = 8.0

// Options tunes document reading.
type Options struct {
	// SegUnit is the target arc length between consecutive samples
	// when curves are flattened. Zero means DefaultSegUnit.
	SegUnit float64
	// Mode determines if the reader ignores, errors out, or logs a
	// warning when it finds an element it does not handle.
	Mode ErrorMode
}

// state is one level of inherited context while walking the tree.
type state struct {
	style     Style
	transform Matrix2D
}

// cursor is used while parsing SVG files
type cursor struct {
	doc    *Document
	stack  []state
	shape  svgpath.Path // set by the element funcs that produce geometry
	opts   Options
	inDefs bool
}

func (c *cursor) top() state { return c.stack[len(c.stack)-1] }

// pushState composes the element's own transform onto the inherited one
// and stacks it with the inherited style. Ancestor transforms stay
// outermost, so a point meets its own element's transform first.
func (c *cursor) pushState(attrs []xml.Attr) {
	parent := c.top()
	ns := state{style: styleFromAttrs(parent.style, attrs), transform: parent.transform}
	for _, attr := range attrs {
		if attr.Name.Local == "transform" {
			ns.transform = parent.transform.Mult(ParseTransform(attr.Value))
		}
	}
	c.stack = append(c.stack, ns)
}

func (c *cursor) readStartElement(se xml.StartElement) error {
	if c.inDefs {
		return nil
	}
	sf, ok := shapeFuncs[se.Name.Local]
	if !ok {
		return c.opts.Mode.handle("cannot process svg element " + se.Name.Local)
	}
	if err := sf(c, se.Attr); err != nil {
		return err
	}
	if len(c.shape) > 0 {
		st := c.top()
		poly := flatten(c.shape, st.transform, c.opts.SegUnit)
		if len(poly) > 0 {
			c.doc.Elements = append(c.doc.Elements, Element{
				Poly:  poly,
				Style: st.style.normalized(),
			})
		}
		c.shape = nil
	}
	return nil
}

// ReadDocumentStream reads and flattens an SVG from the given io.Reader.
// This only supports a sub-set of SVG, but is enough to draw many images.
func ReadDocumentStream(stream io.Reader, opts Options) (*Document, error) {
	if opts.SegUnit <= 0 {
		opts.SegUnit = DefaultSegUnit
	}
	doc := &Document{}
	c := &cursor{doc: doc, stack: []state{{style: DefaultStyle, transform: Identity}}, opts: opts}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return doc, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			c.pushState(se.Attr)
			if err = c.readStartElement(se); err != nil {
				return doc, err
			}
		case xml.EndElement:
			c.stack = c.stack[:len(c.stack)-1]
			if se.Name.Local == "defs" {
				c.inDefs = false
			}
		}
	}
	return doc, nil
}

// ReadDocument reads and flattens the SVG from the named file.
func ReadDocument(file string, opts Options) (*Document, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadDocumentStream(fin, opts)
}
