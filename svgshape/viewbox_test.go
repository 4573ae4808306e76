package svgshape

import (
	"testing"

	"github.com/jbeda/geom"
)

func TestParseDimension(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{"100px", 100},
		{"  4.5cm ", 4.5},
		{"33%", 33},
		{"oops", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseDimension(c.in); got != c.want {
			t.Errorf("parseDimension(%q): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtentViewBoxWins(t *testing.T) {
	doc := &Document{
		Width: 50, Height: 50,
		ViewBox:    geom.Rect{Min: geom.Coord{X: 1, Y: 2}, Max: geom.Coord{X: 11, Y: 22}},
		HasViewBox: true,
	}
	if got := doc.Extent(); got != doc.ViewBox {
		t.Errorf("got %v", got)
	}
}

func TestExtentFromDimensions(t *testing.T) {
	doc := &Document{Width: 30, Height: 40}
	want := geom.Rect{Max: geom.Coord{X: 30, Y: 40}}
	if got := doc.Extent(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtentFromGeometry(t *testing.T) {
	doc := &Document{Elements: []Element{{
		Poly: Polygon{Ring{{X: -1, Y: 2}, {X: 5, Y: 9}, {X: -1, Y: 2}}},
	}}}
	want := geom.Rect{Min: geom.Coord{X: -1, Y: 2}, Max: geom.Coord{X: 5, Y: 9}}
	if got := doc.Extent(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExtentDefault(t *testing.T) {
	doc := &Document{}
	if got := doc.Extent(); got != DefaultExtent {
		t.Errorf("got %v, want %v", got, DefaultExtent)
	}
	// height alone is not enough for a dimension extent
	doc = &Document{Height: 10}
	if got := doc.Extent(); got != DefaultExtent {
		t.Errorf("partial dimensions: got %v", got)
	}
}
