package svgshape

import (
	"strings"
	"testing"
)

func readString(t *testing.T, svg string) *Document {
	t.Helper()
	doc, err := ReadDocumentStream(strings.NewReader(svg), Options{})
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestReadSimpleDocument(t *testing.T) {
	doc := readString(t, `<svg viewBox="0 0 10 10">
		<path d="M0,0 L10,0 L10,10 L0,10 Z" fill="red"/>
	</svg>`)
	if !doc.HasViewBox {
		t.Fatal("viewBox not seen")
	}
	if doc.ViewBox.Width() != 10 || doc.ViewBox.Height() != 10 {
		t.Errorf("viewBox: got %v", doc.ViewBox)
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("elements: got %d, want 1", len(doc.Elements))
	}
	el := doc.Elements[0]
	if len(el.Poly) != 1 || len(el.Poly[0]) != 5 {
		t.Fatalf("polygon: got %v", el.Poly)
	}
	if el.Style.Fill != "red" {
		t.Errorf("fill: got %q", el.Style.Fill)
	}
	// stroke defaults to the fill color
	if el.Style.Stroke != "red" {
		t.Errorf("stroke: got %q", el.Style.Stroke)
	}
}

func TestReadBasicShapes(t *testing.T) {
	doc := readString(t, `<svg viewBox="0 0 100 100">
		<rect x="10" y="10" width="20" height="10"/>
		<circle cx="50" cy="50" r="5"/>
		<ellipse cx="70" cy="70" rx="8" ry="4"/>
		<line x1="0" y1="0" x2="10" y2="10"/>
		<polyline points="0,0 5,5 10,0"/>
		<polygon points="0,0 4,0 4,4"/>
	</svg>`)
	if len(doc.Elements) != 6 {
		t.Fatalf("elements: got %d, want 6", len(doc.Elements))
	}
	for i, el := range doc.Elements {
		for _, ring := range el.Poly {
			if len(ring) < 2 {
				t.Errorf("element %d: degenerate ring %v", i, ring)
			}
			if ring[0] != ring[len(ring)-1] {
				t.Errorf("element %d: ring not closed", i)
			}
		}
	}
	rect := doc.Elements[0].Poly[0]
	if len(rect) != 5 {
		t.Errorf("rect ring: got %d points", len(rect))
	}
}

func TestReadInlineStyleOverrides(t *testing.T) {
	doc := readString(t, `<svg viewBox="0 0 10 10">
		<path d="M0,0 L1,0" fill="red" style="fill: blue; stroke-width: 3"/>
	</svg>`)
	el := doc.Elements[0]
	if el.Style.Fill != "blue" {
		t.Errorf("fill: got %q, want blue", el.Style.Fill)
	}
	if !el.Style.HasStrokeWidth || el.Style.StrokeWidth != 3 {
		t.Errorf("stroke width: got %v", el.Style.StrokeWidth)
	}
}

func TestReadStyleInheritance(t *testing.T) {
	doc := readString(t, `<svg viewBox="0 0 10 10">
		<g fill="green" stroke="black">
			<path d="M0,0 L1,0"/>
			<path d="M0,0 L1,0" stroke="red"/>
		</g>
	</svg>`)
	if len(doc.Elements) != 2 {
		t.Fatalf("elements: got %d", len(doc.Elements))
	}
	if st := doc.Elements[0].Style; st.Fill != "green" || st.Stroke != "black" {
		t.Errorf("inherited style: got %+v", st)
	}
	if st := doc.Elements[1].Style; st.Stroke != "red" {
		t.Errorf("override: got %+v", st)
	}
}

func TestReadGroupTransformNesting(t *testing.T) {
	doc := readString(t, `<svg viewBox="0 0 10 10">
		<g transform="translate(1, 0)">
			<path d="M0,0 L1,0" transform="scale(2)"/>
		</g>
	</svg>`)
	el := doc.Elements[0]
	// the element's own scale applies before the ancestor translate
	if got := el.Poly[0][1]; got.X != 3 || got.Y != 0 {
		t.Errorf("got %v, want (3, 0)", got)
	}
}

func TestReadSkipsDefs(t *testing.T) {
	doc := readString(t, `<svg viewBox="0 0 10 10">
		<defs><rect x="0" y="0" width="5" height="5"/></defs>
		<path d="M0,0 L1,0"/>
	</svg>`)
	if len(doc.Elements) != 1 {
		t.Fatalf("elements: got %d, want 1", len(doc.Elements))
	}
}

func TestReadUnknownElement(t *testing.T) {
	const svg = `<svg viewBox="0 0 10 10"><video/></svg>`
	if _, err := ReadDocumentStream(strings.NewReader(svg), Options{}); err != nil {
		t.Errorf("ignore mode: got %v", err)
	}
	_, err := ReadDocumentStream(strings.NewReader(svg), Options{Mode: StrictErrorMode})
	if err == nil {
		t.Error("strict mode: expected an error")
	}
}

func TestReadInvalidDocument(t *testing.T) {
	if _, err := ReadDocumentStream(strings.NewReader(""), Options{}); err == nil {
		t.Error("expected an error for an empty stream")
	}
}

func TestReadDimensionsWithUnits(t *testing.T) {
	doc := readString(t, `<svg width="120px" height="80px"><path d="M0,0 L1,0"/></svg>`)
	if doc.Width != 120 || doc.Height != 80 {
		t.Errorf("got %v x %v", doc.Width, doc.Height)
	}
	ext := doc.Extent()
	if ext.Max.X != 120 || ext.Max.Y != 80 {
		t.Errorf("extent: got %v", ext)
	}
}
