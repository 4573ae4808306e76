package svgshape

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Style holds the paint attributes of a shape that survive flattening.
// Colors are kept as their raw attribute strings; interpreting them is
// left to painting drivers.
type Style struct {
	Fill           string
	Stroke         string
	StrokeWidth    float64
	HasStrokeWidth bool
}

// DefaultStyle is the style of an element with no paint attributes
// anywhere in its ancestry.
var DefaultStyle = Style{}

func (s *Style) set(k, v string) {
	switch k {
	case "fill":
		s.Fill = v
	case "stroke":
		s.Stroke = v
	case "stroke-width":
		w, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			s.StrokeWidth = w
			s.HasStrokeWidth = true
		}
	}
}

// styleFromAttrs copies the parent style and applies the element's own
// paint attributes. Discrete fill/stroke attributes are read first; the
// inline style attribute is applied last and overrides them.
func styleFromAttrs(parent Style, attrs []xml.Attr) Style {
	st := parent
	var inline string
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name.Local) {
		case "style":
			inline = attr.Value
		case "fill", "stroke", "stroke-width":
			st.set(strings.ToLower(attr.Name.Local), strings.TrimSpace(attr.Value))
		}
	}
	for _, pair := range strings.Split(inline, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		st.set(strings.ToLower(strings.TrimSpace(kv[0])), strings.TrimSpace(kv[1]))
	}
	return st
}

// normalized resolves the cross defaults between the two paints: a shape
// with a fill but no explicit stroke is outlined in its fill color.
func (s Style) normalized() Style {
	if s.Stroke == "" && s.Fill != "" {
		s.Stroke = s.Fill
	}
	return s
}
