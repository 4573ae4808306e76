package turtleraster

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor reads an SVG color string in all its forms, including the
// SVG1.1 names from the colornames package. "none" and the empty string
// return nil, signaling that the paint is off; anything unparseable
// reads as black, so a malformed document still draws.
func ParseColor(colorStr string) color.Color {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch v {
	case "", "none":
		return nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return cn
	}
	if cStr := strings.TrimPrefix(v, "rgb("); cStr != v {
		cStr = strings.TrimSuffix(cStr, ")")
		vals := strings.Split(cStr, ",")
		if len(vals) != 3 {
			return color.NRGBA{A: 0xFF}
		}
		var cvals [3]uint8
		for i := range cvals {
			c, err := parseColorValue(vals[i])
			if err != nil {
				return color.NRGBA{A: 0xFF}
			}
			cvals[i] = c
		}
		return color.NRGBA{R: cvals[0], G: cvals[1], B: cvals[2], A: 0xFF}
	}
	if strings.HasPrefix(v, "#") {
		r, g, b, err := parseColorNum(v)
		if err != nil {
			return color.NRGBA{A: 0xFF}
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
	}
	return color.NRGBA{A: 0xFF}
}

// parseColorNum reads a hex color string e.g. #FBD9BD
func parseColorNum(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	if len(colorStr) == 3 {
		// SVG specs say duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	}
	if len(colorStr) != 6 {
		return 0, 0, 0, strconv.ErrSyntax
	}
	var t uint64
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]}} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return
		}
		*v.c = uint8(t)
	}
	return
}

func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "%")))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n > 255 {
		n = 255
	}
	return uint8(n), nil
}
