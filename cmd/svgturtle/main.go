// Command svgturtle renders an SVG file to a PNG image by flattening
// its shapes to polygons and replaying them through a raster turtle.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/hoaily19/svgturtle/svgshape"
	"github.com/hoaily19/svgturtle/turtle"
	"github.com/hoaily19/svgturtle/turtleraster"
)

func main() {
	var (
		in    = flag.String("in", "", "input SVG file")
		out   = flag.String("out", "out.png", "output PNG file")
		seg   = flag.Float64("seg", svgshape.DefaultSegUnit, "target arc length between curve samples")
		size  = flag.Int("size", 800, "available window size in pixels")
		batch = flag.Int("batch", 10, "drawing steps per visible update")
		warn  = flag.Bool("warn", false, "log unsupported SVG content")
	)
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	mode := svgshape.IgnoreErrorMode
	if *warn {
		mode = svgshape.WarnErrorMode
	}
	doc, err := svgshape.ReadDocument(*in, svgshape.Options{SegUnit: *seg, Mode: mode})
	if err != nil {
		log.Fatalf("reading %s: %s", *in, err)
	}

	surface := turtleraster.NewSurface(*size, *size)
	turtle.Draw(surface, doc, *batch)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, surface.Image()); err != nil {
		log.Fatalf("encoding %s: %s", *out, err)
	}
}
