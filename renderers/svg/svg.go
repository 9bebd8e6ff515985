// Package svg serializes a projected tiling into a flat SVG document: one
// filled rhombus path per tile plus optional decorative arcs, all under a
// single stroked group.
package svg

import (
	"fmt"
	"io"
	"strings"

	"penrose-tiles/tiling"
)

// SVG wraps a writer with the document-emission helpers.  The first write
// error sticks and short-circuits the rest.
type SVG struct {
	writer io.Writer
	err    error
}

func New(w io.Writer) *SVG {
	return &SVG{writer: w}
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

func (svg *SVG) Start(p tiling.Projection) {
	svg.printf("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	svg.printf("<svg width=\"100%%\" height=\"100%%\" viewBox=\"%v %v %v %v\""+
		" preserveAspectRatio=\"xMidYMid meet\" version=\"1.1\""+
		" baseProfile=\"full\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		p.ViewBox.Min.X, p.ViewBox.Min.Y, p.ViewBox.Width(), p.ViewBox.Height())
	svg.printf("<g style=\"stroke:%s; stroke-width: %v; stroke-linejoin: round;\">\n",
		p.StrokeColor, p.StrokeWidth)
}

func (svg *SVG) Record(rec tiling.PathRecord) {
	svg.printf("<path fill=\"%s\" fill-opacity=\"%v\" d=\"%s\"/>\n",
		rec.Fill, rec.Opacity, PathData(rec.Outline))
	for _, arc := range rec.Arcs {
		svg.printf("<path fill=\"none\" d=\"M %v %v A %v %v 0 0 0 %v %v\"/>\n",
			arc.From.X, arc.From.Y, arc.Radius, arc.Radius, arc.To.X, arc.To.Y)
	}
}

func (svg *SVG) End() {
	svg.printf("</g>\n</svg>\n")
}

// PathData renders a closed polygon as relative move/line commands.
func PathData(p tiling.Polygon) string {
	var b strings.Builder
	prev := p[0]
	fmt.Fprintf(&b, "m%v,%v", prev.X, prev.Y)
	for _, pt := range p[1:] {
		fmt.Fprintf(&b, " l%v,%v", pt.X-prev.X, pt.Y-prev.Y)
		prev = pt
	}
	b.WriteString("z")
	return b.String()
}

// Write serializes the whole projection to w.
func Write(w io.Writer, p tiling.Projection) error {
	svg := New(w)
	svg.Start(p)
	for _, rec := range p.Records {
		svg.Record(rec)
	}
	svg.End()
	return svg.err
}
