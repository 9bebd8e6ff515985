package tiling

import (
	"math"

	"github.com/jbeda/geom"
)

// Polygon is a closed path over its vertices in order; the edge back to the
// first vertex is implied.
type Polygon []geom.Coord

// Area returns the enclosed area by the shoelace formula.
func (p Polygon) Area() float64 {
	area := 0.0
	for i, pt := range p {
		next := p[(i+1)%len(p)]
		area += pt.X*next.Y - next.X*pt.Y
	}
	return math.Abs(area) / 2
}

// Arc is a circular arc about Center from From to To, always the minor arc.
type Arc struct {
	Center   geom.Coord
	Radius   float64
	From, To geom.Coord
}

// arcAbout builds the decorative arc centered on corner v, spanning from the
// midpoint of v-f towards t.  The endpoints are swapped on a negative cross
// product so the emitted arc never subtends 180 degrees or more.
func arcAbout(v, f, t geom.Coord, useRhombus bool) Arc {
	start := v.Plus(f).Times(0.5)
	end := v.Plus(t).Times(0.5)
	radius := f.Minus(v).Magnitude() / 2

	if !useRhombus {
		n := f.Plus(t).Minus(v.Times(2))
		end = v.Plus(n.Unit().Times(radius))
	}

	vs, ve := start.Minus(v), end.Minus(v)
	if vs.X*ve.Y-vs.Y*ve.X < 0 {
		start, end = end, start
	}
	return Arc{Center: v, Radius: radius, From: start, To: end}
}
