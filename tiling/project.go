package tiling

import (
	"math"

	"github.com/jbeda/geom"
)

// PathRecord is the per-tile unit handed to a renderer: the closed rhombus
// outline, the optional decorative arcs, and the fill style.
type PathRecord struct {
	Outline Polygon
	Arcs    []Arc
	Fill    string
	Opacity float64
}

// Projection is the full render boundary the core exposes: a square viewport
// derived from scale and margin, the stroke style, and one record per tile in
// collection order.
type Projection struct {
	ViewBox     geom.Rect
	StrokeColor string
	StrokeWidth float64
	Records     []PathRecord
}

// Project maps the tiling onto renderable records.  Pure read; the canvas is
// left untouched and may be projected at any generation, including the
// unmodified seed.
func (cv *Canvas) Project() (Projection, error) {
	if len(cv.elements) == 0 {
		return Projection{}, ErrEmptyTiling
	}

	extent := cv.scale * (1 + cv.config.Margin)
	proj := Projection{
		ViewBox: geom.Rect{
			Min: geom.Coord{X: -extent, Y: -extent},
			Max: geom.Coord{X: extent, Y: extent},
		},
		StrokeColor: cv.config.StrokeColor,
		StrokeWidth: cv.config.StrokeWidth,
		Records:     make([]PathRecord, 0, len(cv.elements)),
	}
	if proj.StrokeWidth == 0 {
		proj.StrokeWidth = 0.03 * math.Pow(Psi, float64(cv.generation)) * cv.scale
	}

	for _, t := range cv.elements {
		rec := PathRecord{Outline: t.RhombusPath()}
		switch t.(type) {
		case *LargeTile:
			rec.Fill, rec.Opacity = cv.config.LargeTileColor, cv.config.LargeTileOpacity
		default:
			rec.Fill, rec.Opacity = cv.config.SmallTileColor, cv.config.SmallTileOpacity
		}
		if cv.config.DrawArcs {
			arcs := t.ArcPaths(cv.config.RhombusArcs)
			rec.Arcs = arcs[:]
		}
		proj.Records = append(proj.Records, rec)
	}
	return proj, nil
}
