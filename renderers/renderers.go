// Package renderers writes a projected tiling to disk, choosing the encoder
// from the file extension.  SVG uses the native writer; raster and PDF output
// go through the canvas render stack.
package renderers

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/jbeda/geom"
	"github.com/tdewolff/canvas"
	canvasrenderers "github.com/tdewolff/canvas/renderers"

	"penrose-tiles/renderers/svg"
	"penrose-tiles/tiling"
)

// Write saves the projection under filename.
func Write(filename string, p tiling.Projection) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := svg.Write(f, p); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".pdf":
		return canvasrenderers.Write(filename, Draw(p))
	default:
		return fmt.Errorf("renderers: unsupported output extension %q", ext)
	}
}

// Draw renders the projection onto a canvas sized to its viewport.  The
// viewport's y-down coordinates are flipped into the canvas's y-up space.
func Draw(p tiling.Projection) *canvas.Canvas {
	c := canvas.New(p.ViewBox.Width(), p.ViewBox.Height())
	ctx := canvas.NewContext(c)
	ctx.SetStrokeColor(canvas.Hex(p.StrokeColor))
	ctx.SetStrokeWidth(p.StrokeWidth)

	for _, rec := range p.Records {
		path := &canvas.Path{}
		path.MoveTo(mapped(p, rec.Outline[0]))
		for _, pt := range rec.Outline[1:] {
			path.LineTo(mapped(p, pt))
		}
		path.Close()
		ctx.SetFillColor(withOpacity(canvas.Hex(rec.Fill), rec.Opacity))
		ctx.DrawPath(0.0, 0.0, path)

		for _, arc := range rec.Arcs {
			ap := &canvas.Path{}
			ap.MoveTo(mapped(p, arc.From))
			tx, ty := mapped(p, arc.To)
			ap.ArcTo(arc.Radius, arc.Radius, 0.0, false, true, tx, ty)
			ctx.SetFillColor(canvas.Transparent)
			ctx.DrawPath(0.0, 0.0, ap)
		}
	}
	return c
}

func mapped(p tiling.Projection, pt geom.Coord) (float64, float64) {
	return pt.X - p.ViewBox.Min.X, p.ViewBox.Max.Y - pt.Y
}

func withOpacity(col color.RGBA, opacity float64) color.RGBA {
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(float64(col.R)*opacity + 0.5),
		G: uint8(float64(col.G)*opacity + 0.5),
		B: uint8(float64(col.B)*opacity + 0.5),
		A: uint8(float64(col.A)*opacity + 0.5),
	}
}
