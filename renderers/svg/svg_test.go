package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"

	"penrose-tiles/tiling"
)

func TestPathData(t *testing.T) {
	p := tiling.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 2}}
	test.T(t, PathData(p), "m0,0 l1,0 l0,2z")

	p = tiling.Polygon{{X: -50, Y: 0}, {X: 0, Y: 25}, {X: 50, Y: 0}, {X: 0, Y: -25}}
	test.T(t, PathData(p), "m-50,0 l50,25 l50,-25 l-50,-25z")
}

func TestWrite(t *testing.T) {
	seeds, err := tiling.SeedSun(70)
	test.Error(t, err)
	cfg := tiling.DefaultConfig()
	cfg.Reflect = false
	cv, err := tiling.NewCanvas(70, cfg, seeds...)
	test.Error(t, err)
	test.Error(t, cv.Run(0))
	proj, err := cv.Project()
	test.Error(t, err)

	var buf bytes.Buffer
	test.Error(t, Write(&buf, proj))
	out := buf.String()

	test.That(t, strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"))
	test.That(t, strings.Contains(out, "viewBox=\"-70 -70 140 140\""))
	test.That(t, strings.Contains(out, "<g style=\"stroke:#FFFFFF;"))
	test.That(t, strings.Contains(out, "fill=\"#B31B1B\""))
	test.That(t, strings.Contains(out, "fill-opacity=\"0.37\""))
	test.T(t, strings.Count(out, "<path "), 5)
	test.That(t, strings.HasSuffix(out, "</g>\n</svg>\n"))
}

func TestWriteArcs(t *testing.T) {
	seeds, err := tiling.SeedRhombus(100)
	test.Error(t, err)
	cfg := tiling.DefaultConfig()
	cfg.Reflect = false
	cfg.DrawArcs = true
	cv, err := tiling.NewCanvas(100, cfg, seeds...)
	test.Error(t, err)
	proj, err := cv.Project()
	test.Error(t, err)

	var buf bytes.Buffer
	test.Error(t, Write(&buf, proj))
	out := buf.String()

	// One rhombus outline plus its two decorative arcs.
	test.T(t, strings.Count(out, "<path "), 3)
	test.T(t, strings.Count(out, "fill=\"none\""), 2)
	test.T(t, strings.Count(out, " A "), 2)
}
