package renderers

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"

	"penrose-tiles/tiling"
)

func testProjection(t *testing.T) tiling.Projection {
	seeds, err := tiling.SeedSun(70)
	test.Error(t, err)
	cfg := tiling.DefaultConfig()
	cfg.Reflect = false
	cv, err := tiling.NewCanvas(70, cfg, seeds...)
	test.Error(t, err)
	test.Error(t, cv.Run(0))
	proj, err := cv.Project()
	test.Error(t, err)
	return proj
}

func TestDraw(t *testing.T) {
	proj := testProjection(t)
	c := Draw(proj)
	test.Float(t, c.W, 140)
	test.Float(t, c.H, 140)
}

func TestWriteUnsupportedExtension(t *testing.T) {
	err := Write("tiling.bmp", testProjection(t))
	test.That(t, err != nil)
}

func TestWithOpacity(t *testing.T) {
	col := withOpacity(color.RGBA{R: 200, G: 100, B: 0, A: 255}, 0.5)
	test.T(t, col, color.RGBA{R: 100, G: 50, B: 0, A: 128})
}
