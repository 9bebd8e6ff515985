package tiling

import (
	"errors"
	"math"
	"testing"

	"github.com/jbeda/geom"
	"github.com/tdewolff/test"
)

func mustSeedRhombus(t *testing.T, scale float64) Tile {
	tiles, err := SeedRhombus(scale)
	test.Error(t, err)
	return tiles[0]
}

func TestNewLargeTile(t *testing.T) {
	h := math.Sqrt(PsiSq*10000 - 2500)
	lt, err := NewLargeTile(
		geom.Coord{X: -50, Y: 0},
		geom.Coord{X: 0, Y: h},
		geom.Coord{X: 50, Y: 0},
	)
	test.Error(t, err)
	test.Float(t, lt.BaseLength()/lt.LegLength(), Phi)
	test.T(t, lt.RhombusCenter(), geom.Coord{X: 0, Y: 0})
}

func TestNewTileInvalid(t *testing.T) {
	var gerr *GeometryError

	// Unequal legs.
	_, err := NewLargeTile(
		geom.Coord{X: -50, Y: 0},
		geom.Coord{X: 30, Y: 40},
		geom.Coord{X: 50, Y: 0},
	)
	test.That(t, err != nil)
	test.That(t, errors.As(err, &gerr))

	// Valid isoceles triangle, but with the small-tile ratio.
	p := geom.Coord{X: 50, Y: 0}
	q := rotated(p, math.Pi/5)
	_, err = NewLargeTile(p, geom.Coord{}, q)
	test.That(t, err != nil)
	test.That(t, errors.As(err, &gerr))
	_, err = NewSmallTile(p, geom.Coord{}, q)
	test.Error(t, err)
}

func TestLargeTileInflate(t *testing.T) {
	parent := mustSeedRhombus(t, 100)
	children := parent.Inflate()
	test.T(t, len(children), 3)

	large, small := 0, 0
	area := 0.0
	for _, c := range children {
		switch c.(type) {
		case *LargeTile:
			large++
		case *SmallTile:
			small++
		}
		area += c.BoundaryPath().Area()
		test.Float(t, c.LegLength()/parent.LegLength(), Psi)
	}
	test.T(t, large, 2)
	test.T(t, small, 1)
	test.Float(t, area/parent.BoundaryPath().Area(), 1.0)
}

func TestSmallTileInflate(t *testing.T) {
	suns, err := SeedSun(100)
	test.Error(t, err)
	parent := suns[0]

	children := parent.Inflate()
	test.T(t, len(children), 2)
	_, firstSmall := children[0].(*SmallTile)
	_, secondLarge := children[1].(*LargeTile)
	test.That(t, firstSmall)
	test.That(t, secondLarge)

	area := 0.0
	for _, c := range children {
		area += c.BoundaryPath().Area()
	}
	test.Float(t, area/parent.BoundaryPath().Area(), 1.0)
}

func TestInflateAreaComposes(t *testing.T) {
	tiles, err := SeedSun(70)
	test.Error(t, err)
	seedArea := 0.0
	for _, tl := range tiles {
		seedArea += tl.BoundaryPath().Area()
	}

	for g := 0; g < 4; g++ {
		next := make([]Tile, 0, 3*len(tiles))
		for _, tl := range tiles {
			next = append(next, tl.Inflate()...)
		}
		tiles = next

		area := 0.0
		for _, tl := range tiles {
			area += tl.BoundaryPath().Area()
		}
		test.Float(t, area/seedArea, 1.0)
	}
}

func TestConjugateInvolution(t *testing.T) {
	tiles, err := SeedWheel(70)
	test.Error(t, err)
	for _, tl := range tiles {
		back := tl.Conjugate().Conjugate()
		test.T(t, back.RhombusPath(), tl.RhombusPath())
	}
}

func TestRhombusPath(t *testing.T) {
	tl := mustSeedRhombus(t, 100)
	outline := tl.RhombusPath()
	test.T(t, len(outline), 4)

	lt := tl.(*LargeTile)
	test.T(t, outline[3], lt.A.Minus(lt.V).Plus(lt.B))
	test.Float(t, outline.Area()/tl.BoundaryPath().Area(), 2.0)
}

func TestBoundaryPath(t *testing.T) {
	tl := mustSeedRhombus(t, 100)
	lt := tl.(*LargeTile)
	test.T(t, tl.BoundaryPath(), Polygon{lt.A, lt.V, lt.B})
}

func TestArcPathsMinor(t *testing.T) {
	tiles, _ := SeedSun(100)
	tiles = append(tiles, mustSeedRhombus(t, 100))
	for _, tl := range tiles {
		for _, useRhombus := range []bool{false, true} {
			arcs := tl.ArcPaths(useRhombus)
			test.T(t, len(arcs), 2)
			for _, arc := range arcs {
				test.Float(t, arc.Radius, tl.LegLength()/2)
				test.Float(t, arc.From.DistanceFrom(arc.Center), arc.Radius)
				test.Float(t, arc.To.DistanceFrom(arc.Center), arc.Radius)

				vs := arc.From.Minus(arc.Center)
				ve := arc.To.Minus(arc.Center)
				test.That(t, vs.X*ve.Y-vs.Y*ve.X >= 0)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	tl := mustSeedRhombus(t, 100)
	b := tl.Bounds()
	test.Float(t, b.Min.X, -50)
	test.Float(t, b.Max.X, 50)
	test.Float(t, b.Min.Y, 0)
	test.Float(t, b.Max.Y, math.Sqrt(PsiSq*10000-2500))
}
