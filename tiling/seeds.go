package tiling

import (
	"math"

	"github.com/jbeda/geom"
)

// SeedRhombus returns a single large tile with its base on the x-axis,
// centered on the origin.
func SeedRhombus(scale float64) ([]Tile, error) {
	h := math.Sqrt(PsiSq*scale*scale - 0.25*scale*scale)
	t, err := NewLargeTile(
		geom.Coord{X: -0.5 * scale, Y: 0},
		geom.Coord{X: 0, Y: h},
		geom.Coord{X: 0.5 * scale, Y: 0},
	)
	if err != nil {
		return nil, err
	}
	return []Tile{t}, nil
}

// SeedSun returns five small tiles sharing their apex at the origin, spanning
// the upper half plane with 5-fold symmetry.  Mirror completion turns this
// into the classic "sun" patch.
func SeedSun(scale float64) ([]Tile, error) {
	apex := geom.Coord{}
	p := make([]geom.Coord, 6)
	p[0] = geom.Coord{X: 0.5 * scale}
	for i := 1; i < 6; i++ {
		p[i] = rotated(p[i-1], math.Pi/5)
	}

	// Neighboring tiles alternate base orientation and share their corner
	// coordinates exactly, so their inflations dedup cleanly.
	bases := [5][2]int{{0, 1}, {2, 1}, {2, 3}, {4, 3}, {4, 5}}
	tiles := make([]Tile, 0, 5)
	for _, ab := range bases {
		t, err := NewSmallTile(p[ab[0]], apex, p[ab[1]])
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
	}
	return tiles, nil
}

// SeedWheel returns five large tiles arranged around the origin with 5-fold
// rotational symmetry, every base corner B at the origin.
func SeedWheel(scale float64) ([]Tile, error) {
	origin := geom.Coord{}
	a := geom.Coord{X: Phi * 0.5 * scale}
	v := geom.Coord{
		X: Phi * 0.25 * scale,
		Y: math.Sqrt(0.25*scale*scale - PhiSq*0.0625*scale*scale),
	}
	tiles := make([]Tile, 0, 5)
	for i := 0; i < 5; i++ {
		t, err := NewLargeTile(a, v, origin)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, t)
		a = rotated(a, 0.4*math.Pi)
		v = rotated(v, 0.4*math.Pi)
	}
	return tiles, nil
}
