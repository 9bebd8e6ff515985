// Package tiling generates Penrose P3 rhombus tilings by repeated
// substitution ("inflation") of Robinson triangles.  A Canvas owns the tile
// collection across generations and projects it into renderable path records.
package tiling

import (
	"fmt"

	"github.com/jbeda/geom"
)

// GeometryError reports a triangle that violates the Robinson invariants.
// Malformed geometry is a construction failure, never recovered at runtime.
type GeometryError struct {
	msg string
}

func (e *GeometryError) Error() string { return e.msg }

func geometryErrorf(format string, args ...interface{}) *GeometryError {
	return &GeometryError{msg: fmt.Sprintf(format, args...)}
}

// Tile is one half-rhombus of the P3 tiling.  The two implementations,
// LargeTile and SmallTile, each own their substitution rule.
type Tile interface {
	geom.Bounded

	// Inflate subdivides the tile into smaller children of mixed type
	// covering the same area, in a fixed deterministic order.
	Inflate() []Tile

	// Conjugate returns a copy mirrored about the x-axis.
	Conjugate() Tile

	LegLength() float64
	BaseLength() float64
	RhombusCenter() geom.Coord
	BoundaryPath() Polygon
	RhombusPath() Polygon
	ArcPaths(useRhombus bool) [2]Arc

	transform(func(geom.Coord) geom.Coord)
}

// RobinsonTriangle is an isoceles triangle with base A-B and apex V.  The
// rendered unit is the rhombus formed by the triangle unioned with its mirror
// image about the base.
type RobinsonTriangle struct {
	A, V, B geom.Coord
}

func newRobinsonTriangle(a, v, b geom.Coord) (RobinsonTriangle, error) {
	if !almostEqual(a.DistanceFrom(v), b.DistanceFrom(v)) {
		return RobinsonTriangle{}, geometryErrorf(
			"tiling: leg lengths differ: |A-V|=%g |B-V|=%g", a.DistanceFrom(v), b.DistanceFrom(v))
	}
	return RobinsonTriangle{A: a, V: v, B: b}, nil
}

func (t *RobinsonTriangle) LegLength() float64 { return t.A.DistanceFrom(t.V) }

func (t *RobinsonTriangle) BaseLength() float64 { return t.A.DistanceFrom(t.B) }

func (t *RobinsonTriangle) BaseMidpoint() geom.Coord { return t.A.Plus(t.B).Times(0.5) }

// RhombusCenter is the base midpoint: the rhombus is symmetric about the
// base, so the midpoint is its center.  Coincident rhombi from sibling
// inflations share this point exactly, which is what deduplication keys on.
func (t *RobinsonTriangle) RhombusCenter() geom.Coord { return t.BaseMidpoint() }

func (t *RobinsonTriangle) Bounds() geom.Rect {
	r := geom.Rect{Min: t.A, Max: t.A}
	r.ExpandToContainCoord(t.V)
	r.ExpandToContainCoord(t.B)
	return r
}

// BoundaryPath returns the closed triangle outline A -> V -> B.
func (t *RobinsonTriangle) BoundaryPath() Polygon {
	return Polygon{t.A, t.V, t.B}
}

// RhombusPath returns the closed rhombus outline A -> V -> B -> V', where V'
// is the apex mirrored about the base.
func (t *RobinsonTriangle) RhombusPath() Polygon {
	return Polygon{t.A, t.V, t.B, t.A.Minus(t.V).Plus(t.B)}
}

// ArcPaths returns the two decorative arcs, centered on the base corners with
// radius half the leg length.  With useRhombus the arcs end on the rhombus
// edges, otherwise on the bisector towards the mirrored apex.
func (t *RobinsonTriangle) ArcPaths(useRhombus bool) [2]Arc {
	d := t.A.Minus(t.V).Plus(t.B)
	return [2]Arc{
		arcAbout(t.A, t.V, d, useRhombus),
		arcAbout(t.B, t.V, d, useRhombus),
	}
}

func (t *RobinsonTriangle) conjugate() RobinsonTriangle {
	return RobinsonTriangle{A: conjugated(t.A), V: conjugated(t.V), B: conjugated(t.B)}
}

func (t *RobinsonTriangle) transform(f func(geom.Coord) geom.Coord) {
	t.A, t.V, t.B = f(t.A), f(t.V), f(t.B)
}

// LargeTile is the obtuse Robinson triangle, base:leg ratio Phi.
type LargeTile struct {
	RobinsonTriangle
}

// NewLargeTile validates the Robinson invariants and the Phi base:leg ratio.
func NewLargeTile(a, v, b geom.Coord) (*LargeTile, error) {
	rt, err := newRobinsonTriangle(a, v, b)
	if err != nil {
		return nil, err
	}
	if r := rt.BaseLength() / rt.LegLength(); !almostEqual(r, Phi) {
		return nil, geometryErrorf("tiling: large tile base:leg ratio %g, want %g", r, Phi)
	}
	return &LargeTile{rt}, nil
}

// Inflate subdivides into two large children and one small one.  Children are
// valid by construction so no validation runs on the hot path.
func (t *LargeTile) Inflate() []Tile {
	d := t.A.Times(PsiSq).Plus(t.B.Times(Psi))
	e := t.A.Times(PsiSq).Plus(t.V.Times(Psi))
	return []Tile{
		&LargeTile{RobinsonTriangle{A: d, V: e, B: t.A}},
		&SmallTile{RobinsonTriangle{A: e, V: d, B: t.V}},
		&LargeTile{RobinsonTriangle{A: t.B, V: d, B: t.V}},
	}
}

func (t *LargeTile) Conjugate() Tile { return &LargeTile{t.conjugate()} }

// SmallTile is the acute Robinson triangle, base:leg ratio Psi.
type SmallTile struct {
	RobinsonTriangle
}

// NewSmallTile validates the Robinson invariants and the Psi base:leg ratio.
func NewSmallTile(a, v, b geom.Coord) (*SmallTile, error) {
	rt, err := newRobinsonTriangle(a, v, b)
	if err != nil {
		return nil, err
	}
	if r := rt.BaseLength() / rt.LegLength(); !almostEqual(r, Psi) {
		return nil, geometryErrorf("tiling: small tile base:leg ratio %g, want %g", r, Psi)
	}
	return &SmallTile{rt}, nil
}

// Inflate subdivides into one small child and one large one.
func (t *SmallTile) Inflate() []Tile {
	d := t.A.Times(Psi).Plus(t.V.Times(PsiSq))
	return []Tile{
		&SmallTile{RobinsonTriangle{A: d, V: t.B, B: t.A}},
		&LargeTile{RobinsonTriangle{A: t.B, V: d, B: t.V}},
	}
}

func (t *SmallTile) Conjugate() Tile { return &SmallTile{t.conjugate()} }
