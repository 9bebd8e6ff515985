package tiling

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jbeda/geom"
	"github.com/sirupsen/logrus"
)

// ErrEmptyTiling is returned by any Canvas operation invoked before the
// canvas holds at least one tile.
var ErrEmptyTiling = errors.New("tiling: canvas holds no tiles")

// Canvas owns the growing tile collection across generations.  The intended
// sequence is seed, Run (or the individual Inflate/Deduplicate/AddMirrorTiles/
// Rotate steps), then Project; every step either completes or fails before
// mutating the collection.
type Canvas struct {
	scale      float64
	generation int
	config     Config
	elements   []Tile
}

// NewCanvas validates the scale and config and seeds the canvas.  Seeding may
// be deferred to a later Seed call.
func NewCanvas(scale float64, config Config, seeds ...Tile) (*Canvas, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("tiling: scale must be positive, got %g", scale)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cv := &Canvas{scale: scale, config: config}
	cv.elements = append(cv.elements, seeds...)
	return cv, nil
}

func (cv *Canvas) Scale() float64  { return cv.scale }
func (cv *Canvas) Generation() int { return cv.generation }
func (cv *Canvas) Config() Config  { return cv.config }

// Tiles exposes the live collection.  The canvas owns the tiles; callers must
// not hold onto them across further mutations.
func (cv *Canvas) Tiles() []Tile { return cv.elements }

// Seed appends tiles to the collection.
func (cv *Canvas) Seed(tiles ...Tile) { cv.elements = append(cv.elements, tiles...) }

// Inflate replaces every tile with its substitution children, preserving the
// relative order of parents.  Each tile inflates independently of the others,
// so the map step fans out across goroutines with one result slot per parent;
// the slot concatenation keeps the output deterministic.
func (cv *Canvas) Inflate() error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	children := make([][]Tile, len(cv.elements))
	var wg sync.WaitGroup
	for i, t := range cv.elements {
		wg.Add(1)
		go func(i int, t Tile) {
			defer wg.Done()
			children[i] = t.Inflate()
		}(i, t)
	}
	wg.Wait()

	next := make([]Tile, 0, 3*len(cv.elements))
	for _, c := range children {
		next = append(next, c...)
	}
	cv.elements = next
	cv.generation++
	logrus.WithFields(logrus.Fields{
		"generation": cv.generation,
		"tiles":      len(cv.elements),
	}).Debug("inflated tiling")
	return nil
}

// Deduplicate collapses runs of tiles whose rhombus centers coincide within
// the configured tolerance.  Tiles are sorted by center, X then Y, so that
// coincident rhombi become adjacent; a tile survives if its center lies
// farther than the tolerance from the previously kept one.  Coincident rhombi
// produced by the substitution share an exact center, so a zero tolerance
// suffices, and the sort-then-scan keeps this O(n log n) instead of pairwise.
func (cv *Canvas) Deduplicate() error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	sorted := make([]Tile, len(cv.elements))
	copy(sorted, cv.elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := sorted[i].RhombusCenter(), sorted[j].RhombusCenter()
		if ci.X != cj.X {
			return ci.X < cj.X
		}
		return ci.Y < cj.Y
	})

	before := len(sorted)
	kept := sorted[:1]
	for _, t := range sorted[1:] {
		if t.RhombusCenter().DistanceFrom(kept[len(kept)-1].RhombusCenter()) > cv.config.EqualityTol {
			kept = append(kept, t)
		}
	}
	cv.elements = kept
	logrus.WithFields(logrus.Fields{
		"before": before,
		"after":  len(kept),
	}).Debug("deduplicated tiling")
	return nil
}

// AddMirrorTiles appends the x-axis mirror image of every current tile,
// doubling the collection.  Mirrored tiles may coincide with existing ones on
// the axis, so a Deduplicate call must follow.
func (cv *Canvas) AddMirrorTiles() error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	mirrored := make([]Tile, len(cv.elements))
	for i, t := range cv.elements {
		mirrored[i] = t.Conjugate()
	}
	cv.elements = append(cv.elements, mirrored...)
	return nil
}

// Rotate turns every tile about the origin by angle radians.  An angle of
// exactly 0 is a no-op.
func (cv *Canvas) Rotate(angle float64) error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	if angle == 0 {
		return nil
	}
	for _, t := range cv.elements {
		t.transform(func(p geom.Coord) geom.Coord { return rotated(p, angle) })
	}
	return nil
}

// ReflectX mirrors every tile about the x-axis in place.
func (cv *Canvas) ReflectX() error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	for _, t := range cv.elements {
		t.transform(conjugated)
	}
	return nil
}

// ReflectY mirrors every tile about the y-axis in place.
func (cv *Canvas) ReflectY() error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	for _, t := range cv.elements {
		t.transform(func(p geom.Coord) geom.Coord { return geom.Coord{X: -p.X, Y: p.Y} })
	}
	return nil
}

// Cull drops every tile whose bounds extend outside the given rectangle.
func (cv *Canvas) Cull(bounds geom.Rect) error {
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	kept := cv.elements[:0]
	for _, t := range cv.elements {
		if bounds.ContainsRect(t.Bounds()) {
			kept = append(kept, t)
		}
	}
	cv.elements = kept
	return nil
}

// Run builds the tiling: numGenerations inflation passes, a dedup, the
// optional mirror completion with a second dedup, and the optional final
// rotation.  With numGenerations 0 the seeds pass through unchanged apart
// from the configured mirror and rotation.
func (cv *Canvas) Run(numGenerations int) error {
	if numGenerations < 0 {
		return fmt.Errorf("tiling: generation count must not be negative, got %d", numGenerations)
	}
	if len(cv.elements) == 0 {
		return ErrEmptyTiling
	}
	for i := 0; i < numGenerations; i++ {
		if err := cv.Inflate(); err != nil {
			return err
		}
	}
	if err := cv.Deduplicate(); err != nil {
		return err
	}
	if cv.config.Reflect {
		if err := cv.AddMirrorTiles(); err != nil {
			return err
		}
		if err := cv.Deduplicate(); err != nil {
			return err
		}
	}
	if cv.config.Rotation != 0 {
		if err := cv.Rotate(cv.config.Rotation); err != nil {
			return err
		}
	}
	return nil
}
