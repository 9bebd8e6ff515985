package tiling

import "fmt"

// Config collects the recognized tiling options.  Margin, Reflect, Rotation
// and EqualityTol drive Run; the colors, opacities and stroke settings only
// affect projection.
type Config struct {
	// Margin is the output padding as a fraction of the scale, in [0, 1).
	Margin float64

	StrokeColor string
	// StrokeWidth of 0 selects a width matched to the tile size of the
	// final generation.
	StrokeWidth float64

	// Reflect mirrors the tiling about the x-axis during Run, completing a
	// 5-fold symmetric seed into the full 10-fold symmetric tiling.
	Reflect bool
	// Rotation in radians, applied at the end of Run.
	Rotation float64

	LargeTileColor   string
	SmallTileColor   string
	LargeTileOpacity float64
	SmallTileOpacity float64

	// EqualityTol is the center-to-center distance below which two rhombi
	// are treated as the same and collapsed to one.
	EqualityTol float64

	// DrawArcs adds the decorative arcs to every projected tile;
	// RhombusArcs selects the rhombus variant of the arc endpoints.
	DrawArcs    bool
	RhombusArcs bool
}

// DefaultConfig returns the stock style: Cornell-red rhombi on a white
// stroke, mirror completion on, exact dedup.
func DefaultConfig() Config {
	return Config{
		Margin:           0.0,
		StrokeColor:      "#FFFFFF",
		Reflect:          true,
		Rotation:         0,
		LargeTileColor:   "#B31B1B",
		SmallTileColor:   "#B31B1B",
		LargeTileOpacity: 0.90,
		SmallTileOpacity: 0.37,
		EqualityTol:      0,
	}
}

// Validate checks the option ranges before any tiling state is touched.
func (c Config) Validate() error {
	if c.Margin < 0 || c.Margin >= 1 {
		return fmt.Errorf("tiling: margin must be in [0,1), got %g", c.Margin)
	}
	if c.EqualityTol < 0 {
		return fmt.Errorf("tiling: equality tolerance must not be negative, got %g", c.EqualityTol)
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("tiling: stroke width must not be negative, got %g", c.StrokeWidth)
	}
	if c.LargeTileOpacity < 0 || c.LargeTileOpacity > 1 {
		return fmt.Errorf("tiling: large tile opacity must be in [0,1], got %g", c.LargeTileOpacity)
	}
	if c.SmallTileOpacity < 0 || c.SmallTileOpacity > 1 {
		return fmt.Errorf("tiling: small tile opacity must be in [0,1], got %g", c.SmallTileOpacity)
	}
	return nil
}
