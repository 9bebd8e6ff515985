package tiling

import (
	"math"

	"github.com/jbeda/geom"
)

// Golden-ratio constants governing the P3 tile proportions and the inflation
// scale factor.  Psi is 1/Phi and PsiSq equals Psi*Psi (= 1 - Psi); each
// inflation pass shrinks edges by Psi and the rhombus decorations by PsiSq.
const (
	Phi   = math.Phi
	PhiSq = math.Phi + 1.0
	Psi   = math.Phi - 1.0
	PsiSq = 2.0 - math.Phi
)

// Comparing floating point sucks.  An absolute threshold is good enough here:
// the substitution only ever divides coordinates down from the seed scale, so
// accumulated error stays many orders of magnitude below this.
const floatEqualThresh = 1e-8

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEqualThresh
}

func rotated(p geom.Coord, angle float64) geom.Coord {
	sin, cos := math.Sincos(angle)
	return geom.Coord{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

func conjugated(p geom.Coord) geom.Coord {
	return geom.Coord{X: p.X, Y: -p.Y}
}
