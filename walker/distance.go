package walker

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/pathwalk/gridgraph"
)

// Distance returns the Minkowski distance (Σ|Δi|^p)^(1/p) between a and b.
// p=1 is Manhattan, p=2 Euclidean, p=+Inf Chebyshev.
// p must be > 0; New rejects anything else before a walk starts.
//
// The offsets are scaled by their largest component before the norm is
// taken, so large exponents never overflow to +Inf.
func Distance(a, b gridgraph.Point, p float64) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	m := math.Max(dx, dy)
	if m == 0 {
		return 0
	}
	return m * floats.Norm([]float64{dx / m, dy / m}, p)
}

// adjacent reports whether a and b differ by exactly one unit on one axis.
func adjacent(a, b gridgraph.Point) bool {
	d := a.Sub(b)
	return (d.X == 0 && (d.Y == 1 || d.Y == -1)) || (d.Y == 0 && (d.X == 1 || d.X == -1))
}
