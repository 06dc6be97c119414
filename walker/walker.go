package walker

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/pathwalk/gridgraph"
)

// Walker carves a winding 4-connected path between two fixed grid points.
//
// Each step is either a "decrease" step, moving to the neighbor closest to
// the end point, or an "increase" step, moving to a random neighbor that is
// farther away. The choice is a Bernoulli draw whose probability comes from
// the BiasPolicy: early in the walk the path wanders, and once the step
// budget ceil(distance/pace) is spent it heads straight for the goal.
//
// A Walker is not safe for concurrent use; it owns its RNG and scratch path.
type Walker struct {
	grid        *gridgraph.Grid
	start, end  gridgraph.Point
	exponent    float64
	pace        float64
	targetSteps int
	maxSteps    int
	bias        BiasPolicy
	rng         *rand.Rand

	path  Path
	nbrs  []gridgraph.Point
	wider []gridgraph.Point
}

// maxBudget caps the step budget so the default ceiling stays well inside int.
const maxBudget = math.MaxInt32

// New validates the configuration and builds a Walker over g.
// When no endpoints are given they are sampled from two different edges
// using the walker's own RNG, so a seeded walker is fully reproducible.
//
// Errors: gridgraph.ErrEmptyGrid or gridgraph.ErrNonRectangular for a
// malformed grid, ErrBadExponent, ErrBadStepPace, ErrBadMaxSteps,
// ErrOutOfBounds for explicit endpoints off the grid. An exponent so small
// that the start-to-end distance exceeds math.MaxInt32 is reported as
// ErrBadExponent, and a pace that pushes the step budget past it as
// ErrBadStepPace.
func New(g *gridgraph.Grid, opts ...Option) (*Walker, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	if math.IsNaN(cfg.exponent) || cfg.exponent <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadExponent, cfg.exponent)
	}
	if math.IsNaN(cfg.pace) || math.IsInf(cfg.pace, 0) || cfg.pace <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadStepPace, cfg.pace)
	}
	if cfg.hasMaxSteps && cfg.maxSteps <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxSteps, cfg.maxSteps)
	}

	start, end := cfg.start, cfg.end
	if cfg.hasEndpoints {
		for _, p := range [2]gridgraph.Point{start, end} {
			if !g.Contains(p) {
				return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
			}
		}
	} else {
		start, end, _, _ = SampleEdgePoints(g, cfg.rng, cfg.exponent)
	}

	w := &Walker{
		grid:     g,
		start:    start,
		end:      end,
		exponent: cfg.exponent,
		pace:     cfg.pace,
		bias:     cfg.bias,
		rng:      cfg.rng,
		nbrs:     make([]gridgraph.Point, 0, 4),
		wider:    make([]gridgraph.Point, 0, 4),
	}
	dist := Distance(start, end, w.exponent)
	if math.IsInf(dist, 0) || dist > maxBudget {
		return nil, fmt.Errorf("%w: distance %v from %v to %v is out of range", ErrBadExponent, dist, start, end)
	}
	budget := math.Ceil(dist / w.pace)
	if math.IsInf(budget, 0) || budget > maxBudget {
		return nil, fmt.Errorf("%w: step budget %v for distance %v is out of range", ErrBadStepPace, budget, dist)
	}
	w.targetSteps = int(budget)
	w.maxSteps = cfg.maxSteps
	if !cfg.hasMaxSteps {
		w.maxSteps = DefaultMaxStepFactor*w.targetSteps + g.Width*g.Height
	}
	return w, nil
}

// Start returns the first point of every walk.
func (w *Walker) Start() gridgraph.Point { return w.start }

// End returns the point walks aim for.
func (w *Walker) End() gridgraph.Point { return w.end }

// Exponent returns the Minkowski exponent in use.
func (w *Walker) Exponent() float64 { return w.exponent }

// TargetSteps returns the step budget ceil(distance(start,end)/pace).
func (w *Walker) TargetSteps() int { return w.targetSteps }

// MaxSteps returns the convergence ceiling.
func (w *Walker) MaxSteps() int { return w.maxSteps }

// Walk runs one fresh walk from Start and returns the path. The final point
// lies within distance 1 of End but need not equal it. Repeated calls reuse
// the same endpoints and continue the RNG stream, so each call yields a new
// path.
//
// Returns ErrNotConverged, wrapped with the step count, if the ceiling is
// reached first; the partial path is discarded.
//
// Complexity: O(steps) time, O(steps) memory.
func (w *Walker) Walk() (Path, error) {
	w.path = append(w.path[:0], w.start)
	cur := w.start
	taken := 0

	for Distance(cur, w.end, w.exponent) > 1 {
		if taken >= w.maxSteps {
			return nil, fmt.Errorf("%w: %d steps from %v toward %v (budget %d)",
				ErrNotConverged, taken, w.start, w.end, w.targetSteps)
		}
		closeIn := w.rng.Float64() < clamp01(w.bias(taken, w.targetSteps))
		cur = w.step(cur, closeIn)
		w.path = append(w.path, cur)
		taken++
	}

	out := make(Path, len(w.path))
	copy(out, w.path)
	return out, nil
}

// step moves one cell from cur. Neighbors are visited left, right, up, down;
// on a decrease step the first strictly closest neighbor wins.
func (w *Walker) step(cur gridgraph.Point, closeIn bool) gridgraph.Point {
	w.nbrs = w.grid.Neighbors4(w.nbrs[:0], cur)

	if closeIn {
		best := w.nbrs[0]
		bestD := Distance(best, w.end, w.exponent)
		for _, n := range w.nbrs[1:] {
			if d := Distance(n, w.end, w.exponent); d < bestD {
				best, bestD = n, d
			}
		}
		return best
	}

	here := Distance(cur, w.end, w.exponent)
	w.wider = w.wider[:0]
	for _, n := range w.nbrs {
		if Distance(n, w.end, w.exponent) > here {
			w.wider = append(w.wider, n)
		}
	}
	if len(w.wider) == 0 {
		return w.nbrs[w.rng.Intn(len(w.nbrs))]
	}
	return w.wider[w.rng.Intn(len(w.wider))]
}

// Paint sets g[y][x] = fill for every point of path. All points are checked
// first; on ErrOutOfBounds the grid is left untouched.
func Paint(path Path, g *gridgraph.Grid, fill int) error {
	if err := g.Validate(); err != nil {
		return err
	}
	for _, p := range path {
		if !g.Contains(p) {
			return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width, g.Height)
		}
	}
	for _, p := range path {
		g.Cells[p.Y][p.X] = fill
	}
	return nil
}
