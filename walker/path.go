package walker

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pathwalk/gridgraph"
)

// Path is an ordered sequence of 4-connected grid points.
type Path []gridgraph.Point

// First returns the first point; ok is false for an empty path.
func (p Path) First() (pt gridgraph.Point, ok bool) {
	if len(p) == 0 {
		return gridgraph.Point{}, false
	}
	return p[0], true
}

// Last returns the final point; ok is false for an empty path.
func (p Path) Last() (pt gridgraph.Point, ok bool) {
	if len(p) == 0 {
		return gridgraph.Point{}, false
	}
	return p[len(p)-1], true
}

// Steps is the number of moves in the path, len(p)-1 for a non-empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Validate checks that every point lies on g and that consecutive points
// are 4-connected.
func (p Path) Validate(g *gridgraph.Grid) error {
	for i, pt := range p {
		if !g.Contains(pt) {
			return fmt.Errorf("%w: point %d %v in %dx%d", ErrOutOfBounds, i, pt, g.Width, g.Height)
		}
		if i > 0 && !adjacent(p[i-1], pt) {
			return fmt.Errorf("%w: %v -> %v at step %d", ErrBrokenPath, p[i-1], pt, i)
		}
	}
	return nil
}

// Stats summarizes how a path approached its goal.
type Stats struct {
	Steps int `json:"steps"`
	// Straight is the distance from the first point to end.
	Straight float64 `json:"straight"`
	// Remaining is the distance from the last point to end.
	Remaining float64 `json:"remaining"`
	// Tortuosity is Steps divided by Straight; 0 when Straight is 0.
	Tortuosity float64 `json:"tortuosity"`
	// MeanProgress and StdProgress describe the per-step reduction in
	// distance to end. Positive means the step closed in.
	MeanProgress float64 `json:"mean_progress"`
	StdProgress  float64 `json:"std_progress"`
	// Retreats counts steps that moved away from end.
	Retreats int `json:"retreats"`
}

// Stats computes Stats for p relative to end under exponent exp.
func (p Path) Stats(end gridgraph.Point, exp float64) Stats {
	var s Stats
	if len(p) == 0 {
		return s
	}
	s.Steps = p.Steps()
	s.Straight = Distance(p[0], end, exp)
	s.Remaining = Distance(p[len(p)-1], end, exp)
	if s.Straight > 0 {
		s.Tortuosity = float64(s.Steps) / s.Straight
	}
	if s.Steps == 0 {
		return s
	}

	progress := make([]float64, s.Steps)
	prev := s.Straight
	for i, pt := range p[1:] {
		d := Distance(pt, end, exp)
		progress[i] = prev - d
		if progress[i] < 0 {
			s.Retreats++
		}
		prev = d
	}
	if len(progress) == 1 {
		// sample std-dev is undefined for one value
		s.MeanProgress = progress[0]
		return s
	}
	s.MeanProgress, s.StdProgress = stat.MeanStdDev(progress, nil)
	return s
}
