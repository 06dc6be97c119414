package walker

import (
	"math/rand"

	"github.com/katalvlaran/pathwalk/gridgraph"
)

// Edge names one side of the grid.
type Edge int

const (
	Left Edge = iota
	Right
	Top
	Bottom
	numEdges
)

func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// maxSampleAttempts bounds how often SampleEdgePoints redraws a pair that
// lies within distance 1 (possible only near corners or on tiny grids).
const maxSampleAttempts = 16

// SampleEdgePoints picks two different edges of g uniformly and then a
// uniform point on each. Pairs closer than distance 1 under exponent p are
// redrawn a bounded number of times so the walk has some length; on a grid
// too small to avoid that, the last draw is returned as is.
func SampleEdgePoints(g *gridgraph.Grid, rng *rand.Rand, p float64) (start, end gridgraph.Point, startEdge, endEdge Edge) {
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		startEdge = Edge(rng.Intn(int(numEdges)))
		endEdge = Edge(rng.Intn(int(numEdges) - 1))
		if endEdge >= startEdge {
			endEdge++
		}
		start = pointOnEdge(g, startEdge, rng)
		end = pointOnEdge(g, endEdge, rng)
		if Distance(start, end, p) > 1 {
			break
		}
	}
	return start, end, startEdge, endEdge
}

// OnEdge reports whether p lies on edge e of g.
func OnEdge(g *gridgraph.Grid, p gridgraph.Point, e Edge) bool {
	switch e {
	case Left:
		return p.X == 0
	case Right:
		return p.X == g.Width-1
	case Top:
		return p.Y == 0
	case Bottom:
		return p.Y == g.Height-1
	default:
		return false
	}
}

func pointOnEdge(g *gridgraph.Grid, e Edge, rng *rand.Rand) gridgraph.Point {
	switch e {
	case Left:
		return gridgraph.Pt(0, rng.Intn(g.Height))
	case Right:
		return gridgraph.Pt(g.Width-1, rng.Intn(g.Height))
	case Top:
		return gridgraph.Pt(rng.Intn(g.Width), 0)
	default:
		return gridgraph.Pt(rng.Intn(g.Width), g.Height-1)
	}
}
