// Package walker generates plausible, non-straight paths between two points
// on a terrain grid, for painting roads, rivers and trails onto game maps.
//
// What:
//
//   - Walker performs a biased random walk over 4-connected cells. Each step
//     either closes in on the end point or wanders away from it; the odds
//     shift toward closing in as the walk uses up its step budget.
//   - Distance is the Minkowski metric used both to steer and to stop.
//   - SampleEdgePoints draws endpoints on two different grid edges.
//   - Paint stamps a path onto a grid with a fill value.
//   - Path.Validate and Path.Stats check and summarize a result.
//
// Step budget:
//
//	target = ceil(distance(start, end, p) / pace)
//
// With the default LinearBias, P(close in) = clamp(taken/target, 0, 1):
// the first step always wanders, and from step target onward every step
// closes in, so the walk finishes within target + W + H steps.
//
// Termination:
//
//   - A walk stops as soon as distance(current, end) ≤ 1; the last point may
//     be a neighbor of end rather than end itself.
//   - start == end yields the one-point path [start].
//   - Any BiasPolicy is bounded by MaxSteps; exceeding it returns
//     ErrNotConverged and the caller may retry with another seed.
//
// Determinism:
//
//	All randomness flows from the RNG given by WithSeed or WithRand (seed 0
//	by default). Same seed and options ⇒ same endpoints and same path.
//
// Complexity:
//
//   - Walk: O(steps) time and memory; every step inspects ≤ 4 neighbors.
//   - Paint, Validate, Stats: O(len(path)).
package walker
