package walker

import "fmt"

// BiasPolicy maps walk progress to the probability that the next step
// closes in on the end point. taken is the number of steps already taken,
// target the step budget ceil(distance/pace). Results outside [0,1] are
// clamped by the walker.
//
// A policy should be monotonically non-decreasing in taken, near 0 early in
// the walk and reach 1 once taken ≥ target, so that a walk that is behind
// schedule always converges.
type BiasPolicy func(taken, target int) float64

// LinearBias is the default policy: P(decrease) = clamp(taken/target, 0, 1).
//
// The walker wanders freely on its first step, is even odds at half budget
// and heads straight for the goal once the budget is spent. A zero budget
// (start and end coincide under the metric) yields 1.
func LinearBias(taken, target int) float64 {
	if target <= 0 {
		return 1
	}
	return clamp01(float64(taken) / float64(target))
}

// QuadraticBias keeps the walker wandering longer than LinearBias:
// P(decrease) = clamp((taken/target)², 0, 1). Roads drawn with it meander
// more in their first half.
func QuadraticBias(taken, target int) float64 {
	r := LinearBias(taken, target)
	return r * r
}

// Names accepted by BiasByName.
const (
	BiasLinear    = "linear"
	BiasQuadratic = "quadratic"
)

// BiasByName resolves a policy name from a plan or a flag. The empty name
// selects LinearBias.
func BiasByName(name string) (BiasPolicy, error) {
	switch name {
	case "", BiasLinear:
		return LinearBias, nil
	case BiasQuadratic:
		return QuadraticBias, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBias, name)
	}
}

// clamp01 limits v to [0,1]; NaN maps to 1 so a broken policy still converges.
func clamp01(v float64) float64 {
	switch {
	case v != v:
		return 1
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
