// SPDX-License-Identifier: MIT
// Package: pathwalk/walker
//
// options.go — functional options for New.
//
// Contract:
//   • Options only record values; New validates them and returns sentinel
//     errors (ErrBadExponent, ErrBadStepPace, ErrBadMaxSteps, ErrOutOfBounds).
//   • Nil arguments (WithRand(nil), WithBias(nil)) are programmer errors and
//     panic at option construction, as nothing meaningful can follow.
//   • Determinism is explicit: randomness comes only from WithSeed/WithRand.

package walker

import (
	"math/rand"

	"github.com/katalvlaran/pathwalk/gridgraph"
)

// Defaults for a walker built without options.
const (
	// DefaultExponent selects Euclidean distance.
	DefaultExponent = 2.0
	// DefaultStepPace is the desired average distance closed per step.
	DefaultStepPace = 0.6
	// DefaultMaxStepFactor scales the step budget into the default ceiling.
	DefaultMaxStepFactor = 4
)

// Option customizes a Walker before construction completes.
type Option func(*config)

type config struct {
	start, end   gridgraph.Point
	hasEndpoints bool
	exponent     float64
	pace         float64
	maxSteps     int
	hasMaxSteps  bool
	rng          *rand.Rand
	bias         BiasPolicy
}

func newConfig(opts ...Option) config {
	cfg := config{
		exponent: DefaultExponent,
		pace:     DefaultStepPace,
		bias:     LinearBias,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewRand(0)
	}
	return cfg
}

// WithEndpoints fixes the start and end points. Without it New samples both
// from two different edges of the grid.
func WithEndpoints(start, end gridgraph.Point) Option {
	return func(c *config) {
		c.start, c.end = start, end
		c.hasEndpoints = true
	}
}

// WithExponent sets the Minkowski exponent p (default 2).
func WithExponent(p float64) Option {
	return func(c *config) { c.exponent = p }
}

// WithStepPace sets the target distance covered per step (default 0.6).
// Smaller values give a larger step budget and therefore longer, more
// winding paths.
func WithStepPace(d float64) Option {
	return func(c *config) { c.pace = d }
}

// WithMaxSteps sets the convergence ceiling. A walk taking this many steps
// without arriving fails with ErrNotConverged.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
		c.hasMaxSteps = true
	}
}

// WithSeed seeds a private RNG. Seed 0 maps to DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = NewRand(seed) }
}

// WithRand hands the walker an existing RNG. The walker takes ownership:
// do not share r across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("walker: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithBias replaces LinearBias with a custom policy.
func WithBias(policy BiasPolicy) Option {
	if policy == nil {
		panic("walker: WithBias(nil)")
	}
	return func(c *config) { c.bias = policy }
}
