// SPDX-License-Identifier: MIT
// Package: pathwalk/walker
//
// errors.go — sentinel errors for the walker package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (offending values, step counts) is attached with %w wrapping.
//   • Construction errors are reported by New before any walking begins.
//   • Walk never panics; a runaway walk ends with ErrNotConverged.

package walker

import "errors"

// ErrBadExponent indicates a distance exponent that is NaN or not positive.
var ErrBadExponent = errors.New("walker: distance exponent must be > 0")

// ErrBadStepPace indicates a target distance per step that is NaN, infinite
// or not positive.
var ErrBadStepPace = errors.New("walker: target distance per step must be finite and > 0")

// ErrBadMaxSteps indicates a non-positive convergence ceiling.
var ErrBadMaxSteps = errors.New("walker: max steps must be > 0")

// ErrOutOfBounds indicates an endpoint or path point outside the grid.
var ErrOutOfBounds = errors.New("walker: point outside grid")

// ErrNotConverged indicates the walk hit its step ceiling before reaching
// the stopping distance. Callers may retry with another seed or parameters.
var ErrNotConverged = errors.New("walker: path did not converge")

// ErrUnknownBias indicates a bias policy name that BiasByName does not know.
var ErrUnknownBias = errors.New("walker: unknown bias policy")

// ErrBrokenPath indicates two consecutive path points that are not
// 4-connected.
var ErrBrokenPath = errors.New("walker: consecutive points are not adjacent")
