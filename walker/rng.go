// Package walker - RNG utilities.
//
// Determinism: the same seed yields the same walk on every platform. No
// time-based or global sources are consulted anywhere in this package.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. A Walker owns its RNG;
// use DeriveSeed to hand independent streams to parallel walkers.
package walker

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for callers that drive
// SampleEdgePoints or WithRand themselves.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// using a SplitMix64 finalizer, so that stream i of seed s is uncorrelated
// with stream i+1 and with seed s+1.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
