// Package aco - RNG utilities for the ant colony.
//
// This file centralizes deterministic random generation for the colony.
//
// Goals:
//   - Determinism: same seed ⇒ identical routes, whatever the worker count.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every ant gets its own stream,
//     derived from (seed, iteration, ant) before its goroutine starts.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// normalizeSeed applies the seed==0 ⇒ defaultRNGSeed policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Independent substreams per ant must not be correlated even though their
// stream ids are consecutive, so the pair goes through a SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antRNG returns the stream of ant k in iteration it for a colony of m ants.
// The stream depends only on (seed, it, k), never on scheduling.
//
// Complexity: O(1).
func antRNG(seed int64, it, k, m int) *rand.Rand {
	stream := uint64(it)*uint64(m) + uint64(k)
	return rand.New(rand.NewSource(deriveSeed(normalizeSeed(seed), stream)))
}
