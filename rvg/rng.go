// RNG utilities shared by the generator.
//
// This file centralizes deterministic random sources.
//
// Goals:
//   - Determinism: same seed ⇒ identical values across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Explicit threading: the *rand.Rand is passed down to every Distribution.
//
// Concurrency:
//   - math/rand/v2.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use deriveRNG (Generator.Fork) to create independent streams for workers.

package rvg

import "math/rand/v2"

// defaultRNGSeed is the fixed seed used when callers pass seed==0 or set no
// source at all. The value is arbitrary but stable.
const defaultRNGSeed uint64 = 1

// rngFromSeed returns a deterministic PCG-backed *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewPCG(seed, seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer, so neighbouring streams decorrelate.
//
// Complexity: O(1).
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// deriveRNG creates an independent deterministic stream from base and a
// stream identifier. If base==nil, defaultRNGSeed is the parent. Otherwise
// base.Uint64() is consumed once, so deriving the same stream id twice
// still yields different children.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Uint64()
	}

	return rngFromSeed(deriveSeed(parent, stream))
}
