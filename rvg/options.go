// SPDX-License-Identifier: MIT
// Package: rvg
//
// options.go — functional options for Generator constructors.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs (nil
//     sources, nil callbacks). Generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package rvg

import "math/rand/v2"

// Option customizes a Generator before construction completes.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithSeed seeds a fresh PCG source. Seed 0 selects the default seed, so
// WithSeed(0) and no seed at all produce the same sequence.
// Complexity: O(1).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit random source. The Generator takes
// ownership: do not use r concurrently elsewhere. Panics on nil.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rvg: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDistribution replaces the leaf sampler. Panics on nil.
// WithTypeLimits has no effect on a custom distribution.
// Complexity: O(1).
func WithDistribution(d Distribution) Option {
	if d == nil {
		panic("rvg: WithDistribution(nil)")
	}
	return func(c *config) {
		c.dist = d
	}
}

// WithTypeLimits toggles clamping of requested ranges to the limits of the
// scalar being sampled. With false, a range exceeding the limits is a
// RangeError instead.
// Complexity: O(1).
func WithTypeLimits(on bool) Option {
	return func(c *config) {
		c.typeLimits = on
	}
}

// WithWarningFunc registers a callback for advisory warnings. Warnings are
// also kept on the Generator (see Warnings). Panics on nil.
// Complexity: O(1).
func WithWarningFunc(fn func(RangeWarning)) Option {
	if fn == nil {
		panic("rvg: WithWarningFunc(nil)")
	}
	return func(c *config) {
		c.warn = fn
	}
}
