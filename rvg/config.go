// SPDX-License-Identifier: MIT
// Package: rvg
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = PCG seeded with defaultRNGSeed
//   • dist        = Uniform{TypeLimits: typeLimits}
//   • typeLimits  = true (clamp requested ranges to the scalar limits)
//   • warn        = nil  (advisories are only collected)

package rvg

import "math/rand/v2"

// config aggregates all knobs used by a Generator.
// It is stored by VALUE in the Generator (immutable to callers).
type config struct {
	// Random source threaded into every Distribution call.
	rng *rand.Rand
	// Leaf sampler; nil until resolved in newConfig.
	dist Distribution
	// Clamp (true) or reject (false) ranges exceeding the scalar limits.
	// Only consulted when dist is resolved to the default Uniform.
	typeLimits bool
	// Optional advisory callback, invoked synchronously.
	warn func(RangeWarning)
}

const defaultTypeLimits = true

// newConfig constructs a config with deterministic defaults and applies all
// options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{
		typeLimits: defaultTypeLimits,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = rngFromSeed(defaultRNGSeed)
	}
	if cfg.dist == nil {
		cfg.dist = Uniform{TypeLimits: cfg.typeLimits}
	}

	return cfg
}
