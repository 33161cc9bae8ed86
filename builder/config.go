// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn        ("S0","S1","S2",...)
//   • rng      = nil                (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn    (every link costs core.UnitWeight)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Station ID strategy: index -> name (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Travel-time generator for links.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
