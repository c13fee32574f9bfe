// SPDX-License-Identifier: MIT
// Package: socialnet/builder
//
// config.go — internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • idFn = identity (index i becomes node i)
//   • rng  = nil      (pure/deterministic unless seeded)

package builder

import "math/rand"

// IDFn maps a zero-based constructor index to a node id.
// It must be pure and return non-negative ids.
type IDFn func(idx int) int

// DefaultIDFn is the identity scheme.
func DefaultIDFn(idx int) int { return idx }

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn IDFn
	rng  *rand.Rand
}

// newBuilderConfig applies options in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption customizes constructor behavior by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → id mapping. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
