// SPDX-License-Identifier: MIT
// Package: network
//
// options.go - functional options for the topology builders.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     builders themselves return errors.
//   - Determinism is explicit: randomness only flows from WithSeed/WithRand.

package network

import (
	"math"
	"math/rand"
)

// Option customizes a topology build by mutating the config before use.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic topologies and weights.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("network: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG, making RandomSparse and random weights reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabourShare sets the substitution weight every sector puts on labour.
// Panics unless 0 < share <= 1.
func WithLabourShare(share float64) Option {
	if !(share > 0 && share <= 1) {
		panic("network: WithLabourShare(share not in (0,1])")
	}
	return func(c *config) {
		c.labourShare = share
	}
}

// WithSelfLoops lets a sector use its own good as an input.
func WithSelfLoops(allow bool) Option {
	return func(c *config) {
		c.selfLoops = allow
	}
}

// WithWeightFn overrides the per-link weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("network: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// UniformWeightFn draws link weights from U[lo, hi); falls back to the
// midpoint without an RNG. Panics unless 0 <= lo <= hi and both are finite.
func UniformWeightFn(lo, hi float64) func(*rand.Rand) float64 {
	if !(lo >= 0 && hi >= lo) || math.IsInf(hi, 0) {
		panic("network: UniformWeightFn(bad range)")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return (lo + hi) / 2
		}
		return lo + (hi-lo)*r.Float64()
	}
}
