// SPDX-License-Identifier: MIT
// Package: network
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - rng         = nil   (pure/deterministic unless seeded)
//   - labourShare = 0.5
//   - selfLoops   = false
//   - weightFn    = constant 1

package network

import "math/rand"

// config aggregates all knobs used by topology builders.
// It is passed by value to constructors.
type config struct {
	rng         *rand.Rand
	labourShare float64
	selfLoops   bool
	weightFn    func(*rand.Rand) float64
}

const (
	defaultLabourShare = 0.5
	defaultLinkWeight  = 1.0
)

// newConfig applies options in order over the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		labourShare: defaultLabourShare,
		weightFn:    func(*rand.Rand) float64 { return defaultLinkWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws one link weight.
func (c config) weight() float64 {
	return c.weightFn(c.rng)
}
