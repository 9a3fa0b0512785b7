// SPDX-License-Identifier: MIT
// Package: dynamics
//
// options.go - functional options for New.
//
// Option constructors panic on meaningless values (nil logger, nil policy,
// non-finite tension); the engine itself returns errors.

package dynamics

import (
	"io"
	"log/slog"
	"math"
)

// Option customizes a Dynamics at construction.
type Option func(*config)

// config holds everything preserved across UpdateTMax and UpdateEconomy.
type config struct {
	storage      any
	logger       *slog.Logger
	policy       RationingPolicy
	tension      float64
	finiteChecks bool
}

const defaultTension = 1.0

func newConfig(opts ...Option) config {
	cfg := config{
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy:       HouseholdPriority{},
		tension:      defaultTension,
		finiteChecks: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStorage attaches an opaque handle for the caller's own persistence.
// The engine never inspects it; Storage returns it unchanged.
func WithStorage(storage any) Option {
	return func(c *config) {
		c.storage = storage
	}
}

// WithLogger routes run progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("dynamics: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithRationing replaces the default HouseholdPriority market clearing. Panics on nil.
func WithRationing(p RationingPolicy) Option {
	if p == nil {
		panic("dynamics: WithRationing(nil)")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithTension scales the goods-market tension signal passed to the household
// (multiplies its ω_p). Panics on a non-finite value.
func WithTension(sensitivity float64) Option {
	if math.IsNaN(sensitivity) || math.IsInf(sensitivity, 0) {
		panic("dynamics: WithTension(non-finite)")
	}
	return func(c *config) {
		c.tension = sensitivity
	}
}

// WithFiniteChecks toggles the NaN/Inf checks at phase boundaries (on by
// default). With checks off a numerical failure propagates silently through
// the remaining periods.
func WithFiniteChecks(enabled bool) Option {
	return func(c *config) {
		c.finiteChecks = enabled
	}
}
