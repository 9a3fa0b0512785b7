// SPDX-License-Identifier: MIT
// Package: network
//
// errors.go - sentinel errors for the network package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Constructors attach context with %w (method, offending parameter).
//   - Option constructors (WithX) panic on meaningless values; topology
//     builders never panic.

package network

import "errors"

// ErrTooFewSectors indicates a sector count below the topology minimum.
var ErrTooFewSectors = errors.New("network: too few sectors")

// ErrInvalidProbability indicates a link probability outside [0,1].
var ErrInvalidProbability = errors.New("network: probability out of range")

// ErrNeedRandSource indicates a stochastic topology built without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("network: rng is required")

// ErrInvalidWeight indicates a link weight function returned a negative or non-finite value.
var ErrInvalidWeight = errors.New("network: link weight must be finite and >= 0")

// ErrInvalidProfile indicates a negative base level or amplitude for a productivity profile.
var ErrInvalidProfile = errors.New("network: productivity profile parameters must be >= 0")
