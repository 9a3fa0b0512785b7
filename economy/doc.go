// SPDX-License-Identifier: MIT

// Package economy assembles the static structure the dynamics run on: the
// sector count, the Firms and Household parameter sets, the CES elasticity q,
// the returns to scale b and the n×(n+1) substitution matrix λ.
//
// It exposes the two aggregators the engine needs each period:
// ComputePNet (network price index) and ProductionFunction (output from
// realised inputs). Both treat q = 0 and q = +Inf as exact closed forms.
package economy
