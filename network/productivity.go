// SPDX-License-Identifier: MIT
// Package: network
//
// productivity.go - smooth heterogeneous productivity profiles.
//
// Neighbouring sector indices get correlated productivities: the profile
// samples fractal simplex noise along a line, so z varies gradually rather
// than as independent draws.

package network

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	methodProductivity = "ProductivityProfile"

	profileOctaves     = 3
	profileFrequency   = 0.15
	profilePersistence = 0.5
)

// ProductivityProfile returns n productivities
//
//	z_i = max(0, base · (1 + amplitude · (2 u_i − 1)))
//
// where u_i ∈ [0,1] is normalized simplex noise at sector i. amplitude = 0
// gives a flat profile; amplitude ≤ 1 keeps every z_i ≥ 0 without clipping.
//
// Errors: ErrTooFewSectors if n < 1, ErrInvalidProfile if base or amplitude
// is negative or non-finite.
func ProductivityProfile(n int, seed int64, base, amplitude float64) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodProductivity, n, ErrTooFewSectors)
	}
	if !(base >= 0) || !(amplitude >= 0) || math.IsInf(base, 0) || math.IsInf(amplitude, 0) {
		return nil, fmt.Errorf("%s: base=%g amplitude=%g: %w", methodProductivity, base, amplitude, ErrInvalidProfile)
	}

	noise := opensimplex.NewNormalized(seed)
	z := make([]float64, n)
	for i := range z {
		u := octaveNoise(noise, float64(i), profileOctaves, profileFrequency, profilePersistence)
		z[i] = math.Max(0, base*(1+amplitude*(2*u-1)))
	}

	return z, nil
}

// octaveNoise layers several frequencies of 1-D noise; the result stays in
// the [0,1] range of the normalized generator.
func octaveNoise(noise opensimplex.Noise, x float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amp := 1.0
	maxVal := 0.0
	for o := 0; o < octaves; o++ {
		total += noise.Eval2(x*frequency, 0) * amp
		maxVal += amp
		amp *= persistence
		frequency *= 2
	}

	return total / maxVal
}
