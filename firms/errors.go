// SPDX-License-Identifier: MIT
// Package firms: sentinel error set.

package firms

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeProductivity indicates z_i < 0 (or NaN) for some sector.
	ErrNegativeProductivity = errors.New("firms: productivity factors must be >= 0")

	// ErrNegativeTimescale indicates a negative (or NaN) inverse timescale alpha, alpha_p, beta or beta_p.
	ErrNegativeTimescale = errors.New("firms: inverse timescales must be >= 0")

	// ErrDepreciationRange indicates sigma_i outside [0,1].
	ErrDepreciationRange = errors.New("firms: stock depreciation must lie in [0,1]")

	// ErrDimensionMismatch indicates inconsistent vector or matrix sizes.
	ErrDimensionMismatch = errors.New("firms: dimension mismatch")

	// ErrInvalidElasticity indicates q < 0 or NaN.
	ErrInvalidElasticity = errors.New("firms: CES elasticity q must be >= 0")

	// ErrInvalidReturns indicates b <= 0 or NaN.
	ErrInvalidReturns = errors.New("firms: returns to scale b must be > 0")
)

// firmsErrorf tags a sentinel with the method that detected it.
func firmsErrorf(method string, err error) error {
	return fmt.Errorf("Firms.%s: %w", method, err)
}
