// SPDX-License-Identifier: MIT
// Package economy: sentinel error set.

package economy

import (
	"errors"
	"fmt"
)

var (
	// ErrNilComponent indicates a missing Firms, Household or substitution matrix.
	ErrNilComponent = errors.New("economy: nil component")

	// ErrDimensionMismatch indicates inconsistent sector counts across components.
	ErrDimensionMismatch = errors.New("economy: dimension mismatch")

	// ErrInvalidSubstitution indicates a negative/non-finite weight or an all-zero row in lambda.
	ErrInvalidSubstitution = errors.New("economy: substitution weights must be finite, >= 0, with positive row sums")

	// ErrInvalidElasticity indicates q < 0 or NaN.
	ErrInvalidElasticity = errors.New("economy: CES elasticity q must be >= 0")

	// ErrInvalidReturns indicates b <= 0, NaN or +Inf.
	ErrInvalidReturns = errors.New("economy: returns to scale b must be finite and > 0")
)

// economyErrorf tags a sentinel with the operation that detected it.
func economyErrorf(method string, err error) error {
	return fmt.Errorf("Economy.%s: %w", method, err)
}
