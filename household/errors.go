// SPDX-License-Identifier: MIT
// Package household: sentinel error set.

package household

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLabour indicates a non-positive (or non-finite) reference labour scale.
	ErrInvalidLabour = errors.New("household: labour scale must be finite and > 0")

	// ErrInvalidTheta indicates an empty preference vector or a negative/non-finite weight.
	ErrInvalidTheta = errors.New("household: theta must be non-empty with finite weights >= 0")

	// ErrInvalidGamma indicates a non-positive labour aversion.
	ErrInvalidGamma = errors.New("household: gamma must be finite and > 0")

	// ErrInvalidPhi indicates a non-positive concavity parameter (NaN included).
	ErrInvalidPhi = errors.New("household: phi must be > 0")

	// ErrInvalidOmega indicates a negative or non-finite market-tension sensitivity.
	ErrInvalidOmega = errors.New("household: omega_p must be finite and >= 0")

	// ErrPhiNotImplemented is returned by the demand rule for phi outside {1, +Inf}.
	ErrPhiNotImplemented = errors.New("household: closed form only for phi = 1 or phi = +Inf")

	// ErrDomain indicates utility evaluated at non-positive consumption.
	ErrDomain = errors.New("household: utility undefined for non-positive consumption")

	// ErrDimensionMismatch indicates a vector whose length differs from len(theta).
	ErrDimensionMismatch = errors.New("household: dimension mismatch")
)

// householdErrorf tags a sentinel with the method that detected it.
func householdErrorf(method string, err error) error {
	return fmt.Errorf("Household.%s: %w", method, err)
}
