// SPDX-License-Identifier: MIT
// Package dynamics: sentinel errors and the per-period failure report.

package dynamics

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHorizon indicates t_max < 2 (period 1 needs a period 2 to seed).
	ErrInvalidHorizon = errors.New("dynamics: horizon t_max must be >= 2")

	// ErrNilEconomy indicates a nil *economy.Economy.
	ErrNilEconomy = errors.New("dynamics: nil economy")

	// ErrInvalidEconomy indicates an economy with no sectors, a nil component,
	// or components whose sizes disagree with N.
	ErrInvalidEconomy = errors.New("dynamics: invalid economy")

	// ErrIncompleteInitialConditions indicates Run was called before all six
	// initial conditions (p0, w0, g0, t1, s0, B0) were set.
	ErrIncompleteInitialConditions = errors.New("dynamics: initial conditions incomplete")

	// ErrInvalidInitialConditions indicates a non-positive initial wage or a
	// non-finite initial value.
	ErrInvalidInitialConditions = errors.New("dynamics: invalid initial conditions")

	// ErrDimensionMismatch indicates a vector or economy whose size differs from the sector count.
	ErrDimensionMismatch = errors.New("dynamics: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf detected at a phase boundary.
	ErrNonFinite = errors.New("dynamics: non-finite value")

	// ErrNotRun indicates a post-run analysis requested before a successful Run
	// with the current initial conditions.
	ErrNotRun = errors.New("dynamics: no run with the current initial conditions")

	// ErrUnknownPolicy indicates PolicyByName received an unknown name.
	ErrUnknownPolicy = errors.New("dynamics: unknown rationing policy")
)

// Phase names one of the stages of a period.
type Phase string

const (
	// PhaseSeed is the special set-up of period 1 from the initial conditions.
	PhaseSeed Phase = "seed"
	// PhasePlan is phase t-: supply, targets and posted firm demands.
	PhasePlan Phase = "t-"
	// PhaseMarket is phase t: rationing, realised accounts and the wage.
	PhaseMarket Phase = "t"
	// PhaseSettle is phase t+: prices, numeraire shift, production, stocks, household plan.
	PhaseSettle Phase = "t+"
)

// StepError reports the period, phase and tensor where a run failed.
type StepError struct {
	Period int
	Phase  Phase
	Tensor string
	Err    error
}

// Error implements error.
func (e *StepError) Error() string {
	return fmt.Sprintf("dynamics: period %d phase %s tensor %s: %v", e.Period, e.Phase, e.Tensor, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *StepError) Unwrap() error { return e.Err }

// stepErrorf wraps err with the failing location.
func stepErrorf(period int, phase Phase, tensor string, err error) error {
	return &StepError{Period: period, Phase: phase, Tensor: tensor, Err: err}
}
