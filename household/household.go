// SPDX-License-Identifier: MIT
// Package: household
//
// household.go - the representative household: parameters, derived
// quantities and the log-utility.
//
// Parameters:
//   - labour  l > 0      reference labour level (the supply when phi = +Inf)
//   - theta   θ_i ≥ 0    preference weight of good i, θ̄ = Σθ
//   - gamma   γ > 0      labour aversion
//   - phi     φ > 0      labour-supply concavity; +Inf is allowed
//   - omegaP  ω_p ≥ 0    market-tension sensitivity of the preferences
//
// Derived quantities are functions of (l, θ, γ, φ) and are evaluated on read,
// so no setter can leave them stale:
//   - v_φ  = γ^{1/φ} / l^{1+1/φ}        (1/l when φ = +Inf)
//   - κ_i  = θ_i / (θ̄ v_φ)^{φ/(1+φ)}   (exponent 1 when φ = +Inf)

package household

import (
	"math"

	"github.com/katalvlaran/netecon/matrix"
)

const (
	methodNew        = "New"
	methodSetLabour  = "SetLabour"
	methodSetTheta   = "SetTheta"
	methodSetGamma   = "SetGamma"
	methodSetPhi     = "SetPhi"
	methodSetOmegaP  = "SetOmegaP"
	methodUtility    = "Utility"
	methodDemand     = "ComputeDemandConsLabourSupply"
	methodBudget     = "BudgetConstraint"
	supportedPhiUnit = 1.0
)

// Household holds the slowly varying household parameters.
// The zero value is not usable; construct with New.
type Household struct {
	labour float64   // l
	theta  []float64 // θ, owned copy
	gamma  float64   // γ
	phi    float64   // φ
	omegaP float64   // ω_p
}

// New validates the parameters and returns a Household.
// theta is copied; later mutation of the caller's slice has no effect.
//
// Errors: ErrInvalidLabour, ErrInvalidTheta, ErrInvalidGamma, ErrInvalidPhi, ErrInvalidOmega.
func New(labour float64, theta []float64, gamma, phi, omegaP float64) (*Household, error) {
	h := &Household{}
	if err := h.SetLabour(labour); err != nil {
		return nil, householdErrorf(methodNew, err)
	}
	if err := h.SetTheta(theta); err != nil {
		return nil, householdErrorf(methodNew, err)
	}
	if err := h.SetGamma(gamma); err != nil {
		return nil, householdErrorf(methodNew, err)
	}
	if err := h.SetPhi(phi); err != nil {
		return nil, householdErrorf(methodNew, err)
	}
	if err := h.SetOmegaP(omegaP); err != nil {
		return nil, householdErrorf(methodNew, err)
	}

	return h, nil
}

// SetLabour replaces the reference labour level.
func (h *Household) SetLabour(labour float64) error {
	if !(labour > 0) || math.IsInf(labour, 0) {
		return householdErrorf(methodSetLabour, ErrInvalidLabour)
	}
	h.labour = labour

	return nil
}

// SetTheta replaces the preference vector (copied).
func (h *Household) SetTheta(theta []float64) error {
	if len(theta) == 0 {
		return householdErrorf(methodSetTheta, ErrInvalidTheta)
	}
	for _, v := range theta {
		if !(v >= 0) || math.IsInf(v, 0) {
			return householdErrorf(methodSetTheta, ErrInvalidTheta)
		}
	}
	h.theta = matrix.CopyVec(theta)

	return nil
}

// SetGamma replaces the labour aversion.
func (h *Household) SetGamma(gamma float64) error {
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return householdErrorf(methodSetGamma, ErrInvalidGamma)
	}
	h.gamma = gamma

	return nil
}

// SetPhi replaces the concavity parameter. Any φ > 0 is stored; only the
// demand rule restricts φ to {1, +Inf}.
func (h *Household) SetPhi(phi float64) error {
	if !(phi > 0) {
		return householdErrorf(methodSetPhi, ErrInvalidPhi)
	}
	h.phi = phi

	return nil
}

// SetOmegaP replaces the market-tension sensitivity.
func (h *Household) SetOmegaP(omegaP float64) error {
	if !(omegaP >= 0) || math.IsInf(omegaP, 0) {
		return householdErrorf(methodSetOmegaP, ErrInvalidOmega)
	}
	h.omegaP = omegaP

	return nil
}

// N returns the number of goods the household has preferences over.
func (h *Household) N() int { return len(h.theta) }

// Labour returns l.
func (h *Household) Labour() float64 { return h.labour }

// Theta returns a copy of θ.
func (h *Household) Theta() []float64 { return matrix.CopyVec(h.theta) }

// ThetaBar returns Σθ.
func (h *Household) ThetaBar() float64 { return matrix.Sum(h.theta) }

// Gamma returns γ.
func (h *Household) Gamma() float64 { return h.gamma }

// Phi returns φ.
func (h *Household) Phi() float64 { return h.phi }

// OmegaP returns ω_p.
func (h *Household) OmegaP() float64 { return h.omegaP }

// VPhi returns v_φ = γ^{1/φ} / l^{1+1/φ}.
func (h *Household) VPhi() float64 {
	if math.IsInf(h.phi, 1) {
		return 1 / h.labour
	}

	return math.Pow(h.gamma, 1/h.phi) / math.Pow(h.labour, 1+1/h.phi)
}

// Kappa returns κ_i = θ_i / (θ̄ v_φ)^{φ/(1+φ)}.
func (h *Household) Kappa() []float64 {
	exp := 1.0
	if !math.IsInf(h.phi, 1) {
		exp = h.phi / (1 + h.phi)
	}
	den := math.Pow(h.ThetaBar()*h.VPhi(), exp)
	out := make([]float64, len(h.theta))
	for i, th := range h.theta {
		out[i] = th / den
	}

	return out
}

// Utility returns Σ θ_i ln c_i − γ (Σh / l)^{1+φ} / (1+φ).
//
// For φ = +Inf the disutility degenerates to a hard cap: 0 while Σh ≤ l,
// +Inf beyond it, so the utility is −Inf for over-supplied labour.
//
// Errors:
//   - ErrDimensionMismatch if len(consumption) != N().
//   - ErrDomain if any c_i ≤ 0.
func (h *Household) Utility(consumption, workingHours []float64) (float64, error) {
	if len(consumption) != len(h.theta) {
		return 0, householdErrorf(methodUtility, ErrDimensionMismatch)
	}
	var u float64
	for i, c := range consumption {
		if !(c > 0) {
			return 0, householdErrorf(methodUtility, ErrDomain)
		}
		u += h.theta[i] * math.Log(c)
	}

	x := matrix.Sum(workingHours) / h.labour
	if math.IsInf(h.phi, 1) {
		if x > 1 {
			return math.Inf(-1), nil
		}

		return u, nil
	}

	return u - h.gamma*math.Pow(x, 1+h.phi)/(1+h.phi), nil
}
