// SPDX-License-Identifier: MIT
// Package: household
//
// demand.go - consumption demand, labour supply and the hard budget ceiling.

package household

import (
	"math"

	"github.com/katalvlaran/netecon/matrix"
)

// Demand is the household's plan for the next period.
type Demand struct {
	Mu          float64   // demand intensity (Lagrange multiplier of the budget)
	Consumption []float64 // desired quantity of each good
	Labour      float64   // labour offered
}

// Purchase is the outcome of the hard budget ceiling.
type Purchase struct {
	Fraction    float64   // share of the offered basket actually bought, in [0,1]
	Consumption []float64 // realised quantities
	Residual    float64   // unspent budget carried forward, >= 0
}

// ComputeDemandConsLabourSupply returns μ, the consumption demand θ'/(μ p) and
// the labour supply μ^{1/φ}/v_φ for the given budget and prices.
//
// Preferences are first tilted by the goods-market tension:
//
//	θ'_i = θ_i · exp(−ω_p · sensitivity · (s_i − d_i)/(s_i + d_i))
//
// supply and demand may both be nil (no tension signal); a market with
// s_i + d_i = 0 is left untilted.
//
// μ solves the budget in closed form:
//   - φ = 1:    μ = ½(√((B v)² + 4 v Σθ') − B v)
//   - φ = +Inf: μ = Σθ' / (l + B)
//
// Errors:
//   - ErrPhiNotImplemented for any other φ.
//   - ErrDimensionMismatch if prices (or non-nil supply/demand) differ from N().
func (h *Household) ComputeDemandConsLabourSupply(budget float64, prices, supply, demand []float64, sensitivity float64) (Demand, error) {
	n := len(h.theta)
	if len(prices) != n {
		return Demand{}, householdErrorf(methodDemand, ErrDimensionMismatch)
	}
	if (supply == nil) != (demand == nil) || (supply != nil && (len(supply) != n || len(demand) != n)) {
		return Demand{}, householdErrorf(methodDemand, ErrDimensionMismatch)
	}
	if h.phi != supportedPhiUnit && !math.IsInf(h.phi, 1) {
		return Demand{}, householdErrorf(methodDemand, ErrPhiNotImplemented)
	}

	// Stage 1: tension-tilted preferences.
	theta := matrix.CopyVec(h.theta)
	if supply != nil && h.omegaP != 0 && sensitivity != 0 {
		for i := range theta {
			flow := supply[i] + demand[i]
			if flow == 0 {
				continue
			}
			theta[i] *= math.Exp(-h.omegaP * sensitivity * (supply[i] - demand[i]) / flow)
		}
	}
	thetaSum := matrix.Sum(theta)

	// Stage 2: closed-form multiplier.
	var mu, labour float64
	if math.IsInf(h.phi, 1) {
		mu = thetaSum / (h.labour + budget)
		labour = h.labour
	} else {
		v := h.VPhi()
		bv := budget * v
		mu = 0.5 * (math.Sqrt(bv*bv+4*v*thetaSum) - bv)
		labour = mu / v
	}

	// Stage 3: demand per good.
	cons := make([]float64, n)
	for i := range cons {
		cons[i] = theta[i] / (mu * prices[i])
	}

	return Demand{Mu: mu, Consumption: cons, Labour: labour}, nil
}

// BudgetConstraint buys the offered basket when affordable; otherwise scales it
// down uniformly so that its cost at prices does not exceed budget.
//
// Guarantees: 0 ≤ Fraction ≤ 1, Residual ≥ 0 and, for budget ≥ 0,
// Σ p_i · Consumption_i ≤ budget exactly in floating point. A negative budget
// buys nothing.
//
// Errors: ErrDimensionMismatch if prices and offered differ from N().
func (h *Household) BudgetConstraint(budget float64, prices, offered []float64) (Purchase, error) {
	n := len(h.theta)
	if len(prices) != n || len(offered) != n {
		return Purchase{}, householdErrorf(methodBudget, ErrDimensionMismatch)
	}

	cost := matrix.Dot(prices, offered)
	if cost <= budget {
		return Purchase{Fraction: 1, Consumption: matrix.CopyVec(offered), Residual: budget - cost}, nil
	}

	// Over budget: proportional scaling, then walk the fraction down one ulp at
	// a time until rounding can no longer push the cost above the budget.
	frac := math.Max(budget, 0) / cost
	if !(frac >= 0) {
		frac = 0 // NaN cost
	}
	cons := make([]float64, n)
	for {
		for i := range cons {
			cons[i] = offered[i] * frac
		}
		if frac <= 0 || matrix.Dot(prices, cons) <= budget {
			break
		}
		frac = math.Nextafter(frac, 0)
	}

	return Purchase{Fraction: frac, Consumption: cons, Residual: 0}, nil
}
