// SPDX-License-Identifier: MIT
// Package: firms
//
// accounts.go - forecast and realised accounting of the sectors.
//
// Both flavours share one formula family over an (n+1)×(n+1) trade matrix Q
// (row 0 = household, rows 1..n = firms; column 0 = labour):
//
//	gain_i   = p_i · Σ_k Q[k, i+1]          revenue of sector i
//	losses_i = Σ_j Q[i+1, j] · p̃_j          input bill, p̃ = [1, p]
//	profits  = gain − losses,  cashflow = gain + losses
//	balance  = supply − demand, tradeflow = supply + demand   (n+1 agents)

package firms

import (
	"github.com/katalvlaran/netecon/matrix"
)

// Accounts groups the four quantities of the accounting step.
// Profits and Cashflow have one entry per sector; Balance and Tradeflow have
// one entry per agent, labour first.
type Accounts struct {
	Profits   []float64
	Balance   []float64
	Cashflow  []float64
	Tradeflow []float64
}

func (a Accounts) validate(n int) error {
	if len(a.Profits) != n || len(a.Cashflow) != n || len(a.Balance) != n+1 || len(a.Tradeflow) != n+1 {
		return ErrDimensionMismatch
	}

	return nil
}

// gainLosses evaluates revenue and input bill of every sector on q.
func (f *Firms) gainLosses(method string, prices []float64, q *matrix.Dense) (gain, losses []float64, err error) {
	n := len(f.z)
	if len(prices) != n {
		return nil, nil, firmsErrorf(method, ErrDimensionMismatch)
	}
	if err = matrix.ValidateShape(q, n+1, n+1); err != nil {
		return nil, nil, firmsErrorf(method, ErrDimensionMismatch)
	}

	sold, _ := matrix.ColSums(q) // shape validated above
	firmRows, _ := q.SubRows(1, n+1)
	losses, err = matrix.MatVec(firmRows, matrix.Concat(1, prices))
	if err != nil {
		return nil, nil, firmsErrorf(method, err)
	}
	gain = make([]float64, n)
	for i := 0; i < n; i++ {
		gain[i] = prices[i] * sold[i+1]
	}

	return gain, losses, nil
}

func assemble(gain, losses, supply, demand []float64) Accounts {
	acc := Accounts{
		Profits:   make([]float64, len(gain)),
		Cashflow:  make([]float64, len(gain)),
		Balance:   make([]float64, len(supply)),
		Tradeflow: make([]float64, len(supply)),
	}
	for i := range gain {
		acc.Profits[i] = gain[i] - losses[i]
		acc.Cashflow[i] = gain[i] + losses[i]
	}
	for i := range supply {
		acc.Balance[i] = supply[i] - demand[i]
		acc.Tradeflow[i] = supply[i] + demand[i]
	}

	return acc
}

// ComputeForecasts returns the accounts a sector expects if next period's
// trades repeat qDemandPrev. Expected demand is the column sum of qDemandPrev.
//
// Errors: ErrDimensionMismatch for inconsistent shapes.
func (f *Firms) ComputeForecasts(prices []float64, qDemandPrev *matrix.Dense, supply []float64) (Accounts, error) {
	gain, losses, err := f.gainLosses(methodForecasts, prices, qDemandPrev)
	if err != nil {
		return Accounts{}, err
	}
	if len(supply) != len(f.z)+1 {
		return Accounts{}, firmsErrorf(methodForecasts, ErrDimensionMismatch)
	}
	demand, _ := matrix.ColSums(qDemandPrev)

	return assemble(gain, losses, supply, demand), nil
}

// ComputeProfitsBalance is the ex-post accounting on the realised trades q.
// supply and demand are the per-agent totals of the current market.
//
// Errors: ErrDimensionMismatch for inconsistent shapes.
func (f *Firms) ComputeProfitsBalance(prices []float64, q *matrix.Dense, supply, demand []float64) (Accounts, error) {
	gain, losses, err := f.gainLosses(methodProfitsBalance, prices, q)
	if err != nil {
		return Accounts{}, err
	}
	n := len(f.z)
	if len(supply) != n+1 || len(demand) != n+1 {
		return Accounts{}, firmsErrorf(methodProfitsBalance, ErrDimensionMismatch)
	}

	return assemble(gain, losses, supply, demand), nil
}

// ComputeTargets returns the next production targets
//
//	t_i = prods_i (1 + β π̂_i/ĉ_i − β_p bâl_{i+1}/tf̂_{i+1})
//
// from the forecast accounts: a positive expected margin or an expected
// excess demand (negative balance) raises the target.
func (f *Firms) ComputeTargets(prices []float64, qDemandPrev *matrix.Dense, supply, prods []float64) ([]float64, error) {
	n := len(f.z)
	if len(prods) != n {
		return nil, firmsErrorf(methodTargets, ErrDimensionMismatch)
	}
	acc, err := f.ComputeForecasts(prices, qDemandPrev, supply)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = prods[i] * (1 +
			f.beta*acc.Profits[i]/acc.Cashflow[i] -
			f.betaP*acc.Balance[i+1]/acc.Tradeflow[i+1])
	}

	return out, nil
}
