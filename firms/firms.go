// SPDX-License-Identifier: MIT
// Package: firms
//
// firms.go - structural parameters of the production sectors and the
// feedback rules that act on them (prices, wage, stocks).
//
// Every operation is a pure function of its arguments and the fixed
// parameters; no method mutates the receiver.

package firms

import (
	"math"

	"github.com/katalvlaran/netecon/matrix"
)

const (
	methodNew            = "New"
	methodForecasts      = "ComputeForecasts"
	methodTargets        = "ComputeTargets"
	methodDemands        = "ComputeDemands"
	methodProfitsBalance = "ComputeProfitsBalance"
	methodUpdatePrices   = "UpdatePrices"
	methodUpdateStocks   = "UpdateStocks"
)

// Firms holds the per-sector productivity and depreciation together with
// the scalar adjustment speeds shared by every sector.
type Firms struct {
	z      []float64 // productivity per sector, >= 0
	sigma  []float64 // stock depreciation per sector, in [0,1]
	alpha  float64   // price reaction to balance
	alphaP float64   // price reaction to profit
	beta   float64   // target reaction to profit
	betaP  float64   // target reaction to balance
	w      float64   // wage reaction to labour balance
}

// New validates the parameters and returns Firms for len(z) sectors.
// z and sigma are copied.
//
// Errors:
//   - ErrDimensionMismatch if len(z) != len(sigma) or len(z) == 0.
//   - ErrNegativeProductivity, ErrDepreciationRange, ErrNegativeTimescale.
func New(z, sigma []float64, alpha, alphaP, beta, betaP, w float64) (*Firms, error) {
	if len(z) == 0 || len(z) != len(sigma) {
		return nil, firmsErrorf(methodNew, ErrDimensionMismatch)
	}
	for _, v := range z {
		if !(v >= 0) {
			return nil, firmsErrorf(methodNew, ErrNegativeProductivity)
		}
	}
	for _, s := range sigma {
		if !(s >= 0 && s <= 1) {
			return nil, firmsErrorf(methodNew, ErrDepreciationRange)
		}
	}
	for _, rate := range [...]float64{alpha, alphaP, beta, betaP} {
		if !(rate >= 0) {
			return nil, firmsErrorf(methodNew, ErrNegativeTimescale)
		}
	}

	return &Firms{
		z:      matrix.CopyVec(z),
		sigma:  matrix.CopyVec(sigma),
		alpha:  alpha,
		alphaP: alphaP,
		beta:   beta,
		betaP:  betaP,
		w:      w,
	}, nil
}

// N returns the number of sectors.
func (f *Firms) N() int { return len(f.z) }

// Z returns a copy of the productivity vector.
func (f *Firms) Z() []float64 { return matrix.CopyVec(f.z) }

// Sigma returns a copy of the depreciation vector.
func (f *Firms) Sigma() []float64 { return matrix.CopyVec(f.sigma) }

// Alpha returns the price reaction to the goods balance.
func (f *Firms) Alpha() float64 { return f.alpha }

// AlphaP returns the price reaction to the profit margin.
func (f *Firms) AlphaP() float64 { return f.alphaP }

// Beta returns the target reaction to the profit margin.
func (f *Firms) Beta() float64 { return f.beta }

// BetaP returns the target reaction to the goods balance.
func (f *Firms) BetaP() float64 { return f.betaP }

// W returns the wage reaction to the labour balance.
func (f *Firms) W() float64 { return f.w }

// Output returns the goods available for sale: z ⊙ prods + stocks.
func (f *Firms) Output(prods, stocks []float64) ([]float64, error) {
	n := len(f.z)
	if len(prods) != n || len(stocks) != n {
		return nil, firmsErrorf("Output", ErrDimensionMismatch)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f.z[i]*prods[i] + stocks[i]
	}

	return out, nil
}

// UpdatePrices applies the multiplicative price rule
//
//	p'_i = p_i (1 − α_p π_i/c_i − α bal_{i+1}/tf_{i+1})
//
// where π, c are per-sector profit and cashflow and bal, tf are indexed over
// agents (index 0 is labour). A positive margin or an excess supply lowers
// the price; an excess demand (negative balance) raises it.
func (f *Firms) UpdatePrices(prices []float64, acc Accounts) ([]float64, error) {
	n := len(f.z)
	if len(prices) != n || acc.validate(n) != nil {
		return nil, firmsErrorf(methodUpdatePrices, ErrDimensionMismatch)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = prices[i] * (1 -
			f.alphaP*acc.Profits[i]/acc.Cashflow[i] -
			f.alpha*acc.Balance[i+1]/acc.Tradeflow[i+1])
	}

	return out, nil
}

// UpdateWages returns the next numeraire wage 1 − w·balance/total for the
// labour market.
func (f *Firms) UpdateWages(labourBalance, totalLabour float64) float64 {
	return 1 - f.w*labourBalance/totalLabour
}

// UpdateStocks returns (1 − σ) ⊙ max(supply − sales, 0) over the goods markets.
// The result is never negative.
func (f *Firms) UpdateStocks(supply, sales []float64) ([]float64, error) {
	n := len(f.z)
	if len(supply) != n || len(sales) != n {
		return nil, firmsErrorf(methodUpdateStocks, ErrDimensionMismatch)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = (1 - f.sigma[i]) * math.Max(supply[i]-sales[i], 0)
	}

	return out, nil
}
