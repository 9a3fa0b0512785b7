// SPDX-License-Identifier: MIT
// Package: dynamics
//
// tensors.go - allocation and reset of the time-indexed state.
//
// Shapes are fixed by (t_max, n) for the lifetime of the allocation:
//   - Prices, Stocks:   (t_max+1)×n          *matrix.Dense, row t = period t
//   - QDemand, QReal:   (t_max+1)×(n+1)×(n+1) Cube
//   - Wages, Mu, Budget, Labour: t_max+1
//
// Only UpdateTMax reallocates; ClearAll zeroes in place.

package dynamics

import (
	"github.com/katalvlaran/netecon/matrix"
)

// Cube is a stack of (n+1)×(n+1) trade matrices indexed by period.
// Row/column 0 is the household/labour market, 1..n the sectors.
type Cube []*matrix.Dense

func newCube(periods, dim int) Cube {
	c := make(Cube, periods)
	for t := range c {
		c[t], _ = matrix.NewDense(dim, dim) // dim >= 2
	}

	return c
}

// Zero resets every period in place.
func (c Cube) Zero() {
	for _, m := range c {
		m.Zero()
	}
}

// allocate sizes every tensor for the current (tMax, n).
func (d *Dynamics) allocate() {
	periods := d.tMax + 1
	d.Prices, _ = matrix.NewDense(periods, d.n)
	d.Stocks, _ = matrix.NewDense(periods, d.n)
	d.QDemand = newCube(periods, d.n+1)
	d.QReal = newCube(periods, d.n+1)
	d.Wages = make([]float64, periods)
	d.Mu = make([]float64, periods)
	d.Budget = make([]float64, periods)
	d.Labour = make([]float64, periods)

	d.PricesNet = make([]float64, d.n)
	d.Prods = make([]float64, d.n)
	d.Targets = make([]float64, d.n)
	d.Profits = make([]float64, d.n)
	d.Cashflow = make([]float64, d.n)
	d.Balance = make([]float64, d.n+1)
	d.Tradeflow = make([]float64, d.n+1)
	d.Supply = make([]float64, d.n+1)
	d.Demand = make([]float64, d.n+1)
	d.TradeReal = make([]float64, d.n+1)
	d.SvsD = make([]float64, d.n+1)
	d.BvsC = 0
	d.BudgetRes = 0
}

// ClearAll zeroes every tensor and per-period quantity without reallocating.
// Initial conditions and the run flag are left untouched.
func (d *Dynamics) ClearAll() {
	d.Prices.Zero()
	d.Stocks.Zero()
	d.QDemand.Zero()
	d.QReal.Zero()
	for _, v := range [][]float64{
		d.Wages, d.Mu, d.Budget, d.Labour,
		d.PricesNet, d.Prods, d.Targets, d.Profits, d.Cashflow,
		d.Balance, d.Tradeflow, d.Supply, d.Demand, d.TradeReal, d.SvsD,
	} {
		clear(v)
	}
	d.BvsC = 0
	d.BudgetRes = 0
}
