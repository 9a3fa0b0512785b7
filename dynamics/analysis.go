// SPDX-License-Identifier: MIT
// Package: dynamics
//
// analysis.go - post-run series recomputed from the stored tensors.
//
// Run keeps only the latest per-period vectors (Prods, Supply, Profits, ...);
// the helpers below rebuild their history from QReal, QDemand, Prices, Stocks
// and Labour. All of
// them require a completed run with the current initial conditions and are
// indexed by period like the other tensors (rows or entries 1..t_max-1 are
// meaningful, the rest stay zero).

package dynamics

import (
	"fmt"

	"github.com/katalvlaran/netecon/matrix"
)

// Utilities returns the household utility of every period, evaluated on the
// realised consumption QReal[t][0, 1:] and the realised hours QReal[t][1:, 0].
//
// Errors: ErrNotRun; household.ErrDomain (wrapped with the period) when a
// period's realised consumption of some good is zero.
func (d *Dynamics) Utilities() ([]float64, error) {
	if !d.ranWithCurrentIC {
		return nil, fmt.Errorf("Utilities: %w", ErrNotRun)
	}
	out := make([]float64, d.tMax+1)
	for t := 1; t < d.tMax; t++ {
		q := d.QReal[t]
		hours := q.Col(0)[1:]
		u, err := d.eco.House.Utility(q.Row(0)[1:], hours)
		if err != nil {
			return nil, fmt.Errorf("Utilities: period %d: %w", t, err)
		}
		out[t] = u
	}

	return out, nil
}

// ProductionSeries returns a (t_max+1)×n matrix whose row t is the
// production available at period t: row 1 is g0 and row t+1 is the
// production function applied to the realised inputs of period t.
//
// Errors: ErrNotRun.
func (d *Dynamics) ProductionSeries() (*matrix.Dense, error) {
	if !d.ranWithCurrentIC {
		return nil, fmt.Errorf("ProductionSeries: %w", ErrNotRun)
	}
	out, _ := matrix.NewDense(d.tMax+1, d.n)
	if err := out.SetRow(1, d.ic.G0); err != nil {
		return nil, fmt.Errorf("ProductionSeries: %w", err)
	}
	for t := 1; t < d.tMax; t++ {
		inputs, err := d.QReal[t].SubRows(1, d.n+1)
		if err != nil {
			return nil, fmt.Errorf("ProductionSeries: %w", err)
		}
		prods, err := d.eco.ProductionFunction(inputs)
		if err != nil {
			return nil, fmt.Errorf("ProductionSeries: period %d: %w", t, err)
		}
		if err := out.SetRow(t+1, prods); err != nil {
			return nil, fmt.Errorf("ProductionSeries: %w", err)
		}
	}

	return out, nil
}

// SupplySeries returns a (t_max+1)×(n+1) matrix whose row t is the supply
// offered at period t: labour first, then z ⊙ prods[t] + stocks[t].
//
// Errors: ErrNotRun.
func (d *Dynamics) SupplySeries() (*matrix.Dense, error) {
	prods, err := d.ProductionSeries()
	if err != nil {
		return nil, fmt.Errorf("SupplySeries: %w", err)
	}
	out, _ := matrix.NewDense(d.tMax+1, d.n+1)
	for t := 1; t < d.tMax; t++ {
		goods, err := d.eco.Firms.Output(prods.Row(t), d.Stocks.Row(t))
		if err != nil {
			return nil, fmt.Errorf("SupplySeries: period %d: %w", t, err)
		}
		if err := out.SetRow(t, matrix.Concat(d.Labour[t], goods)); err != nil {
			return nil, fmt.Errorf("SupplySeries: %w", err)
		}
	}

	return out, nil
}

// AccountsHistory holds the realised accounts of every period, one row per
// period. Profits and Cashflow are (t_max+1)×n; Balance and Tradeflow are
// (t_max+1)×(n+1), labour first.
type AccountsHistory struct {
	Profits   *matrix.Dense
	Cashflow  *matrix.Dense
	Balance   *matrix.Dense
	Tradeflow *matrix.Dense
}

// AccountsSeries replays the accounting step of every period on the stored
// trades: row t is firms.ComputeProfitsBalance on prices[t], QReal[t], the
// supply of SupplySeries and the column sums of QDemand[t]. Row t_max-1
// equals the live Profits, Cashflow, Balance and Tradeflow.
//
// Errors: ErrNotRun.
func (d *Dynamics) AccountsSeries() (AccountsHistory, error) {
	supply, err := d.SupplySeries()
	if err != nil {
		return AccountsHistory{}, fmt.Errorf("AccountsSeries: %w", err)
	}
	h := AccountsHistory{}
	h.Profits, _ = matrix.NewDense(d.tMax+1, d.n)
	h.Cashflow, _ = matrix.NewDense(d.tMax+1, d.n)
	h.Balance, _ = matrix.NewDense(d.tMax+1, d.n+1)
	h.Tradeflow, _ = matrix.NewDense(d.tMax+1, d.n+1)

	for t := 1; t < d.tMax; t++ {
		demand, err := matrix.ColSums(d.QDemand[t])
		if err != nil {
			return AccountsHistory{}, fmt.Errorf("AccountsSeries: %w", err)
		}
		acc, err := d.eco.Firms.ComputeProfitsBalance(d.Prices.Row(t), d.QReal[t], supply.Row(t), demand)
		if err != nil {
			return AccountsHistory{}, fmt.Errorf("AccountsSeries: period %d: %w", t, err)
		}
		copy(h.Profits.Row(t), acc.Profits)
		copy(h.Cashflow.Row(t), acc.Cashflow)
		copy(h.Balance.Row(t), acc.Balance)
		copy(h.Tradeflow.Row(t), acc.Tradeflow)
	}

	return h, nil
}
