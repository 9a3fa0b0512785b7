// SPDX-License-Identifier: MIT
// Package: dynamics
//
// phases.go - the three phases of one period.
//
//   - t-  (plan):   supply from production and stocks; targets from last
//     period's posted demand; firms post input demands.
//   - t   (market): total demand, s_vs_d, rationing by the configured
//     policy, realised accounts, new numeraire wage.
//   - t+  (settle): price update, wage-numeraire rescale, network prices,
//     production from realised inputs, stocks, household plan for t+1.
//
// Each phase ends with a finite-value check over the tensors it wrote.

package dynamics

import (
	"fmt"

	"github.com/katalvlaran/netecon/firms"
	"github.com/katalvlaran/netecon/matrix"
)

// named tags a vector or a matrix with the tensor name reported in a StepError.
type named struct {
	name string
	vec  []float64
	mat  *matrix.Dense
}

// checkFinite returns a *StepError for the first tensor holding NaN or ±Inf.
func (d *Dynamics) checkFinite(t int, phase Phase, tensors ...named) error {
	if !d.cfg.finiteChecks {
		return nil
	}
	for _, v := range tensors {
		if !matrix.FiniteVec(v.vec) || !matrix.AllFinite(v.mat) {
			return stepErrorf(t, phase, v.name, ErrNonFinite)
		}
	}

	return nil
}

// phasePlan is phase t-.
func (d *Dynamics) phasePlan(t int) error {
	eco := d.eco
	goods, err := eco.Firms.Output(d.Prods, d.Stocks.Row(t))
	if err != nil {
		return stepErrorf(t, PhasePlan, "supply", err)
	}
	d.Supply = matrix.Concat(d.Labour[t], goods)

	targets, err := eco.Firms.ComputeTargets(d.Prices.Row(t), d.QDemand[t-1], d.Supply, d.Prods)
	if err != nil {
		return stepErrorf(t, PhasePlan, "targets", err)
	}
	d.Targets = targets

	if err := d.postFirmDemands(t); err != nil {
		return stepErrorf(t, PhasePlan, "q_demand", err)
	}

	return d.checkFinite(t, PhasePlan,
		named{name: "supply", vec: d.Supply},
		named{name: "targets", vec: d.Targets},
		named{name: "q_demand", mat: d.QDemand[t]},
	)
}

// phaseMarket is phase t.
func (d *Dynamics) phaseMarket(t int) error {
	eco := d.eco
	demand, err := matrix.ColSums(d.QDemand[t])
	if err != nil {
		return stepErrorf(t, PhaseMarket, "demand", err)
	}
	d.Demand = demand
	d.SvsD = satisfiable(d.Supply, d.Demand)

	m := &Market{
		Demand:    d.QDemand[t],
		Real:      d.QReal[t],
		Supply:    d.Supply,
		Total:     d.Demand,
		SvsD:      d.SvsD,
		Prices:    d.Prices.Row(t),
		BudgetRes: d.BudgetRes,
		House:     eco.House,
	}
	c, err := d.cfg.policy.Clear(m)
	if err != nil {
		return stepErrorf(t, PhaseMarket, "q_real", err)
	}
	d.Budget[t] = c.Budget
	d.BvsC = c.BvsC
	d.BudgetRes = c.BudgetRes

	tradeReal, err := matrix.ColSums(d.QReal[t])
	if err != nil {
		return stepErrorf(t, PhaseMarket, "trade_real", err)
	}
	d.TradeReal = tradeReal

	acc, err := eco.Firms.ComputeProfitsBalance(d.Prices.Row(t), d.QReal[t], d.Supply, d.Demand)
	if err != nil {
		return stepErrorf(t, PhaseMarket, "profits", err)
	}
	d.Profits = acc.Profits
	d.Balance = acc.Balance
	d.Cashflow = acc.Cashflow
	d.Tradeflow = acc.Tradeflow

	d.Wages[t] = eco.Firms.UpdateWages(d.Balance[0], d.Tradeflow[0])

	return d.checkFinite(t, PhaseMarket,
		named{name: "demand", vec: d.Demand},
		named{name: "s_vs_d", vec: d.SvsD},
		named{name: "q_real", mat: d.QReal[t]},
		named{name: "budget", vec: d.Budget[t : t+1]},
		named{name: "profits", vec: d.Profits},
		named{name: "balance", vec: d.Balance},
		named{name: "wages", vec: d.Wages[t : t+1]},
	)
}

// rescaleByWage moves the monetary quantities carried into t+1 to the new
// numeraire: prices[t+1], budget[t] and the residual budget are divided by
// wages[t]. A negative residual is floored at zero first.
func (d *Dynamics) rescaleByWage(t int, newPrices []float64) {
	w := d.Wages[t]
	next := d.Prices.Row(t + 1)
	for i, p := range newPrices {
		next[i] = p / w
	}
	d.Budget[t] /= w
	d.BudgetRes = max(d.BudgetRes, 0) / w
}

// phaseSettle is phase t+.
func (d *Dynamics) phaseSettle(t int) error {
	eco := d.eco
	acc := firms.Accounts{Profits: d.Profits, Balance: d.Balance, Cashflow: d.Cashflow, Tradeflow: d.Tradeflow}
	newPrices, err := eco.Firms.UpdatePrices(d.Prices.Row(t), acc)
	if err != nil {
		return stepErrorf(t, PhaseSettle, "prices", err)
	}
	d.rescaleByWage(t, newPrices)
	next := d.Prices.Row(t + 1)

	pNet, err := eco.ComputePNet(next)
	if err != nil {
		return stepErrorf(t, PhaseSettle, "prices_net", err)
	}
	d.PricesNet = pNet

	inputs, err := d.QReal[t].SubRows(1, d.n+1)
	if err != nil {
		return stepErrorf(t, PhaseSettle, "prods", err)
	}
	prods, err := eco.ProductionFunction(inputs)
	if err != nil {
		return stepErrorf(t, PhaseSettle, "prods", err)
	}
	d.Prods = prods

	stocks, err := eco.Firms.UpdateStocks(d.Supply[1:], d.TradeReal[1:])
	if err != nil {
		return stepErrorf(t, PhaseSettle, "stocks", err)
	}
	if err := d.Stocks.SetRow(t+1, stocks); err != nil {
		return stepErrorf(t, PhaseSettle, "stocks", err)
	}

	if err := d.checkFinite(t, PhaseSettle,
		named{name: "prices", vec: next},
		named{name: "prices_net", vec: d.PricesNet},
		named{name: "prods", vec: d.Prods},
		named{name: "stocks", vec: stocks},
	); err != nil {
		return err
	}

	plan, err := eco.House.ComputeDemandConsLabourSupply(d.BudgetRes, next, d.Supply[1:], d.Demand[1:], d.cfg.tension)
	if err != nil {
		return stepErrorf(t, PhaseSettle, "mu", fmt.Errorf("household plan: %w", err))
	}
	d.Mu[t] = plan.Mu
	copy(d.QDemand[t+1].Row(0)[1:], plan.Consumption)
	d.Labour[t+1] = plan.Labour

	return d.checkFinite(t, PhaseSettle,
		named{name: "mu", vec: d.Mu[t : t+1]},
		named{name: "q_demand", vec: d.QDemand[t+1].Row(0)},
		named{name: "labour", vec: d.Labour[t+1 : t+2]},
	)
}
