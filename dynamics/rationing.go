// SPDX-License-Identifier: MIT
// Package: dynamics
//
// rationing.go - market-clearing policies for phase t.
//
// Every policy starts from the same per-market fraction
//
//	s_vs_d_j = clip(supply_j / demand_j, 0, 1)    (1 when demand_j = 0)
//
// rations labour sales by s_vs_d_0, and must leave
//
//	Real ≤ Demand element-wise,  Σ_i Real[i, j] ≤ supply_j,
//	cost(household purchases) ≤ budget.
//
// They differ only in who is served first on the goods markets.

package dynamics

import (
	"fmt"

	"github.com/katalvlaran/netecon/household"
	"github.com/katalvlaran/netecon/matrix"
)

// Policy names accepted by PolicyByName.
const (
	PolicyHouseholdPriority = "household-priority"
	PolicyProportional      = "proportional"
	PolicyFirmPriority      = "firm-priority"
)

// Market is the snapshot a RationingPolicy clears for one period.
type Market struct {
	Demand    *matrix.Dense        // posted demands, read-only
	Real      *matrix.Dense        // realised trades, written by the policy
	Supply    []float64            // per agent, labour first
	Total     []float64            // column sums of Demand
	SvsD      []float64            // per-agent satisfiable fraction
	Prices    []float64            // goods prices, wage-rescaled
	BudgetRes float64              // residual budget carried in
	House     *household.Household // applies the hard budget ceiling
}

// Clearing is what a policy reports besides the realised trades.
type Clearing struct {
	Budget    float64 // household budget: residual plus labour income
	BvsC      float64 // fraction of the offered basket the household bought
	BudgetRes float64 // residual budget carried forward
}

// RationingPolicy fills m.Real from m.Demand under supply and budget limits.
type RationingPolicy interface {
	Name() string
	Clear(m *Market) (Clearing, error)
}

// PolicyByName resolves a policy from its configuration name.
func PolicyByName(name string) (RationingPolicy, error) {
	switch name {
	case PolicyHouseholdPriority, "":
		return HouseholdPriority{}, nil
	case PolicyProportional:
		return Proportional{}, nil
	case PolicyFirmPriority:
		return FirmPriority{}, nil
	default:
		return nil, fmt.Errorf("PolicyByName(%q): %w", name, ErrUnknownPolicy)
	}
}

// satisfiable computes s_vs_d for every agent.
func satisfiable(supply, total []float64) []float64 {
	out := make([]float64, len(supply))
	for j := range out {
		if total[j] == 0 {
			out[j] = 1
			continue
		}
		out[j] = supply[j] / total[j]
	}

	return matrix.Clip(out, 0, 1)
}

// rationLabour fills column 0 of Real and returns the household's labour income.
func rationLabour(m *Market) float64 {
	var income float64
	n := m.Real.Rows() - 1
	m.Real.Row(0)[0] = 0
	for i := 1; i <= n; i++ {
		v := m.Demand.Row(i)[0] * m.SvsD[0]
		m.Real.Row(i)[0] = v
		income += v
	}

	return income
}

// buy applies the budget ceiling to offered and writes row 0 of Real.
func buy(m *Market, budget float64, offered []float64) (Clearing, error) {
	p, err := m.House.BudgetConstraint(budget, m.Prices, offered)
	if err != nil {
		return Clearing{}, err
	}
	copy(m.Real.Row(0)[1:], p.Consumption)

	return Clearing{Budget: budget, BvsC: p.Fraction, BudgetRes: p.Residual}, nil
}

// offeredAtSvsD is the household basket rationed market by market.
func offeredAtSvsD(m *Market) []float64 {
	d0 := m.Demand.Row(0)
	out := make([]float64, len(d0)-1)
	for j := range out {
		out[j] = d0[j+1] * m.SvsD[j+1]
	}

	return out
}

// scaleFirmGoods sets the firm rows of Real to Demand[1:, :]·diag(s_vs_d_0, factor):
// labour at the labour-market fraction, good j at factor[j-1].
func scaleFirmGoods(m *Market, factor []float64) error {
	n := m.Real.Rows() - 1
	firmRows, err := m.Demand.SubRows(1, n+1)
	if err != nil {
		return err
	}
	scaled, err := matrix.ScaleCols(firmRows, matrix.Concat(m.SvsD[0], factor))
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		copy(m.Real.Row(i+1), scaled.Row(i))
	}

	return nil
}

// HouseholdPriority serves the household first on every goods market; firms
// share what is left. This is the default policy.
//
// Stage 1: labour sales at s_vs_d_0; budget = residual + labour income.
// Stage 2: household buys Demand[0, j]·s_vs_d_j under the budget ceiling.
// Stage 3: firm orders on good j are scaled by
//
//	clip((supply_j − bought_j) / (demand_j − Demand[0, j]), 0, 1)
//
// (1 when firms post no order for good j).
type HouseholdPriority struct{}

// Name implements RationingPolicy.
func (HouseholdPriority) Name() string { return PolicyHouseholdPriority }

// Clear implements RationingPolicy.
func (HouseholdPriority) Clear(m *Market) (Clearing, error) {
	budget := m.BudgetRes + rationLabour(m)
	c, err := buy(m, budget, offeredAtSvsD(m))
	if err != nil {
		return Clearing{}, err
	}

	n := m.Real.Rows() - 1
	bought := m.Real.Row(0)
	d0 := m.Demand.Row(0)
	factor := make([]float64, n)
	for j := 1; j <= n; j++ {
		rest := m.Total[j] - d0[j]
		if rest == 0 {
			factor[j-1] = 1
			continue
		}
		factor[j-1] = (m.Supply[j] - bought[j]) / rest
	}
	if err := scaleFirmGoods(m, matrix.Clip(factor, 0, 1)); err != nil {
		return Clearing{}, err
	}

	return c, nil
}

// Proportional serves every buyer of good j the same fraction s_vs_d_j; the
// household's share is then subject to its budget ceiling.
type Proportional struct{}

// Name implements RationingPolicy.
func (Proportional) Name() string { return PolicyProportional }

// Clear implements RationingPolicy.
func (Proportional) Clear(m *Market) (Clearing, error) {
	budget := m.BudgetRes + rationLabour(m)
	c, err := buy(m, budget, offeredAtSvsD(m))
	if err != nil {
		return Clearing{}, err
	}
	if err := scaleFirmGoods(m, m.SvsD[1:]); err != nil {
		return Clearing{}, err
	}

	return c, nil
}

// FirmPriority fills inter-firm orders first (scaled by
// clip(supply_j / firm demand_j, 0, 1)); the household is offered what remains.
type FirmPriority struct{}

// Name implements RationingPolicy.
func (FirmPriority) Name() string { return PolicyFirmPriority }

// Clear implements RationingPolicy.
func (FirmPriority) Clear(m *Market) (Clearing, error) {
	budget := m.BudgetRes + rationLabour(m)

	n := m.Real.Rows() - 1
	d0 := m.Demand.Row(0)
	factor := make([]float64, n)
	for j := 1; j <= n; j++ {
		firmDemand := m.Total[j] - d0[j]
		if firmDemand == 0 {
			factor[j-1] = 1
			continue
		}
		factor[j-1] = m.Supply[j] / firmDemand
	}
	if err := scaleFirmGoods(m, matrix.Clip(factor, 0, 1)); err != nil {
		return Clearing{}, err
	}

	offered := make([]float64, n)
	for j := 1; j <= n; j++ {
		var used float64
		for i := 1; i <= n; i++ {
			used += m.Real.Row(i)[j]
		}
		left := max(m.Supply[j]-used, 0)
		offered[j-1] = min(d0[j], left)
	}

	return buy(m, budget, offered)
}
