// SPDX-License-Identifier: MIT
// Package: dynamics
//
// dynamics.go - the Dynamics engine: construction, lifecycle and the run loop.
//
// Lifecycle:
//   - New binds one Economy and one horizon; all tensors start at zero.
//   - Initial conditions are set through the Set* methods; each one marks
//     the instance as not yet run with the current conditions.
//   - Run clears every tensor, seeds period 1, runs phases t and t+ for
//     period 1 and t-, t, t+ for periods 2..t_max-1, then restores the
//     mutable per-period quantities (Prods, Targets, BudgetRes) to their
//     initial values.
//   - UpdateTMax reallocates for a new horizon and forgets the initial
//     conditions; UpdateEconomy swaps the economy and keeps the tensors.

package dynamics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netecon/economy"
	"github.com/katalvlaran/netecon/matrix"
)

const minHorizon = 2

// Dynamics owns the time-indexed state of one simulated economy.
//
// Stored monetary values are wage-numeraire normalised: a quantity X at
// period t is kept as X / Wages[t].
type Dynamics struct {
	eco  *economy.Economy
	tMax int
	n    int
	cfg  config

	// Time-indexed tensors, index t in [0, t_max].
	Prices  *matrix.Dense // goods prices per period, (t_max+1)×n
	Stocks  *matrix.Dense // inventory carried into each period, (t_max+1)×n
	QDemand Cube          // posted demands
	QReal   Cube          // realised trades
	Wages   []float64     // numeraire wage set at the end of each period
	Mu      []float64     // household demand intensity
	Budget  []float64     // household budget
	Labour  []float64     // labour offered

	// Per-period quantities, overwritten every step.
	PricesNet []float64 // network price index, n
	Prods     []float64 // current production, n
	Targets   []float64 // production targets, n
	Profits   []float64 // realised profits, n
	Cashflow  []float64 // realised gains + losses, n
	Balance   []float64 // supply − demand, n+1
	Tradeflow []float64 // supply + demand, n+1
	Supply    []float64 // labour then goods, n+1
	Demand    []float64 // column sums of the posted demands, n+1
	TradeReal []float64 // column sums of the realised trades, n+1
	SvsD      []float64 // satisfiable fraction per agent, n+1
	BvsC      float64   // fraction of the offered basket the household bought
	BudgetRes float64   // residual household budget carried forward

	ic               InitialConditions
	ranWithCurrentIC bool
}

// New returns a zero-initialised Dynamics for eco over periods 0..tMax.
//
// Errors: ErrNilEconomy, ErrInvalidHorizon.
func New(eco *economy.Economy, tMax int, opts ...Option) (*Dynamics, error) {
	if err := checkEconomy(eco); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if tMax < minHorizon {
		return nil, fmt.Errorf("New: t_max=%d: %w", tMax, ErrInvalidHorizon)
	}
	d := &Dynamics{eco: eco, tMax: tMax, n: eco.N, cfg: newConfig(opts...)}
	d.allocate()

	return d, nil
}

// checkEconomy rejects economies the engine cannot step: nil, empty,
// missing a component, or with component sizes other than N.
func checkEconomy(eco *economy.Economy) error {
	if eco == nil {
		return ErrNilEconomy
	}
	if eco.N < 1 || eco.Firms == nil || eco.House == nil || eco.Lambda == nil {
		return ErrInvalidEconomy
	}
	if eco.Firms.N() != eco.N || eco.House.N() != eco.N {
		return fmt.Errorf("firms=%d household=%d, want %d: %w",
			eco.Firms.N(), eco.House.N(), eco.N, ErrInvalidEconomy)
	}
	if r, c := eco.Lambda.Shape(); r != eco.N || c != eco.N+1 {
		return fmt.Errorf("lambda %dx%d, want %dx%d: %w", r, c, eco.N, eco.N+1, ErrInvalidEconomy)
	}

	return nil
}

// Economy returns the bound economy.
func (d *Dynamics) Economy() *economy.Economy { return d.eco }

// TMax returns the horizon.
func (d *Dynamics) TMax() int { return d.tMax }

// N returns the number of sectors.
func (d *Dynamics) N() int { return d.n }

// Storage returns the opaque handle given with WithStorage.
func (d *Dynamics) Storage() any { return d.cfg.storage }

// Policy returns the rationing policy in use.
func (d *Dynamics) Policy() RationingPolicy { return d.cfg.policy }

// RanWithCurrentIC reports whether the tensors hold a completed run for the
// current initial conditions.
func (d *Dynamics) RanWithCurrentIC() bool { return d.ranWithCurrentIC }

// UpdateTMax reallocates every tensor for a new horizon. The initial
// conditions are forgotten and must be supplied again; options (storage,
// logger, policy) are kept.
func (d *Dynamics) UpdateTMax(tMax int) error {
	if tMax < minHorizon {
		return fmt.Errorf("UpdateTMax: t_max=%d: %w", tMax, ErrInvalidHorizon)
	}
	d.tMax = tMax
	d.allocate()
	d.ic = InitialConditions{}
	d.ranWithCurrentIC = false

	return nil
}

// UpdateEconomy swaps the economy without touching the tensors. The new
// economy must have the same number of sectors.
func (d *Dynamics) UpdateEconomy(eco *economy.Economy) error {
	if err := checkEconomy(eco); err != nil {
		return fmt.Errorf("UpdateEconomy: %w", err)
	}
	if eco.N != d.n {
		return fmt.Errorf("UpdateEconomy: n=%d, want %d: %w", eco.N, d.n, ErrDimensionMismatch)
	}
	d.eco = eco
	d.ranWithCurrentIC = false

	return nil
}

// Run is RunContext with a background context.
func (d *Dynamics) Run() error {
	return d.RunContext(context.Background())
}

// RunContext simulates periods 1..t_max-1 from the current initial conditions.
// ctx is checked between periods.
//
// Errors:
//   - ErrIncompleteInitialConditions, ErrDimensionMismatch,
//     ErrInvalidInitialConditions before any tensor is touched.
//   - *StepError wrapping ErrNonFinite when finite checks are enabled.
//   - ctx.Err() when cancelled; tensors then hold a partial run.
func (d *Dynamics) RunContext(ctx context.Context) error {
	if err := d.ic.validate(d.n); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	log := d.cfg.logger.With("t_max", d.tMax, "n", d.n, "policy", d.cfg.policy.Name())
	log.Info("run started")

	d.ranWithCurrentIC = false
	d.ClearAll()
	if err := d.seed(); err != nil {
		return err
	}
	if err := d.phaseMarket(1); err != nil {
		return err
	}
	if err := d.phaseSettle(1); err != nil {
		return err
	}
	d.logPeriod(1)

	for t := 2; t < d.tMax; t++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Run: period %d: %w", t, err)
		}
		if err := d.phasePlan(t); err != nil {
			return err
		}
		if err := d.phaseMarket(t); err != nil {
			return err
		}
		if err := d.phaseSettle(t); err != nil {
			return err
		}
		d.logPeriod(t)
	}

	d.ranWithCurrentIC = true
	w0 := *d.ic.W0
	d.Prods = matrix.CopyVec(d.ic.G0)
	d.Targets = matrix.CopyVec(d.ic.T1)
	d.BudgetRes = *d.ic.B0 / w0

	log.Info("run finished", "final_wage", d.Wages[d.tMax-1])

	return nil
}

// seed sets up period 1 from the initial conditions.
func (d *Dynamics) seed() error {
	eco := d.eco
	w0 := *d.ic.W0

	d.Wages[0] = w0
	d.BudgetRes = *d.ic.B0 / w0
	d.Prods = matrix.CopyVec(d.ic.G0)
	if err := d.Stocks.SetRow(1, d.ic.S0); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	p1 := d.Prices.Row(1)
	for i, p := range d.ic.P0 {
		p1[i] = p / w0
	}

	pNet, err := eco.ComputePNet(p1)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	d.PricesNet = pNet

	// Household plan without a tension signal: no market has traded yet.
	plan, err := eco.House.ComputeDemandConsLabourSupply(d.BudgetRes, p1, nil, nil, d.cfg.tension)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	d.Mu[0] = plan.Mu
	copy(d.QDemand[1].Row(0)[1:], plan.Consumption)
	d.Labour[1] = plan.Labour

	goods, err := eco.Firms.Output(d.ic.G0, d.ic.S0)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	d.Supply = matrix.Concat(d.Labour[1], goods)

	d.Targets = matrix.CopyVec(d.ic.T1)
	if err := d.postFirmDemands(1); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return d.checkFinite(1, PhaseSeed,
		named{name: "prices", vec: p1},
		named{name: "prices_net", vec: d.PricesNet},
		named{name: "mu", vec: d.Mu[0:1]},
		named{name: "labour", vec: d.Labour[1:2]},
		named{name: "supply", vec: d.Supply},
		named{name: "q_demand", mat: d.QDemand[1]},
	)
}

// postFirmDemands writes the sectors' input demands for Targets into rows
// 1..n of QDemand[t].
func (d *Dynamics) postFirmDemands(t int) error {
	eco := d.eco
	dem, err := eco.Firms.ComputeDemands(d.Targets, d.Prices.Row(t), d.PricesNet, eco.Q, eco.B, eco.Lambda)
	if err != nil {
		return err
	}
	q := d.QDemand[t]
	for i := 0; i < d.n; i++ {
		copy(q.Row(i+1), dem.Row(i))
	}

	return nil
}

// logPeriod emits a debug summary of period t.
func (d *Dynamics) logPeriod(t int) {
	if !d.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	d.cfg.logger.Debug("period",
		"period", t,
		"wage", d.Wages[t],
		"budget", d.Budget[t],
		"labour", d.Labour[t],
		"mean_price", matrix.Sum(d.Prices.Row(t+1))/float64(d.n),
		"bvsc", d.BvsC,
	)
}
