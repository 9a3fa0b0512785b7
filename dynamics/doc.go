// SPDX-License-Identifier: MIT

// Package dynamics runs the discrete-time evolution of a network economy.
//
// A Dynamics binds one *economy.Economy and a horizon t_max and owns every
// time-indexed tensor of the run:
//
//	Prices, Stocks           (t_max+1)×n
//	QDemand, QReal           (t_max+1)×(n+1)×(n+1)   row/col 0 = household/labour
//	Wages, Mu, Budget, Labour t_max+1
//
// Each period runs three phases in order:
//
//	t-  firms forecast, set production targets and post input demands
//	t   markets clear under a RationingPolicy; accounts and the wage follow
//	t+  prices update, every carried monetary quantity is divided by the
//	    new wage, production and stocks roll forward, the household plans
//
// Period 1 is seeded from the initial conditions and skips t-.
//
// Usage:
//
//	d, err := dynamics.New(eco, 100, dynamics.WithLogger(logger))
//	d.SetInitialConditions(p0, 1, g0, t1, s0, 1)
//	err = d.Run()
//
// Run fails fast with ErrIncompleteInitialConditions when any initial value
// is missing and, unless WithFiniteChecks(false), returns a *StepError naming
// the period, phase and tensor of the first NaN or ±Inf.
//
// A Dynamics is not safe for concurrent use.
package dynamics
