// SPDX-License-Identifier: MIT

// Package store persists finished simulation runs in SQLite.
//
// A DB keeps one row per run (identifier, label, horizon, sector count,
// policy, q, b) and the run's time series in long format
// (run, series, period, index, value). Saved series:
//
//	prices, stocks, profits, cashflow   n values per period
//	balance, tradeflow                  n+1 values per period, labour first
//	wages, mu, budget, labour           1 value per period
//	q_demand, q_real                    (n+1)² values per period, row-major
//
// A *DB may be attached to a dynamics.Dynamics with dynamics.WithStorage;
// Attached recovers it after the run.
package store
