// SPDX-License-Identifier: MIT

// Package config loads simulation scenarios from YAML.
//
// A scenario names everything a run needs: the horizon, the input-output
// network, the production regime, the firm and household parameters, the
// initial conditions, the rationing policy and an optional SQLite store.
//
//	horizon: 200
//	network:  {topology: complete, sectors: 3, labour_share: 0.6}
//	production: {q: inf, b: 1}
//	firms: {z: [1], sigma: [0.1], alpha: 0.1, alpha_p: 0.1, beta: 0.1, beta_p: 0.1, w: 0.1}
//	household: {labour: 1, gamma: 1, phi: 1, omega_p: 0.2}
//	initial: {p0: [1], w0: 1, g0: [1], s0: [0.5], b0: 1}
//	rationing: {policy: household-priority}
//	store: {path: runs.db}
//
// Per-sector vectors accept a single entry, broadcast to every sector.
// Infinite parameters (q, phi) accept "inf" as well as YAML's .inf.
//
// Load applies defaults and validates; Scenario.Economy,
// Scenario.InitialConditions and Scenario.DynamicsOptions turn a loaded
// scenario into the objects of packages economy and dynamics.
package config
