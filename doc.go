// Package netecon simulates a discrete-time input-output network economy:
// n firms producing n goods from labour and each other's goods, and one
// representative household that works, consumes and saves.
//
// What is in the box?
//
//	• Household: CES-style consumption demand, labour supply and an exact
//	  budget constraint
//	• Firms: forecasts, production targets, CES input demands (Leontief,
//	  Cobb-Douglas and everything in between), price and wage adjustment,
//	  depreciating inventories
//	• Dynamics: three phases per period, two-stage market rationing under a
//	  pluggable policy, wage-numeraire rescaling, finite-value checks
//	• Networks: complete, cycle, star and seeded random input-output
//	  topologies, smooth productivity profiles
//	• Scenarios in YAML and run persistence in SQLite
//
// Packages:
//
//	matrix/     dense row-major storage and vector kernels
//	network/    substitution matrices and productivity profiles
//	household/  the representative household
//	firms/      the production sector
//	economy/    household + firms + network, p_net and the production function
//	dynamics/   the time-stepping engine and its tensors
//	config/     YAML scenarios
//	store/      SQLite run storage
//	cmd/netecon/  command-line runner
//
// Quick start:
//
//	go run ./cmd/netecon -config examples/scenarios/symmetric.yaml
package netecon
