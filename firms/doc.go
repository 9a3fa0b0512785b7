// SPDX-License-Identifier: MIT

// Package firms implements the production sectors of the network economy:
// forecast-based production targets, CES-family input demands, realised
// profit and balance accounting, and the price, wage and stock feedback
// rules.
//
// Firms is constructed once from per-sector productivities z and stock
// depreciations σ plus five adjustment speeds (α, α_p, β, β_p, w), all
// validated in New. Every method is a pure function of its arguments and
// those parameters; the dynamics engine supplies the snapshots.
//
// Trade matrices are (n+1)×(n+1) *matrix.Dense with row/column 0 for the
// household/labour market and 1..n for the sectors. Prices are per-sector
// and wage-rescaled, so labour always trades at unit price.
package firms
