// SPDX-License-Identifier: MIT

// Package household models the representative consumer and labour supplier
// of the network economy.
//
// A Household carries five parameters (labour scale l, preferences θ, labour
// aversion γ, concavity φ, tension sensitivity ω_p) and offers three pure
// operations on engine-supplied snapshots:
//
//   - ComputeDemandConsLabourSupply: tension-tilted Cobb-Douglas demand and
//     labour supply, closed form for φ = 1 and φ = +Inf.
//   - BudgetConstraint: the hard budget ceiling applied to the rationed basket.
//   - Utility: log-utility of consumption minus the labour disutility.
//
// All monetary inputs are expected in wage-numeraire units.
package household
