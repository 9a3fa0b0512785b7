// SPDX-License-Identifier: MIT
// Package: firms
//
// demands.go - input demands of the sectors under the CES family.
//
// Notation: T_i = t_i^{1/b}, p̃ = [1, p] (labour is the unit of account),
// λ is the n×(n+1) substitution matrix with rows summing to 1.
//
//	q = 0     (Leontief):      Q_ij = λ_ij T_i
//	q = +Inf  (Cobb-Douglas):  Q_ij = λ_ij T_i Π_k p̃_k^{λ_ik} / p̃_j
//	0 < q < ∞ (CES):           Q_ij = λ_ij T_i P_i^q p̃_j^{-q/(1+q)}
//
// where P is the network price index supplied by the caller. The two limits
// are evaluated in closed form and never through the general expression,
// which would hit 0·∞ or ∞/∞ at q = 0 and q = +Inf. Entries with λ_ij = 0
// are exactly 0, whatever the price.

package firms

import (
	"math"

	"github.com/katalvlaran/netecon/matrix"
)

// ComputeDemands returns the n×(n+1) matrix of labour (column 0) and goods
// demands each sector posts to reach targets.
//
// Errors:
//   - ErrInvalidElasticity if q < 0 or NaN; ErrInvalidReturns if b <= 0 or NaN.
//   - ErrDimensionMismatch for inconsistent shapes (pricesNet is checked for
//     the general branch only).
//
// Complexity: O(n²).
func (f *Firms) ComputeDemands(targets, prices, pricesNet []float64, q, b float64, lambda *matrix.Dense) (*matrix.Dense, error) {
	n := len(f.z)
	if !(q >= 0) {
		return nil, firmsErrorf(methodDemands, ErrInvalidElasticity)
	}
	if !(b > 0) {
		return nil, firmsErrorf(methodDemands, ErrInvalidReturns)
	}
	if len(targets) != n || len(prices) != n {
		return nil, firmsErrorf(methodDemands, ErrDimensionMismatch)
	}
	if err := matrix.ValidateShape(lambda, n, n+1); err != nil {
		return nil, firmsErrorf(methodDemands, ErrDimensionMismatch)
	}
	general := q > 0 && !math.IsInf(q, 1)
	if general && len(pricesNet) != n {
		return nil, firmsErrorf(methodDemands, ErrDimensionMismatch)
	}

	out, _ := matrix.NewDense(n, n+1) // n >= 1 guaranteed by New
	pt := matrix.Concat(1, prices)
	for i := 0; i < n; i++ {
		scale := math.Pow(targets[i], 1/b) // T_i
		lam := lambda.Row(i)
		row := out.Row(i)

		switch {
		case q == 0:
			for j, l := range lam {
				row[j] = l * scale
			}

		case math.IsInf(q, 1):
			geo := 1.0 // Π_k p̃_k^{λ_ik}
			for k, l := range lam {
				if l != 0 {
					geo *= math.Pow(pt[k], l)
				}
			}
			for j, l := range lam {
				if l != 0 {
					row[j] = l * scale * geo / pt[j]
				}
			}

		default:
			lead := scale * math.Pow(pricesNet[i], q)
			exp := -q / (1 + q)
			for j, l := range lam {
				if l != 0 {
					row[j] = l * lead * math.Pow(pt[j], exp)
				}
			}
		}
	}

	return out, nil
}
