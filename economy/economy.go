// SPDX-License-Identifier: MIT
// Package: economy
//
// economy.go - the static structure of the network economy and the two
// CES-family aggregators the dynamics consume.
//
// Notation as in package firms: p̃ = [1, p], λ is n×(n+1) with unit row sums.
//
// Network price index P_i (ComputePNet):
//
//	q = 0      P_i = Σ_j λ_ij p̃_j
//	q = +Inf   P_i = Π_j p̃_j^{λ_ij}
//	otherwise  P_i = Σ_j λ_ij p̃_j^{1/(1+q)}
//
// Production from an input row Q_i (ProductionFunction), over λ_ij > 0 only:
//
//	q = 0      g_i = (min_j Q_ij/λ_ij)^b
//	q = +Inf   g_i = Π_j (Q_ij/λ_ij)^{b λ_ij}
//	otherwise  g_i = (Σ_j λ_ij^{(1+q)/q} Q_ij^{-1/q})^{-q b}
//
// The pair is dual to firms.ComputeDemands: producing from the inputs
// demanded for target t yields exactly t (up to rounding).

package economy

import (
	"math"

	"github.com/katalvlaran/netecon/firms"
	"github.com/katalvlaran/netecon/household"
	"github.com/katalvlaran/netecon/matrix"
)

const (
	methodNew        = "New"
	methodPNet       = "ComputePNet"
	methodProduction = "ProductionFunction"
)

// Economy binds the sectors, the household and the production network.
// Fields are read-only after New.
type Economy struct {
	N      int                  // number of goods-producing sectors
	Firms  *firms.Firms         // sector parameters
	House  *household.Household // representative household
	Q      float64              // CES elasticity, 0 (Leontief) .. +Inf (Cobb-Douglas)
	B      float64              // returns to scale
	Lambda *matrix.Dense        // n×(n+1) substitution matrix, rows normalised to 1
}

// New validates the components and returns an Economy. lambda is copied and
// its rows are normalised to sum to 1.
//
// Errors:
//   - ErrNilComponent, ErrDimensionMismatch, ErrInvalidSubstitution,
//     ErrInvalidElasticity, ErrInvalidReturns.
func New(lambda *matrix.Dense, q, b float64, f *firms.Firms, h *household.Household) (*Economy, error) {
	if lambda == nil || f == nil || h == nil {
		return nil, economyErrorf(methodNew, ErrNilComponent)
	}
	if !(q >= 0) {
		return nil, economyErrorf(methodNew, ErrInvalidElasticity)
	}
	if !(b > 0) || math.IsInf(b, 1) {
		return nil, economyErrorf(methodNew, ErrInvalidReturns)
	}
	n := f.N()
	if h.N() != n {
		return nil, economyErrorf(methodNew, ErrDimensionMismatch)
	}
	if err := matrix.ValidateShape(lambda, n, n+1); err != nil {
		return nil, economyErrorf(methodNew, ErrDimensionMismatch)
	}

	lam := lambda.Clone()
	sums, _ := matrix.RowSums(lam) // shape validated above
	for i, s := range sums {
		row := lam.Row(i)
		for _, v := range row {
			if !(v >= 0) || math.IsInf(v, 0) {
				return nil, economyErrorf(methodNew, ErrInvalidSubstitution)
			}
		}
		if s == 0 {
			return nil, economyErrorf(methodNew, ErrInvalidSubstitution)
		}
		for j := range row {
			row[j] /= s
		}
	}

	return &Economy{N: n, Firms: f, House: h, Q: q, B: b, Lambda: lam}, nil
}

// IsLeontief reports q = 0.
func (e *Economy) IsLeontief() bool { return e.Q == 0 }

// IsCobbDouglas reports q = +Inf.
func (e *Economy) IsCobbDouglas() bool { return math.IsInf(e.Q, 1) }

// ComputePNet returns the network price index of every sector for the
// wage-rescaled goods prices.
//
// Errors: ErrDimensionMismatch if len(prices) != N.
func (e *Economy) ComputePNet(prices []float64) ([]float64, error) {
	if len(prices) != e.N {
		return nil, economyErrorf(methodPNet, ErrDimensionMismatch)
	}
	pt := matrix.Concat(1, prices)
	out := make([]float64, e.N)

	switch {
	case e.IsLeontief():
		for i := range out {
			out[i] = matrix.Dot(e.Lambda.Row(i), pt)
		}
	case e.IsCobbDouglas():
		for i := range out {
			acc := 1.0
			for j, l := range e.Lambda.Row(i) {
				if l != 0 {
					acc *= math.Pow(pt[j], l)
				}
			}
			out[i] = acc
		}
	default:
		exp := 1 / (1 + e.Q)
		for i := range out {
			var acc float64
			for j, l := range e.Lambda.Row(i) {
				if l != 0 {
					acc += l * math.Pow(pt[j], exp)
				}
			}
			out[i] = acc
		}
	}

	return out, nil
}

// ProductionFunction returns the output each sector obtains from its realised
// inputs (an n×(n+1) matrix: labour in column 0, goods in 1..n). Any missing
// input with positive weight yields zero output.
//
// Errors: ErrDimensionMismatch if inputs is not N×(N+1).
//
// Complexity: O(n²).
func (e *Economy) ProductionFunction(inputs *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateShape(inputs, e.N, e.N+1); err != nil {
		return nil, economyErrorf(methodProduction, ErrDimensionMismatch)
	}
	out := make([]float64, e.N)
	for i := range out {
		out[i] = e.produce(e.Lambda.Row(i), inputs.Row(i))
	}

	return out, nil
}

// produce evaluates one sector's production function on its input row.
func (e *Economy) produce(lam, in []float64) float64 {
	switch {
	case e.IsLeontief():
		m := math.Inf(1)
		for j, l := range lam {
			if l > 0 {
				m = math.Min(m, in[j]/l)
			}
		}

		return math.Pow(m, e.B)

	case e.IsCobbDouglas():
		acc := 1.0
		for j, l := range lam {
			if l > 0 {
				acc *= math.Pow(in[j]/l, e.B*l)
			}
		}

		return acc

	default:
		var acc float64
		for j, l := range lam {
			if l > 0 {
				acc += math.Pow(l, (1+e.Q)/e.Q) * math.Pow(in[j], -1/e.Q)
			}
		}
		if math.IsInf(acc, 1) {
			return 0 // some input is exhausted
		}

		return math.Pow(acc, -e.Q*e.B)
	}
}
