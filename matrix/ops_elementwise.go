// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row/column reductions and broadcast kernels used by the market accounting:
//     column sums = total demand per agent, row sums = substitution weights,
//     MatVec = input bills, right-diagonal scaling = rationing.
//   - Keep all loops deterministic (fixed i→j order) and operate on the flat buffer.
//
// Determinism & Performance:
//   - No hidden allocations beyond the returned output; O(r*c) time.

package matrix

import "math"

// RowSums returns s[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("RowSums", ErrNilMatrix)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c // row base offset
		var s float64
		for j := 0; j < m.c; j++ {
			s += m.data[base+j]
		}
		out[i] = s
	}

	return out, nil
}

// ColSums returns s[j] = Σ_i m[i,j].
// Complexity: O(r*c).
func ColSums(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("ColSums", ErrNilMatrix)
	}
	out := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out[j] += m.data[base+j]
		}
	}

	return out, nil
}

// MatVec returns y = m·x.
//
// Errors:
//   - ErrNilMatrix if m or x is nil.
//   - ErrDimensionMismatch if len(x) != Cols().
//
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf("MatVec", ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf("MatVec", err)
	}
	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var acc float64
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// ScaleCols computes out[i,j] = m[i,j] * scale[j], i.e. m·diag(scale).
//
// Errors:
//   - ErrNilMatrix if m is nil; ErrDimensionMismatch if len(scale) != Cols().
//
// Complexity: O(r*c).
func ScaleCols(m *Dense, scale []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("ScaleCols", ErrNilMatrix)
	}
	if err := ValidateVecLen(scale, m.c); err != nil {
		return nil, matrixErrorf("ScaleCols", err)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// AllFinite reports whether every element of m is finite.
// A nil matrix is reported as finite (nothing to check).
func AllFinite(m *Dense) bool {
	if m == nil {
		return true
	}
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
