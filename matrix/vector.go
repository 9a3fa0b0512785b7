// SPDX-License-Identifier: MIT
// Package: matrix
//
// Small vector kernels over []float64. They assume equal lengths where two
// operands are involved; public entry points validate with ValidateVecLen
// before reaching them.

package matrix

import "math"

// Concat returns [head, tail...] as a fresh slice.
// Used to prepend the unit wage-rescaled labour price to a goods price vector.
func Concat(head float64, tail []float64) []float64 {
	out := make([]float64, len(tail)+1)
	out[0] = head
	copy(out[1:], tail)

	return out
}

// Sum returns Σ x[i].
func Sum(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}

	return s
}

// Dot returns Σ a[i]*b[i] over the common prefix.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}

	return s
}

// Clip bounds every element of x into [lo, hi] in place and returns x.
// NaN elements are left untouched so that FiniteVec can still report them.
func Clip(x []float64, lo, hi float64) []float64 {
	for i, v := range x {
		switch {
		case v < lo:
			x[i] = lo
		case v > hi:
			x[i] = hi
		}
	}

	return x
}

// FiniteVec reports whether every element of x is finite.
func FiniteVec(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// CopyVec returns an independent copy of x (nil stays nil).
func CopyVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
