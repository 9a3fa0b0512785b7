// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra primitives used by the
// economy kernels: a row-major Dense matrix with bounds-checked accessors,
// row/column reductions, diagonal scaling and small vector helpers.
//
// The package provides:
//
//   - Dense with O(1) At/Set, no-copy Row views, copy-based SubRows and Flatten.
//   - RowSums (substitution weights), ColSums (market totals), MatVec (input
//     bills), ScaleCols (rationing) and AllFinite (run checks).
//   - Concat, Sum, Dot, Clip, FiniteVec, CopyVec over []float64.
//   - Validators returning sentinel errors (ErrDimensionMismatch, ErrNilMatrix, ...).
//
// Matrices here are small (n+1 agents squared) and dense; every loop runs in
// a fixed order so simulations are bit-for-bit reproducible.
package matrix
