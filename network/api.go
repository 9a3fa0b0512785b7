// SPDX-License-Identifier: MIT
// Package: network
//
// api.go - the Build entry point turning a supplier topology into the
// substitution matrix consumed by package economy.

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/netecon/matrix"
)

// Constructor produces the n×n supplier-weight matrix of a topology:
// entry (i, j) is the weight sector i puts on good j (0 = no link).
type Constructor func(cfg config) (*matrix.Dense, error)

// Build runs cons under the given options and returns the n×(n+1)
// substitution matrix λ:
//
//	λ_i0     = labour share
//	λ_i(j+1) = (1 − labour share) · A_ij / Σ_k A_ik
//
// A sector with no supplier puts its whole weight on labour. Every row sums to 1.
//
// Errors: whatever cons returns, or ErrInvalidWeight for a negative or
// non-finite link weight.
func Build(cons Constructor, opts ...Option) (*matrix.Dense, error) {
	cfg := newConfig(opts...)
	adj, err := cons(cfg)
	if err != nil {
		return nil, err
	}

	n := adj.Rows()
	lambda, _ := matrix.NewDense(n, n+1) // n >= 1 ensured by cons
	for i := 0; i < n; i++ {
		links := adj.Row(i)
		var total float64
		for j, w := range links {
			if !(w >= 0) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("Build: link %d→%d w=%g: %w", i, j, w, ErrInvalidWeight)
			}
			total += w
		}

		row := lambda.Row(i)
		if total == 0 {
			row[0] = 1
			continue
		}
		row[0] = cfg.labourShare
		goods := 1 - cfg.labourShare
		for j, w := range links {
			row[j+1] = goods * w / total
		}
	}

	return lambda, nil
}
