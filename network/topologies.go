// SPDX-License-Identifier: MIT
// Package: network
//
// topologies.go - deterministic and stochastic supplier topologies.
//
// Determinism:
//   - Links are emitted in fixed order (i asc, j asc), so a seeded RNG gives
//     the same matrix on every run.
//   - Self-links (i buys from i) appear only under WithSelfLoops(true).

package network

import (
	"fmt"

	"github.com/katalvlaran/netecon/matrix"
)

const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"

	minCompleteSectors = 1
	minCycleSectors    = 2
	minStarSectors     = 2
	minSparseSectors   = 1
	probMin            = 0.0
	probMax            = 1.0
)

// Complete links every sector to every other sector.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(cfg config) (*matrix.Dense, error) {
		if n < minCompleteSectors {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSectors, ErrTooFewSectors)
		}
		adj, _ := matrix.NewDense(n, n)
		for i := 0; i < n; i++ {
			row := adj.Row(i)
			for j := 0; j < n; j++ {
				if i == j && !cfg.selfLoops {
					continue
				}
				row[j] = cfg.weight()
			}
		}

		return adj, nil
	}
}

// Cycle makes sector i buy from sector (i+1) mod n: a closed supply chain.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg config) (*matrix.Dense, error) {
		if n < minCycleSectors {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSectors, ErrTooFewSectors)
		}
		adj, _ := matrix.NewDense(n, n)
		for i := 0; i < n; i++ {
			row := adj.Row(i)
			if cfg.selfLoops {
				row[i] = cfg.weight()
			}
			row[(i+1)%n] = cfg.weight()
		}

		return adj, nil
	}
}

// Star makes sector 0 a hub: every leaf buys from the hub and the hub buys
// from every leaf.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(cfg config) (*matrix.Dense, error) {
		if n < minStarSectors {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarSectors, ErrTooFewSectors)
		}
		adj, _ := matrix.NewDense(n, n)
		for i := 0; i < n; i++ {
			row := adj.Row(i)
			if cfg.selfLoops {
				row[i] = cfg.weight()
			}
			if i == 0 {
				for j := 1; j < n; j++ {
					row[j] = cfg.weight()
				}
				continue
			}
			row[0] = cfg.weight()
		}

		return adj, nil
	}
}

// RandomSparse includes each admissible link i→j independently with
// probability p (Erdős–Rényi over ordered pairs).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewSectors); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg config) (*matrix.Dense, error) {
		if n < minSparseSectors {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseSectors, ErrTooFewSectors)
		}
		if !(p >= probMin && p <= probMax) {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		adj, _ := matrix.NewDense(n, n)
		for i := 0; i < n; i++ {
			row := adj.Row(i)
			for j := 0; j < n; j++ {
				if i == j && !cfg.selfLoops {
					continue
				}
				include := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					include = cfg.rng.Float64() < p
				}
				if include {
					row[j] = cfg.weight()
				}
			}
		}

		return adj, nil
	}
}
