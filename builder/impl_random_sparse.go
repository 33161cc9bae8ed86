// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős-Rényi-like network.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   • Trials run over unordered pairs {i,j}, i asc then j asc (j>i).
//
// Determinism: fixed trial order, so a fixed seed gives a fixed network.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each link with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addStations(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				if err := link(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
