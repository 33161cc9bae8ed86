// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_loop.go: Loop(n): a circle line, Line(n) plus the closing link.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Links (i, i+1 mod n) for i = 0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/core"
)

const (
	methodLoop   = "Loop"
	minLoopNodes = 3
)

// Loop returns a Constructor that builds a circle line of n stations.
func Loop(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLoopNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLoop, n, minLoopNodes, ErrTooFewVertices)
		}
		if err := addStations(g, cfg, methodLoop, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodLoop, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
