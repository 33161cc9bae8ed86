// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_line.go: Line(n): stations 0..n-1 joined in index order.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Links (i-1, i) for i = 1..n-1, in that order.
//
// Complexity: O(n) stations + O(n) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/core"
)

const (
	methodLine   = "Line"
	minLineNodes = 2
)

// Line returns a Constructor that builds a simple line of n stations.
func Line(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewVertices)
		}
		if err := addStations(g, cfg, methodLine, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodLine, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
