// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_hub.go: Hub(n): station 0 linked to each of stations 1..n-1.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Spokes emitted in ascending leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/core"
)

const (
	methodHub   = "Hub"
	minHubNodes = 2
)

// Hub returns a Constructor that builds a hub-and-spoke network.
func Hub(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minHubNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodHub, n, minHubNodes, ErrTooFewVertices)
		}
		if err := addStations(g, cfg, methodHub, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodHub, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
