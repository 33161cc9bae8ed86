// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_grid.go: Grid(rows, cols): a 4-neighborhood street grid.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Station index r*cols + c sits at row r, column c (row-major).
//   • For each cell in row-major order: link right, then link down.
//
// Complexity: O(R*C) stations + O(2*R*C) links.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := addStations(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
