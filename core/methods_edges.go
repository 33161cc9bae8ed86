// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/AddUnitEdge/Edge/WeightAt/HasEdge/EdgeCount.
//
// Invariant:
//   - Every write touches (i,j) and (j,i) together, so the matrix stays symmetric.

package core

import "fmt"

// AddEdge connects a and b with the given travel time, overwriting any
// previous weight for the pair.
//
// Steps:
//  1. Validate MinWeight <= weight <= MaxWeight.
//  2. Resolve both names under the write lock.
//  3. Reject a == b; the diagonal stays SelfWeight.
//  4. Write both cells; count the pair if it had no edge before.
//
// Errors:
//   - ErrBadWeight, ErrVertexNotFound, ErrLoopNotAllowed.
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string, weight int64) error {
	if weight < MinWeight || weight > MaxWeight {
		return fmt.Errorf("%w: %d for %q-%q (want %d..%d)", ErrBadWeight, weight, a, b, MinWeight, MaxWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i, err := g.indexOf(a)
	if err != nil {
		return err
	}
	j, err := g.indexOf(b)
	if err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	if g.matrix[i][j] <= 0 {
		g.edgeCount++
	}
	g.matrix[i][j] = weight
	g.matrix[j][i] = weight

	return nil
}

// AddUnitEdge connects a and b with UnitWeight, for unweighted networks.
func (g *Graph) AddUnitEdge(a, b string) error {
	return g.AddEdge(a, b, UnitWeight)
}

// Edge returns the stored cell for the pair: a positive weight, SelfWeight
// when a == b, or NoEdge.
//
// Errors:
//   - ErrVertexNotFound: if either name is absent.
func (g *Graph) Edge(a, b string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, err := g.indexOf(a)
	if err != nil {
		return NoEdge, err
	}
	j, err := g.indexOf(b)
	if err != nil {
		return NoEdge, err
	}

	return g.matrix[i][j], nil
}

// WeightAt is the index form of Edge.
//
// Errors:
//   - ErrIndexOutOfRange: if i or j is outside the matrix.
func (g *Graph) WeightAt(i, j int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkIndex(i); err != nil {
		return NoEdge, err
	}
	if err := g.checkIndex(j); err != nil {
		return NoEdge, err
	}

	return g.matrix[i][j], nil
}

// HasEdge reports whether a and b share a positive-weight edge.
// Unknown names yield false.
func (g *Graph) HasEdge(a, b string) bool {
	w, err := g.Edge(a, b)
	if err != nil {
		return false
	}

	return w > 0
}

// EdgeCount returns the number of connected station pairs.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
