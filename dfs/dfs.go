// SPDX-License-Identifier: MIT
// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root or full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V²), each adjacency-matrix row is read once per visited station.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/transit/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph    *core.Graph      // underlying graph
	opts     DFSOptions       // traversal options
	vertices []*core.Vertex   // snapshot, index-aligned with the matrix
	states   *core.StateTable // per-run visited flags
	res      *DFSResult       // result collector
}

// DFS performs depth-first search on graph g. If opts include WithFullTraversal,
// it covers all disconnected components; otherwise, it starts only from start.
// Returns DFSResult or error if aborted by context or hook; on abort the
// partial result is returned alongside the error.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	root := -1
	if !dopts.FullTraversal {
		i, err := g.IndexOf(start)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
		}
		root = i
	}

	vertices := g.Vertices()
	n := len(vertices)
	w := &dfsWalker{
		graph:    g,
		opts:     dopts,
		vertices: vertices,
		states:   core.NewStateTable(n),
		res: &DFSResult{
			Order:  make([]*core.Vertex, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if root >= 0 {
		w.res.Roots = append(w.res.Roots, vertices[root])
		return w.res, w.traverse(root, 0)
	}

	for i := range vertices {
		if w.states.At(i).IsMarked() {
			continue
		}
		w.res.Roots = append(w.res.Roots, vertices[i])
		if err := w.traverse(i, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// Iter runs DFS eagerly and returns the discovery order as a replayable
// sequence.
func Iter(g *core.Graph, start string, opts ...Option) (iter.Seq[*core.Vertex], error) {
	res, err := DFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.All(), nil
}

// traverse visits station i at the given depth, then recurses into each
// unmarked neighbor in index order.
func (w *dfsWalker) traverse(i, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	v := w.vertices[i]
	w.states.At(i).Mark()
	w.states.At(i).SetLevel(depth)
	w.res.Order = append(w.res.Order, v)
	w.res.Depth[v.Name()] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", v, err)
		}
	}

	nbrs, err := w.graph.NeighborIndices(i)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", v, err)
	}

	for _, j := range nbrs {
		if j >= len(w.vertices) || w.states.At(j).IsMarked() {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, w.vertices[j]) {
			w.res.SkippedNeighbors++
			continue
		}
		// The depth limit may refuse j; only link parents for stations
		// that were actually entered.
		if err = w.traverse(j, depth+1); err != nil {
			return err
		}
		if w.states.At(j).IsMarked() {
			w.res.Parent[w.vertices[j].Name()] = v.Name()
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", v, err)
		}
	}

	return nil
}
