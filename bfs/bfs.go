// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first iteration over a core.Graph,
// returning hop levels, parent links, and visit order.
//
// BFS expands the graph one level at a time, with optional hooks, depth
// limiting, and neighbor filtering.
package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/transit/core"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	vertices []*core.Vertex
	states   *core.StateTable
	list     []int
	res      *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// The graph itself is not modified; visited flags and levels live in a
// core.StateTable private to this call.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, err := g.IndexOf(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	vertices := g.Vertices()
	n := len(vertices)
	w := &walker{
		graph:    g,
		opts:     o,
		vertices: vertices,
		states:   core.NewStateTable(n),
		list:     make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]*core.Vertex, 0, n),
			Level:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if err = w.discover(s, 0, -1); err != nil {
		return w.res, err
	}

	return w.res, w.sweep()
}

// Iter runs BFS eagerly and returns the finished order as a replayable
// sequence.
func Iter(g *core.Graph, start string, opts ...Option) (iter.Seq[*core.Vertex], error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.All(), nil
}

// sweep expands one level per pass: every vertex of level L, in list order,
// contributes its unmarked neighbors (index order) as level L+1. It stops
// when a pass adds nothing.
func (w *walker) sweep() error {
	lo := 0
	for level := 0; ; level++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if w.opts.MaxDepth > 0 && level >= w.opts.MaxDepth {
			return nil
		}

		hi := len(w.list)
		for _, u := range w.list[lo:hi] {
			nbrs, err := w.graph.NeighborIndices(u)
			if err != nil {
				return fmt.Errorf("bfs: neighbors of %q: %w", w.vertices[u], err)
			}
			for _, v := range nbrs {
				if v >= len(w.vertices) {
					// added after the run began
					continue
				}
				if w.states.At(v).IsMarked() {
					continue
				}
				if !w.opts.FilterNeighbor(w.vertices[u], w.vertices[v]) {
					continue
				}
				if err = w.discover(v, level+1, u); err != nil {
					return err
				}
			}
		}

		if len(w.list) == hi {
			return nil
		}
		lo = hi
	}
}

// discover marks vertex i at the given level, records it and runs OnVisit.
func (w *walker) discover(i, level, parent int) error {
	st := w.states.At(i)
	st.Mark()
	st.SetLevel(level)

	v := w.vertices[i]
	w.list = append(w.list, i)
	w.res.Order = append(w.res.Order, v)
	w.res.Level[v.Name()] = level
	if parent >= 0 {
		w.res.Parent[v.Name()] = w.vertices[parent].Name()
	}

	if err := w.opts.OnVisit(v, level); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", v, err)
	}

	return nil
}
