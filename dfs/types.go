// SPDX-License-Identifier: MIT
// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/transit/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start station does not exist
	// in the graph. It matches core.ErrVertexNotFound under errors.Is.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex: %w", core.ErrVertexNotFound)
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a station is first discovered
	// (pre-order). Returning an error aborts traversal with that error.
	OnVisit func(v *core.Vertex, depth int) error

	// OnExit, if non-nil, is invoked once all descendants of a station
	// have been explored (post-order).
	OnExit func(v *core.Vertex) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor *core.Vertex) bool

	// FullTraversal, if true, restarts from every unvisited station in
	// insertion order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v *core.Vertex, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v *core.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor stations.
// If fn(curr, nbr) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(curr, neighbor *core.Vertex) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// The start argument of DFS is then ignored.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records stations in the sequence they were discovered (pre-order).
	Order []*core.Vertex

	// Depth maps each station name to its tree depth from its root.
	Depth map[string]int

	// Parent maps each station name to the station it was discovered from.
	// Roots do not appear in this map.
	Parent map[string]string

	// Roots lists the station each DFS tree started from; more than one
	// only under WithFullTraversal.
	Roots []*core.Vertex

	// SkippedNeighbors reports how many neighbors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}

// Names returns Order as station names.
func (r *DFSResult) Names() []string {
	out := make([]string, len(r.Order))
	for i, v := range r.Order {
		out[i] = v.Name()
	}

	return out
}

// All replays Order. Each range starts from the first vertex again.
func (r *DFSResult) All() iter.Seq[*core.Vertex] {
	return func(yield func(*core.Vertex) bool) {
		for _, v := range r.Order {
			if !yield(v) {
				return
			}
		}
	}
}
