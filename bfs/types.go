// SPDX-License-Identifier: MIT
// Package bfs provides tunable options and error definitions
// for breadth-first iteration over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/transit/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start name is absent.
	// It matches core.ErrVertexNotFound under errors.Is.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex: %w", core.ErrVertexNotFound)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation between sweeps.
	Ctx context.Context

	// OnVisit is called once per reached vertex, in result order, with its
	// level. Returning an error aborts the traversal.
	OnVisit func(v *core.Vertex, level int) error

	// MaxDepth, if > 0, stops discovering vertices beyond this level.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip an edge by returning false.
	// Called for each edge curr→neighbor seen during a sweep.
	FilterNeighbor func(curr, neighbor *core.Vertex) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering
//   - no-op OnVisit
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(*core.Vertex, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ *core.Vertex) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run for each reached vertex; returning an
// error from it stops the BFS.
func WithOnVisit(fn func(v *core.Vertex, level int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given level (inclusive).
//
//	d > 0: limit to level d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor *core.Vertex) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices reached, by increasing level, discovery order within a level.
//   - Level: map from vertex name to its hop count from the start.
//   - Parent: map from vertex name to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []*core.Vertex
	Level  map[string]int
	Parent map[string]string
}

// Names returns Order as station names.
func (r *BFSResult) Names() []string {
	out := make([]string, len(r.Order))
	for i, v := range r.Order {
		out[i] = v.Name()
	}

	return out
}

// All replays Order. Each range starts from the first vertex again.
func (r *BFSResult) All() iter.Seq[*core.Vertex] {
	return func(yield func(*core.Vertex) bool) {
		for _, v := range r.Order {
			if !yield(v) {
				return
			}
		}
	}
}

// PathTo reconstructs the fewest-hops path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Level[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
