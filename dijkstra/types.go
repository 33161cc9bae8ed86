// SPDX-License-Identifier: MIT
// Package dijkstra defines core types and configuration options
// for shortest travel-time queries on a core.Graph.
//
// Options:
//
//	– Frontier:         FrontierScan (default) or FrontierHeap.
//	– MaxDistance:      optional cap on travel time; stations beyond it count as unreachable.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target station does not exist.
//	– ErrUnreachable     if the target cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in WithMaxDistance).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (panics in WithInfEdgeThreshold).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/transit/core"
)

// Sentinel errors returned by the PathFinder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a query named a station absent from
	// the graph. It matches core.ErrVertexNotFound under errors.Is.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrUnreachable indicates that the frontier ran dry before the target
	// was finalized.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnknownFrontier is returned by ParseFrontier for an unrecognized name.
	ErrUnknownFrontier = errors.New("dijkstra: unknown frontier strategy")
)

// Frontier selects how the set of discovered, not yet finalized stations is
// kept between iterations.
type Frontier int

const (
	// FrontierScan keeps an unordered set and scans it for the minimum.
	// O(V²) overall, no allocation beyond the set itself.
	FrontierScan Frontier = iota

	// FrontierHeap keeps a binary min-heap with lazy decrease-key.
	// O((V + E) log V) overall.
	FrontierHeap
)

// String returns the lower-case name used in configuration files and flags.
func (f Frontier) String() string {
	switch f {
	case FrontierScan:
		return "scan"
	case FrontierHeap:
		return "heap"
	default:
		return fmt.Sprintf("frontier(%d)", int(f))
	}
}

// ParseFrontier maps "scan" or "heap" (case-insensitive) to a Frontier.
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scan", "":
		return FrontierScan, nil
	case "heap":
		return FrontierHeap, nil
	default:
		return FrontierScan, fmt.Errorf("%w: %q", ErrUnknownFrontier, s)
	}
}

// Options configures the behavior of a PathFinder.
//
// MaxDistance      – stations whose travel time would exceed it are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as closed.
//
//	Must be > 0. Default is math.MaxInt64 (no closed edges).
type Options struct {
	Frontier         Frontier // Frontier bookkeeping strategy
	MaxDistance      int64    // Maximum travel time to explore
	InfEdgeThreshold int64    // Weight threshold at or above which edges are non-traversable
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithFrontier selects the frontier strategy. Both strategies return the
// same distances and the same paths.
func WithFrontier(f Frontier) Option {
	return func(o *Options) {
		o.Frontier = f
	}
}

// WithMaxDistance sets a maximum travel-time threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered closed. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with:
//   - Frontier:         FrontierScan.
//   - MaxDistance:      math.MaxInt64 (no distance limit).
//   - InfEdgeThreshold: math.MaxInt64 (no edges treated as impassable).
func DefaultOptions() Options {
	return Options{
		Frontier:         FrontierScan,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result describes one answered query.
type Result struct {
	Source   string
	Target   string
	Distance int64          // total travel time
	Path     []*core.Vertex // Source first, Target last
	Settled  int            // stations finalized before the target
}

// Names returns Path as station names.
func (r *Result) Names() []string {
	out := make([]string, len(r.Path))
	for i, v := range r.Path {
		out[i] = v.Name()
	}

	return out
}

// Hops is the number of edges on Path.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
