// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.
//   - Constructors reuse stations that already exist, so several lines can share interchanges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Reuse a station when its ID is already present.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)

	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph, e.g. to add a
// synthetic branch to a network loaded from a stations file.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Line builds a line of n stations (n ≥ 2): 0-1-2-...-(n-1).
//func Line(n int) Constructor
//
// Loop builds a circle line of n stations (n ≥ 3).
//func Loop(n int) Constructor
//
// Hub builds a hub at index 0 with n-1 spokes (n ≥ 2).
//func Hub(n int) Constructor
//
// Grid builds an R×C street grid, station r*C+c at row r, column c.
//func Grid(rows, cols int) Constructor
//
// Complete connects every pair of n stations (n ≥ 1).
//func Complete(n int) Constructor
//
// RandomSparse adds each of the n(n-1)/2 links with probability p.
// Requires cfg.rng != nil.
//func RandomSparse(n int, p float64) Constructor

// addStations ensures stations idFn(0..n-1) exist, in index order.
func addStations(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if g.HasVertex(id) {
			continue
		}
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// link adds the edge between stations i and j with the next generated weight.
func link(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
