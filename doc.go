// SPDX-License-Identifier: MIT
// Package transit models a rail or metro network as an undirected weighted
// graph of stations and answers the question riders actually ask: what is
// the fastest way from here to there?
//
// 🚀 What is in transit?
//
//	• Core primitives: stations, dense adjacency matrix, weighted links
//	• Traversals: BFS (hop levels), DFS (pre-order, components)
//	• Shortest paths: Dijkstra PathFinder with scan or heap frontier
//	• Network builders: line, loop, hub, grid, complete, random sparse
//	• I/O: the plain-text station format and Graphviz DOT rendering
//	• CLI: cmd/transit (route, neighbors, bfs, dfs, stats, dot, generate, config)
//
// Packages:
//
//	core/      Graph, Vertex, Edge and per-run VertexState tables
//	bfs/       breadth-first iteration with levels and parents
//	dfs/       depth-first iteration, optional full traversal
//	dijkstra/  PathFinder, ShortestPath and Route
//	builder/   deterministic network constructors and station names
//	stations/  Load / Parse / Write of station files
//	dot/       Graphviz rendering with highlighted routes
//
// Quick ASCII example:
//
//	Central ──5── Market ──3── Harbour
//	   │                          │
//	   └────────────100───────────┘
//
//	Central → Harbour costs 8 minutes via Market, not 100 direct.
//
//	go install github.com/katalvlaran/transit/cmd/transit@latest
package transit
