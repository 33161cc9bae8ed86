// Package dfs provides depth-first iteration over a core.Graph of stations.
//
// Traversal is recursive pre-order: a station is recorded the moment it is
// entered, then its neighbors are tried in graph insertion order and each
// unvisited one is explored fully before the next. A dead end backtracks to
// the most recent station that still has an unvisited neighbor.
//
// Usage
//
//	res, err := dfs.DFS(g, "Central")
//	for _, v := range res.Order { ... }
//
//	// every component, e.g. to count disconnected parts of a network
//	res, err = dfs.DFS(g, "", dfs.WithFullTraversal())
//	components := len(res.Roots)
//
// Visited flags live in a core.StateTable private to each call; the graph is
// never written to, so concurrent traversals are safe.
package dfs
