// SPDX-License-Identifier: MIT
// Package dot renders a station graph in Graphviz DOT format.
//
// Every station becomes a node labelled with its name and every connection
// one undirected edge labelled with its travel time. A route can be
// highlighted, which is how `transit route --dot` draws its answer.
package dot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/transit/core"
)

// ErrNilGraph is returned when Render gets a nil graph.
var ErrNilGraph = errors.New("dot: graph is nil")

const (
	defaultGraphName = "transit"
	highlightColor   = "red"
	plainColor       = "gray40"
)

// Option customizes Render.
type Option func(*options)

type options struct {
	highlight []string
	attrs     [][2]string
}

// WithHighlight marks the stations of path and the hops between
// consecutive stations.
func WithHighlight(path []string) Option {
	return func(o *options) {
		o.highlight = append([]string(nil), path...)
	}
}

// WithGraphAttr sets a graph-level attribute such as rankdir or ranksep.
// Unknown attribute names make Render fail.
func WithGraphAttr(key, value string) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, [2]string{key, value})
	}
}

// Render returns the DOT source for g.
func Render(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	onPath, hops, err := highlightSets(g, o.highlight)
	if err != nil {
		return "", err
	}

	name := defaultGraphName
	if g.Name() != "" {
		name = g.Name()
	}
	parent := strconv.Quote(name)

	graph := gographviz.NewGraph()
	if err = graph.SetName(parent); err != nil {
		return "", fmt.Errorf("dot: graph name: %w", err)
	}
	if err = graph.SetDir(false); err != nil {
		return "", fmt.Errorf("dot: graph direction: %w", err)
	}
	for _, kv := range o.attrs {
		if err = graph.AddAttr(parent, kv[0], strconv.Quote(kv[1])); err != nil {
			return "", fmt.Errorf("dot: graph attribute %q: %w", kv[0], err)
		}
	}

	for _, v := range g.Vertices() {
		attrs := map[string]string{
			"label": strconv.Quote(v.Name()),
			"shape": "ellipse",
		}
		if onPath[v.Name()] {
			attrs["color"] = highlightColor
			attrs["penwidth"] = "2"
		}
		if err = graph.AddNode(parent, strconv.Quote(v.Name()), attrs); err != nil {
			return "", fmt.Errorf("dot: node %q: %w", v, err)
		}
	}

	for _, e := range g.Edges() {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.FormatInt(e.Weight, 10)),
			"color": plainColor,
		}
		if hops[hopKey(e.From.Name(), e.To.Name())] {
			attrs["color"] = highlightColor
			attrs["penwidth"] = "3"
		}
		src, dst := strconv.Quote(e.From.Name()), strconv.Quote(e.To.Name())
		if err = graph.AddEdge(src, dst, false, attrs); err != nil {
			return "", fmt.Errorf("dot: edge %q-%q: %w", e.From, e.To, err)
		}
	}

	return graph.String(), nil
}

// highlightSets validates path and returns its stations and hops.
func highlightSets(g *core.Graph, path []string) (map[string]bool, map[[2]string]bool, error) {
	stations := make(map[string]bool, len(path))
	hops := make(map[[2]string]bool, len(path))
	for i, name := range path {
		if !g.HasVertex(name) {
			return nil, nil, fmt.Errorf("dot: highlight %q: %w", name, core.ErrVertexNotFound)
		}
		stations[name] = true
		if i > 0 {
			hops[hopKey(path[i-1], name)] = true
		}
	}

	return stations, hops, nil
}

// hopKey orders the pair so either direction finds the same edge.
func hopKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}

	return [2]string{a, b}
}
