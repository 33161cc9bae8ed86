// SPDX-License-Identifier: MIT

package stations

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transit/core"
)

// Load opens path and parses it as a station file.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("stations: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	opts = append([]Option{WithGraphName(name)}, opts...)

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// line is one input line with its 1-based position.
type line struct {
	no   int
	text string
}

type lineKind int

const (
	kindSkip lineKind = iota
	kindStation
	kindEdge
)

// classify decides what a line holds from its first rune.
func classify(text string) lineKind {
	if text == "" || strings.HasPrefix(text, commentPrefix) {
		return kindSkip
	}
	r, _ := utf8.DecodeRuneInString(text)
	switch {
	case unicode.IsLetter(r):
		return kindStation
	case unicode.IsDigit(r):
		return kindEdge
	default:
		return kindSkip
	}
}

// Parse builds a graph from station-file text. See the package
// documentation for the format.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := newOptions(opts...)

	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("stations: read: %w", err)
	}

	p := &parser{
		g:      core.NewGraph(core.WithName(o.graphName)),
		logger: o.logger,
	}
	p.registerStations(lines)
	p.resolveEdges(lines)

	if err = p.problems.ErrorOrNil(); err != nil {
		p.logger.WithFields(logrus.Fields{
			"graph":    o.graphName,
			"problems": len(p.problems.Errors),
		}).Warn("station file rejected")

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	p.logger.WithFields(logrus.Fields{
		"graph":    o.graphName,
		"stations": p.g.VertexCount(),
		"edges":    p.g.EdgeCount(),
	}).Info("station graph loaded")

	return p.g, nil
}

func readLines(r io.Reader) ([]line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []line
	for no := 1; sc.Scan(); no++ {
		out = append(out, line{no: no, text: strings.TrimRightFunc(sc.Text(), unicode.IsSpace)})
	}

	return out, sc.Err()
}

// parser carries the graph under construction and the problems found.
type parser struct {
	g        *core.Graph
	logger   *logrus.Entry
	problems *multierror.Error
}

func (p *parser) problem(no int, format string, args ...interface{}) {
	p.problems = multierror.Append(p.problems, fmt.Errorf("line %d: %s", no, fmt.Sprintf(format, args...)))
}

// registerStations is the first pass: every station line adds a vertex.
func (p *parser) registerStations(lines []line) {
	for _, l := range lines {
		if classify(l.text) != kindStation {
			continue
		}
		if err := p.g.AddVertex(l.text); err != nil {
			if errors.Is(err, core.ErrDuplicateVertex) {
				p.problem(l.no, "duplicate station %q", l.text)
				continue
			}
			p.problem(l.no, "%v", err)
		}
	}
}

// resolveEdges is the second pass: neighbor lines attach to the most recent
// station line.
func (p *parser) resolveEdges(lines []line) {
	current := ""
	for _, l := range lines {
		switch classify(l.text) {
		case kindStation:
			current = l.text
		case kindEdge:
			if current == "" {
				p.problem(l.no, "neighbor line before any station")
				continue
			}
			weight, neighbor, err := splitEdge(l.text)
			if err != nil {
				p.problem(l.no, "%v", err)
				continue
			}
			p.addEdge(l.no, current, neighbor, weight)
		}
	}
}

func (p *parser) addEdge(no int, from, to string, weight int64) {
	if old, err := p.g.Edge(from, to); err == nil && old > 0 && old != weight {
		p.logger.WithFields(logrus.Fields{
			"line": no,
			"from": from,
			"to":   to,
			"was":  old,
			"now":  weight,
		}).Warn("conflicting travel times, keeping the later one")
	}

	err := p.g.AddEdge(from, to, weight)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrVertexNotFound):
		p.problem(no, "unknown station %q", to)
	case errors.Is(err, core.ErrLoopNotAllowed):
		p.problem(no, "station %q lists itself as a neighbor", from)
	case errors.Is(err, core.ErrBadWeight):
		p.problem(no, "travel time %d must be between %d and %d", weight, core.MinWeight, core.MaxWeight)
	default:
		p.problem(no, "%v", err)
	}
}

// splitEdge parses "<digits><whitespace><neighbor>".
func splitEdge(text string) (int64, string, error) {
	end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		return 0, "", fmt.Errorf("expected \"<minutes> <station>\", got %q", text)
	}
	rest := text[end:]
	r, _ := utf8.DecodeRuneInString(rest)
	if !unicode.IsSpace(r) {
		return 0, "", fmt.Errorf("expected a space after the travel time in %q", text)
	}
	neighbor := strings.TrimSpace(rest)
	if neighbor == "" {
		return 0, "", fmt.Errorf("missing station name in %q", text)
	}
	w, err := strconv.ParseInt(text[:end], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("travel time %q: %w", text[:end], err)
	}

	return w, neighbor, nil
}
