// SPDX-License-Identifier: MIT

package stations

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/transit/core"
)

// Write encodes g in the station-file format: each station in insertion
// order followed by its neighbors in insertion order. Every connection is
// therefore listed twice, once under each end, and Parse(Write(g)) rebuilds
// the same matrix.
func Write(w io.Writer, g *core.Graph) error {
	vertices := g.Vertices()
	for _, v := range vertices {
		if err := encodable(v.Name()); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	if g.Name() != "" {
		fmt.Fprintf(bw, "%s graph %s\n", commentPrefix, g.Name())
	}
	for i, v := range vertices {
		fmt.Fprintln(bw, v.Name())
		nbrs, err := g.NeighborIndices(i)
		if err != nil {
			return fmt.Errorf("stations: neighbors of %q: %w", v, err)
		}
		for _, j := range nbrs {
			if j >= len(vertices) {
				continue
			}
			weight, err := g.WeightAt(i, j)
			if err != nil {
				return fmt.Errorf("stations: weight %q-%q: %w", v, vertices[j], err)
			}
			fmt.Fprintf(bw, "%d %s\n", weight, vertices[j].Name())
		}
	}

	return bw.Flush()
}

func encodable(name string) error {
	r, _ := utf8.DecodeRuneInString(name)
	switch {
	case !unicode.IsLetter(r):
		return fmt.Errorf("%w: %q must start with a letter", ErrUnencodable, name)
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: %q spans lines", ErrUnencodable, name)
	case strings.TrimRightFunc(name, unicode.IsSpace) != name:
		return fmt.Errorf("%w: %q has trailing whitespace", ErrUnencodable, name)
	}

	return nil
}
