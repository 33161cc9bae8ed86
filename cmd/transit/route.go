// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transit/core"
	"github.com/katalvlaran/transit/dijkstra"
	"github.com/katalvlaran/transit/dot"
)

const (
	promptFrom  = "Enter the station you intend to start from: "
	promptTo    = "Enter the station you intend to travel to: "
	notFoundMsg = "The station you entered does not exist. Double check the station name and run the program again."
)

var errNoInput = errors.New("no station name given")

func newRouteCmd(a *app) *cobra.Command {
	var asDot bool

	cmd := &cobra.Command{
		Use:   "route [FROM] [TO]",
		Short: "Print the shortest travel time between two stations",
		Long: "Print the shortest travel time between two stations and the stations on the way.\n" +
			"Missing station names are read from standard input.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			from, to, err := resolveEnds(g, cmd.InOrStdin(), cmd.OutOrStdout(), args)
			if err != nil {
				return err
			}

			pf, err := dijkstra.NewPathFinder(g, dijkstra.WithFrontier(a.cfg.FrontierStrategy()))
			if err != nil {
				return err
			}
			res, err := pf.Route(from, to)
			switch {
			case errors.Is(err, core.ErrVertexNotFound):
				return fmt.Errorf("%s (%w)", notFoundMsg, err)
			case errors.Is(err, dijkstra.ErrUnreachable):
				return fmt.Errorf("there is no route between %s and %s: %w", from, to, err)
			case err != nil:
				return err
			}

			a.logger.WithFields(logrus.Fields{
				"from":     from,
				"to":       to,
				"distance": res.Distance,
				"settled":  res.Settled,
				"frontier": a.cfg.FrontierStrategy().String(),
			}).Info("route found")

			out := cmd.OutOrStdout()
			if asDot {
				src, err := dot.Render(g, dot.WithHighlight(res.Names()), dot.WithGraphAttr("rankdir", "LR"))
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, src)
				return err
			}

			fmt.Fprintf(out, "The shortest travel time between %s and %s is %d minutes.\n", from, to, res.Distance)
			fmt.Fprintf(out, "Route (%d stops): %s\n", res.Hops(), strings.Join(res.Names(), " -> "))

			return nil
		},
	}
	cmd.Flags().BoolVar(&asDot, "dot", false, "print the network as DOT with the route highlighted")

	return cmd
}

// resolveEnds takes FROM and TO from args and prompts for whichever is missing.
// Each name is checked against g as soon as it is known, so a bad FROM stops
// before TO is asked for.
func resolveEnds(g *core.Graph, in io.Reader, out io.Writer, args []string) (string, string, error) {
	ends := make([]string, 2)
	copy(ends, args)

	reader := bufio.NewReader(in)
	for i, prompt := range []string{promptFrom, promptTo} {
		if ends[i] == "" {
			fmt.Fprint(out, prompt)
			text, err := reader.ReadString('\n')
			text = strings.TrimSpace(text)
			if text == "" {
				if err != nil && !errors.Is(err, io.EOF) {
					return "", "", fmt.Errorf("reading station name: %w", err)
				}
				return "", "", errNoInput
			}
			ends[i] = text
		}
		if !g.HasVertex(ends[i]) {
			return "", "", fmt.Errorf("%s (%w: %q)", notFoundMsg, core.ErrVertexNotFound, ends[i])
		}
	}

	return ends[0], ends[1], nil
}
