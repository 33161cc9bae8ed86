// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transit/dfs"
	"github.com/katalvlaran/transit/dot"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the station network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			forest, err := dfs.DFS(g, "", dfs.WithFullTraversal(), dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			isolated, maxDeg, busiest := 0, 0, ""
			for _, v := range g.Vertices() {
				d, err := g.Degree(v.Name())
				if err != nil {
					return err
				}
				if d == 0 {
					isolated++
				}
				if d > maxDeg {
					maxDeg, busiest = d, v.Name()
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "network:     %s\n", g.Name())
			fmt.Fprintf(out, "stations:    %d\n", g.VertexCount())
			fmt.Fprintf(out, "connections: %d\n", g.EdgeCount())
			fmt.Fprintf(out, "components:  %d\n", len(forest.Roots))
			fmt.Fprintf(out, "isolated:    %d\n", isolated)
			if busiest != "" {
				fmt.Fprintf(out, "busiest:     %s (%d connections)\n", busiest, maxDeg)
			}

			return nil
		},
	}
}

func newDotCmd(a *app) *cobra.Command {
	var rankdir string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the station network in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			src, err := dot.Render(g, dot.WithGraphAttr("rankdir", rankdir))
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), src)

			return err
		},
	}
	cmd.Flags().StringVar(&rankdir, "rankdir", "LR", "Graphviz rankdir (LR, TB, ...)")

	return cmd
}
