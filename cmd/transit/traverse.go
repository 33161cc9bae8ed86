// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transit/bfs"
	"github.com/katalvlaran/transit/dfs"
)

func newNeighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors STATION",
		Short: "List the stations one hop away and their travel times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			seq, err := g.Neighbors(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for v := range seq {
				w, err := g.Edge(args[0], v.Name())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%d\n", v, w)
			}

			return nil
		},
	}
}

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "bfs STATION",
		Short: "List stations by number of stops from STATION",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := bfs.BFS(g, args[0],
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range res.Order {
				fmt.Fprintf(out, "%d\t%s\n", res.Level[v.Name()], v)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many stops (0 = unlimited)")

	return cmd
}

func newDFSCmd(a *app) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "dfs STATION",
		Short: "List stations in depth-first order from STATION",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			res, err := dfs.DFS(g, args[0],
				dfs.WithContext(cmd.Context()),
				dfs.WithMaxDepth(maxDepth),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range res.Order {
				fmt.Fprintf(out, "%d\t%s\n", res.Depth[v.Name()], v)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "stop below this depth (-1 = unlimited)")

	return cmd
}
