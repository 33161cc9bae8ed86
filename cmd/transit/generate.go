// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transit/builder"
	"github.com/katalvlaran/transit/core"
	"github.com/katalvlaran/transit/stations"
)

// generators maps --kind to a constructor over size stations.
var generators = map[string]func(size int, p float64) builder.Constructor{
	"line":     func(n int, _ float64) builder.Constructor { return builder.Line(n) },
	"loop":     func(n int, _ float64) builder.Constructor { return builder.Loop(n) },
	"hub":      func(n int, _ float64) builder.Constructor { return builder.Hub(n) },
	"grid":     func(n int, _ float64) builder.Constructor { return builder.Grid(n, n) },
	"complete": func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"random":   builder.RandomSparse,
}

func generatorKinds() string {
	kinds := make([]string, 0, len(generators))
	for k := range generators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	return strings.Join(kinds, "|")
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		kind       string
		size       int
		seed       int64
		prob       float64
		minWeight  int64
		maxWeight  int64
		names      bool
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic station file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, ok := generators[kind]
			if !ok {
				return fmt.Errorf("unknown --kind %q, want one of %s", kind, generatorKinds())
			}
			if minWeight < core.MinWeight || maxWeight < minWeight || maxWeight > core.MaxWeight {
				return fmt.Errorf("travel times must satisfy %d <= --min-weight <= --max-weight <= %d",
					core.MinWeight, core.MaxWeight)
			}

			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithUniformWeight(minWeight, maxWeight),
			}
			if names {
				bopts = append(bopts, builder.WithStationNames(seed))
			}
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithName(fmt.Sprintf("%s-%d", kind, size))},
				bopts,
				gen(size, prob),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				out = f
			}
			if err = stations.Write(out, g); err != nil {
				return err
			}

			a.logger.WithFields(logrus.Fields{
				"kind":     kind,
				"stations": g.VertexCount(),
				"edges":    g.EdgeCount(),
				"seed":     seed,
			}).Info("network generated")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kind, "kind", "line", "topology: "+generatorKinds())
	flags.IntVar(&size, "size", 5, "number of stations (grid: side length)")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.Float64Var(&prob, "p", 0.3, "link probability for --kind random")
	flags.Int64Var(&minWeight, "min-weight", 1, "smallest travel time")
	flags.Int64Var(&maxWeight, "max-weight", 9, "largest travel time")
	flags.BoolVar(&names, "names", false, "use generated street names instead of S0, S1, ...")
	flags.StringVarP(&outputFile, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
