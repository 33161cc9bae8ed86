// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transit/core"
	"github.com/katalvlaran/transit/internal/config"
	"github.com/katalvlaran/transit/stations"
)

const appName = "transit"

// app carries the resolved settings shared by every subcommand.
type app struct {
	in io.Reader

	cfgFile   string
	dataFile  string
	frontier  string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *logrus.Entry
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Shortest travel times and traversals over a station network",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML config file")
	flags.StringVar(&a.dataFile, "data", "", "station file (default \"stations.txt\")")
	flags.StringVar(&a.frontier, "frontier", "", "path finder frontier: scan or heap")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warning, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newRouteCmd(a),
		newNeighborsCmd(a),
		newBFSCmd(a),
		newDFSCmd(a),
		newStatsCmd(a),
		newDotCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
	)

	return root
}

// setup resolves the config file, applies flag overrides, validates the
// result and builds the root logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgFile != "" {
		loaded, err := config.Load(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataFile = a.dataFile
	}
	if flags.Changed("frontier") {
		cfg.Frontier = a.frontier
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rootLogger := cfg.NewLogger()
	rootLogger.SetOutput(cmd.ErrOrStderr())
	a.cfg = cfg
	a.logger = rootLogger.WithFields(logrus.Fields{
		"app": appName,
		"cmd": cmd.Name(),
	})

	return nil
}

// loadGraph reads the configured station file.
func (a *app) loadGraph() (*core.Graph, error) {
	a.logger.WithField("file", a.cfg.DataFile).Debug("loading station file")

	return stations.Load(a.cfg.DataFile, stations.WithLogger(a.logger))
}
