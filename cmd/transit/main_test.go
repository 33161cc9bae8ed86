// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/core"
	"github.com/katalvlaran/transit/dijkstra"
	"github.com/katalvlaran/transit/stations"
)

var fixture = filepath.Join("testdata", "stations.txt")

// run executes the root command and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestRoute(t *testing.T) {
	out, err := run(t, "", "--data", fixture, "route", "Central", "Harbour")
	require.NoError(t, err)
	require.Equal(t,
		"The shortest travel time between Central and Harbour is 8 minutes.\n"+
			"Route (2 stops): Central -> Market -> Harbour\n",
		out)

	out, err = run(t, "", "--data", fixture, "--frontier", "heap", "route", "Kendall", "Harbour")
	require.NoError(t, err)
	require.Contains(t, out, "is 10 minutes.")
}

func TestRoute_Prompts(t *testing.T) {
	out, err := run(t, "Kendall\nMarket\n", "--data", fixture, "route")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, promptFrom+promptTo), out)
	require.Contains(t, out, "between Kendall and Market is 7 minutes.")

	out, err = run(t, "Market\n", "--data", fixture, "route", "Central")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, promptTo), out)

	_, err = run(t, "", "--data", fixture, "route")
	require.ErrorIs(t, err, errNoInput)
}

func TestRoute_UnknownStartStopsBeforeDestination(t *testing.T) {
	out, err := run(t, "Atlantis\nMarket\n", "--data", fixture, "route")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Contains(t, err.Error(), notFoundMsg)
	require.Contains(t, err.Error(), `"Atlantis"`)
	require.Equal(t, promptFrom, out)

	out, err = run(t, "Market\n", "--data", fixture, "route", "Atlantis")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Empty(t, out)

	out, err = run(t, "Atlantis\n", "--data", fixture, "route", "Central")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Equal(t, promptTo, out)
}

func TestRoute_Failures(t *testing.T) {
	_, err := run(t, "", "--data", fixture, "route", "Central", "Atlantis")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	require.Contains(t, err.Error(), notFoundMsg)

	_, err = run(t, "", "--data", fixture, "route", "Central", "Airport")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, err = run(t, "", "--data", filepath.Join(t.TempDir(), "none.txt"), "route", "A", "B")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = run(t, "", "--data", fixture, "--frontier", "fibonacci", "route", "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrUnknownFrontier)
}

func TestRoute_Dot(t *testing.T) {
	out, err := run(t, "", "--data", fixture, "route", "--dot", "Central", "Harbour")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, `graph "stations"`), out)
	require.Equal(t, 2, strings.Count(out, "penwidth=3"))
}

func TestNeighbors(t *testing.T) {
	out, err := run(t, "", "--data", fixture, "neighbors", "Central")
	require.NoError(t, err)
	require.Equal(t, "Market\t5\nHarbour\t100\nKendall\t2\n", out)

	_, err = run(t, "", "--data", fixture, "neighbors", "Atlantis")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestTraversals(t *testing.T) {
	out, err := run(t, "", "--data", fixture, "bfs", "Kendall")
	require.NoError(t, err)
	require.Equal(t, "0\tKendall\n1\tCentral\n2\tMarket\n2\tHarbour\n", out)

	out, err = run(t, "", "--data", fixture, "bfs", "--max-depth", "1", "Kendall")
	require.NoError(t, err)
	require.Equal(t, "0\tKendall\n1\tCentral\n", out)

	out, err = run(t, "", "--data", fixture, "dfs", "Kendall")
	require.NoError(t, err)
	require.Equal(t, "0\tKendall\n1\tCentral\n2\tMarket\n3\tHarbour\n", out)
}

func TestStats(t *testing.T) {
	out, err := run(t, "", "--data", fixture, "stats")
	require.NoError(t, err)
	require.Contains(t, out, "stations:    5\n")
	require.Contains(t, out, "connections: 4\n")
	require.Contains(t, out, "components:  2\n")
	require.Contains(t, out, "isolated:    1\n")
	require.Contains(t, out, "busiest:     Central (3 connections)\n")
}

func TestDot(t *testing.T) {
	out, err := run(t, "", "--data", fixture, "dot", "--rankdir", "TB")
	require.NoError(t, err)
	require.Contains(t, out, `rankdir="TB"`)
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "", "generate", "--kind", "loop", "--size", "4", "--seed", "3")
	require.NoError(t, err)

	g, err := stations.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())

	// Same seed, same file.
	again, err := run(t, "", "generate", "--kind", "loop", "--size", "4", "--seed", "3")
	require.NoError(t, err)
	require.Equal(t, out, again)

	path := filepath.Join(t.TempDir(), "grid.txt")
	_, err = run(t, "", "generate", "--kind", "grid", "--size", "3", "--names", "-o", path)
	require.NoError(t, err)
	route, err := run(t, "", "--data", path, "stats")
	require.NoError(t, err)
	require.Contains(t, route, "stations:    9\n")
	require.Contains(t, route, "connections: 12\n")

	_, err = run(t, "", "generate", "--kind", "spiral")
	require.Error(t, err)
	_, err = run(t, "", "generate", "--min-weight", "0")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	abs, err := filepath.Abs(fixture)
	require.NoError(t, err)
	cfgPath := filepath.Join(dir, "transit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("data_file: "+abs+"\nfrontier: heap\n"), 0o600))

	out, err := run(t, "", "--config", cfgPath, "route", "Central", "Harbour")
	require.NoError(t, err)
	require.Contains(t, out, "is 8 minutes.")

	// Flags win over the file.
	_, err = run(t, "", "--config", cfgPath, "--data", filepath.Join(dir, "none.txt"), "stats")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "", "--frontier", "heap", "--log-format", "json", "config")
	require.NoError(t, err)
	require.Equal(t,
		"data_file: stations.txt\nfrontier: heap\nlog_format: json\nlog_level: warning\n",
		out)

	// The printed settings load back as a config file.
	cfgPath := filepath.Join(t.TempDir(), "transit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(out), 0o600))
	again, err := run(t, "", "--config", cfgPath, "config")
	require.NoError(t, err)
	require.Equal(t, out, again)

	_, err = run(t, "", "config", "extra")
	require.Error(t, err)
}
