// SPDX-License-Identifier: MIT

package stations_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/core"
	"github.com/katalvlaran/transit/dijkstra"
	"github.com/katalvlaran/transit/stations"
)

func TestLoad_Fixture(t *testing.T) {
	g, err := stations.Load(filepath.Join("testdata", "stations.txt"))
	require.NoError(t, err)

	require.Equal(t, "stations", g.Name())
	names := make([]string, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		names = append(names, v.Name())
	}
	require.Equal(t, []string{"Central", "Market", "Harbour", "Kendall", "Airport"}, names)
	require.Equal(t, 4, g.EdgeCount())

	w, err := g.Edge("Harbour", "Central")
	require.NoError(t, err)
	require.Equal(t, int64(100), w)

	deg, err := g.Degree("Airport")
	require.NoError(t, err)
	require.Zero(t, deg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := stations.Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Malformed(t *testing.T) {
	g, err := stations.Load(filepath.Join("testdata", "malformed.txt"))
	require.Nil(t, g)
	require.ErrorIs(t, err, stations.ErrMalformed)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 6)

	msg := err.Error()
	for _, want := range []string{
		"line 1: neighbor line before any station",
		"line 5: expected a space",
		`line 6: unknown station "Nowhere"`,
		"line 7: travel time 0 must be at least 1",
		`line 8: station "Market" lists itself`,
		`line 9: duplicate station "Central"`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestParse_ForwardReferences(t *testing.T) {
	// Central names Harbour before Harbour's own block.
	src := "Central\n4 Harbour\nHarbour\n"
	g, err := stations.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.HasEdge("Harbour", "Central"))
}

func TestParse_Whitespace(t *testing.T) {
	src := strings.Join([]string{
		"Park St  \t",
		"12 Downtown Crossing\r",
		"   indented lines are ignored",
		"",
		"\t# so are tabs",
		"Downtown Crossing",
	}, "\n")
	g, err := stations.Parse(strings.NewReader(src), stations.WithGraphName("red"))
	require.NoError(t, err)
	require.Equal(t, "red", g.Name())

	w, err := g.Edge("Park St", "Downtown Crossing")
	require.NoError(t, err)
	require.Equal(t, int64(12), w, "multi-digit travel times")
}

func TestParse_Empty(t *testing.T) {
	g, err := stations.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, g.VertexCount())
}

func TestParse_BadWeights(t *testing.T) {
	for _, src := range []string{
		"A\n99999999999999999999 B\nB\n",
		"A\n9223372036854775807 B\nB\n",
		"A\n2147483648 B\nB\n",
		"A\n5\nB\n",
		"A\n5 \nB\n",
	} {
		_, err := stations.Parse(strings.NewReader(src))
		require.ErrorIs(t, err, stations.ErrMalformed, src)
	}
}

func TestParse_HeaviestLinkIsRoutable(t *testing.T) {
	src := fmt.Sprintf("A\n%d B\nB\n", core.MaxWeight)
	g, err := stations.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.HasEdge("A", "B"))

	d, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, core.MaxWeight, d)
}

func TestParse_LogsConflicts(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	src := "A\n5 B\nB\n7 A\n"
	g, err := stations.Parse(strings.NewReader(src), stations.WithLogger(logrus.NewEntry(logger)))
	require.NoError(t, err)

	w, err := g.Edge("A", "B")
	require.NoError(t, err)
	require.Equal(t, int64(7), w)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["from"] == "B" {
			warned = true
		}
	}
	require.True(t, warned)
	require.Equal(t, "station graph loaded", hook.LastEntry().Message)
	require.Equal(t, 1, hook.LastEntry().Data["edges"])
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := stations.Load(filepath.Join("testdata", "stations.txt"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, stations.Write(&buf, g))
	require.True(t, strings.HasPrefix(buf.String(), "# graph stations\nCentral\n5 Market\n"))

	back, err := stations.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, g.Matrix(), back.Matrix())
	require.Equal(t, g.EdgeCount(), back.EdgeCount())
}

func TestWrite_Unencodable(t *testing.T) {
	for _, name := range []string{"9 Elms", " Lead", "Trail ", "#hash", "Two\nLines"} {
		g := core.NewGraph()
		require.NoError(t, g.AddVertex(name))
		err := stations.Write(&bytes.Buffer{}, g)
		require.ErrorIs(t, err, stations.ErrUnencodable, "%q", name)
	}
}
