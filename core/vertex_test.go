// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transit/core"
)

func TestVertex_Identity(t *testing.T) {
	a := core.NewVertex("Central")
	b := core.NewVertex("Central")
	c := core.NewVertex("Harbour")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "Central", a.String())

	var nilV *core.Vertex
	assert.True(t, nilV.Equal(nil))
	assert.False(t, nilV.Equal(a))
	assert.False(t, a.Equal(nil))
	assert.Equal(t, "", nilV.Name())
}

func TestVertexState(t *testing.T) {
	var s core.VertexState
	s.Reset()

	assert.False(t, s.IsMarked())
	assert.Equal(t, 0, s.Level())
	assert.Equal(t, core.Infinity, s.Distance())

	s.Mark()
	s.SetLevel(3)
	s.SetDistance(42)
	assert.True(t, s.IsMarked())
	assert.Equal(t, 3, s.Level())
	assert.Equal(t, int64(42), s.Distance())

	s.Unmark()
	assert.False(t, s.IsMarked())

	s.Reset()
	assert.Equal(t, core.Infinity, s.Distance())
}

func TestStateTable(t *testing.T) {
	table := core.NewStateTable(3)
	require.Equal(t, 3, table.Len())
	for i := 0; i < table.Len(); i++ {
		require.Equal(t, core.Infinity, table.At(i).Distance())
	}

	table.At(1).Mark()
	table.At(1).SetDistance(5)
	require.True(t, table.At(1).IsMarked())
	require.False(t, table.At(0).IsMarked())

	table.Reset()
	require.False(t, table.At(1).IsMarked())
	require.Equal(t, core.Infinity, table.At(1).Distance())

	require.Equal(t, 0, core.NewStateTable(-2).Len())
}
