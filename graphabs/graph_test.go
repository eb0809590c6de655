package graphabs

import (
	"testing"

	"github.com/arl/hpaexplore/component"
	"github.com/arl/hpaexplore/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFullTwoRegionsConnected(t *testing.T) {
	known := grid.New(16, grid.Walkable)
	colored := component.NewColored(16)
	g := BuildFull(known, colored, 8)

	require.Equal(t, 4, g.Len())

	u, ok := Locate(colored, 8, grid.Cell{Row: 7, Col: 0})
	require.True(t, ok)
	v, ok := Locate(colored, 8, grid.Cell{Row: 8, Col: 0})
	require.True(t, ok)

	nu, ok := g.Node(u)
	require.True(t, ok)
	tr, ok := nu.Neighbors[v]
	require.True(t, ok, "regions sharing an open boundary must be connected")
	assert.Equal(t, grid.Cell{Row: 7, Col: 0}, tr.From)
	assert.Equal(t, grid.Cell{Row: 8, Col: 0}, tr.To)

	nv := g.Nodes()[v]
	back, ok := nv.Neighbors[u]
	require.True(t, ok, "edges must be symmetric")
	assert.Equal(t, tr.To, back.From)
	assert.Equal(t, tr.From, back.To)
}

func TestBuildFullWalledOffRegionsDisconnected(t *testing.T) {
	known := grid.New(16, grid.Walkable)
	for c := 0; c < 16; c++ {
		known.Set(8, c, grid.Wall)
	}
	colored := component.NewColored(16)
	g := BuildFull(known, colored, 8)

	u, _ := Locate(colored, 8, grid.Cell{Row: 0, Col: 0})
	v, _ := Locate(colored, 8, grid.Cell{Row: 8, Col: 0})
	nu := g.Nodes()[u]
	_, connected := nu.Neighbors[v]
	assert.False(t, connected)
}

func TestLocateUnknownCellFails(t *testing.T) {
	known := grid.New(8, grid.Unknown)
	colored := component.NewColored(8)
	BuildFull(known, colored, 8)

	_, ok := Locate(colored, 8, grid.Cell{Row: 0, Col: 0})
	assert.False(t, ok)
}

func TestRepairMatchesFullRebuild(t *testing.T) {
	known := grid.New(16, grid.Unknown)
	colored := component.NewColored(16)
	g := BuildFull(known, colored, 8)
	assert.Equal(t, 0, g.Len())

	newly := []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 8, Col: 8}}
	for _, c := range newly {
		known.Set(c.Row, c.Col, grid.Walkable)
	}
	Repair(g, known, colored, newly)

	colored2 := component.NewColored(16)
	full := BuildFull(known, colored2, 8)

	assert.Equal(t, full.Len(), g.Len())
	for id, n := range full.Nodes() {
		got, ok := g.Node(id)
		require.True(t, ok)
		assert.ElementsMatch(t, n.Cells, got.Cells)
		assert.Equal(t, len(n.Neighbors), len(got.Neighbors))
	}
}

func TestRepairNoNewCellsIsNoop(t *testing.T) {
	known := grid.New(8, grid.Walkable)
	colored := component.NewColored(8)
	g := BuildFull(known, colored, 8)

	before := g.Len()
	regions := Repair(g, known, colored, nil)
	assert.Nil(t, regions)
	assert.Equal(t, before, g.Len())
}
