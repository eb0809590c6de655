package frontier

import (
	"testing"

	"github.com/arl/hpaexplore/component"
	"github.com/arl/hpaexplore/graphabs"
	"github.com/arl/hpaexplore/grid"
	"github.com/arl/hpaexplore/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFrontierCell(t *testing.T) {
	known := grid.New(8, grid.Walkable)
	known.Set(3, 3, grid.Unknown)

	assert.True(t, IsFrontierCell(known, grid.Cell{Row: 2, Col: 2}))
	assert.False(t, IsFrontierCell(known, grid.Cell{Row: 0, Col: 0}))

	known.Set(5, 5, grid.Wall)
	assert.False(t, IsFrontierCell(known, grid.Cell{Row: 5, Col: 5}), "a wall cell is never a frontier")
}

func TestDetectGroupsAdjacentFrontierCells(t *testing.T) {
	// A known 8x8 square of Walkable surrounded by Unknown: every cell on
	// the square's perimeter is a frontier, and since the perimeter is one
	// 8-connected ring they group into one blob.
	known := grid.New(12, grid.Unknown)
	for r := 2; r < 10; r++ {
		for c := 2; c < 10; c++ {
			known.Set(r, c, grid.Walkable)
		}
	}

	groups := Detect(known)
	require.Len(t, groups, 1)
	assert.Greater(t, groups[0].Size, 0)
}

func TestDetectSeparatesDistantGroups(t *testing.T) {
	known := grid.New(20, grid.Unknown)
	for r := 2; r < 5; r++ {
		for c := 2; c < 5; c++ {
			known.Set(r, c, grid.Walkable)
		}
	}
	for r := 14; r < 17; r++ {
		for c := 14; c < 17; c++ {
			known.Set(r, c, grid.Walkable)
		}
	}

	groups := Detect(known)
	assert.Len(t, groups, 2)
}

func TestSummarizeDiscardsFrontierNearAgent(t *testing.T) {
	known := grid.New(12, grid.Unknown)
	for r := 2; r < 10; r++ {
		for c := 2; c < 10; c++ {
			known.Set(r, c, grid.Walkable)
		}
	}
	colored := component.NewColored(12)
	g := graphabs.BuildFull(known, colored, 12)

	groups := Detect(known)
	require.Len(t, groups, 1)

	agent := groups[0].Points[0]
	targets := Summarize(groups, g, colored, 12, StrategyNearest, agent)
	assert.Empty(t, targets, "the only group's nearest point is the agent itself, so it must be discarded")
}

func TestSummarizeTagsNodeContainingCell(t *testing.T) {
	known := grid.New(12, grid.Unknown)
	for r := 2; r < 10; r++ {
		for c := 2; c < 10; c++ {
			known.Set(r, c, grid.Walkable)
		}
	}
	colored := component.NewColored(12)
	g := graphabs.BuildFull(known, colored, 12)

	groups := Detect(known)
	agent := grid.Cell{Row: 0, Col: 0}
	targets := Summarize(groups, g, colored, 12, StrategyCentroid, agent)
	require.Len(t, targets, 1)

	id, ok := graphabs.Locate(colored, 12, targets[0].Cell)
	require.True(t, ok)
	assert.Equal(t, id, targets[0].Node)
}

func TestFallbackDetectsWalkableCellsNearUnknown(t *testing.T) {
	known := grid.New(8, grid.Walkable)
	known.Set(0, 0, grid.Unknown)
	colored := component.NewColored(8)
	g := graphabs.BuildFull(known, colored, 8)

	targets := Fallback(known, g)
	require.NotEmpty(t, targets)
	for _, tgt := range targets {
		assert.True(t, IsFrontierCell(known, tgt.Cell))
	}
}

func TestSelectExcludesRecentHistory(t *testing.T) {
	known := grid.New(8, grid.Walkable)
	colored := component.NewColored(8)
	g := graphabs.BuildFull(known, colored, 8)

	near := grid.Cell{Row: 0, Col: 2}
	far := grid.Cell{Row: 7, Col: 7}
	candidates := []Target{
		{Cell: near, Node: mustLocate(t, colored, 8, near)},
		{Cell: far, Node: mustLocate(t, colored, 8, far)},
	}

	agent := grid.Cell{Row: 0, Col: 0}
	history := []grid.Cell{near}

	chosen, ok := Select(candidates, agent, known, g, colored, history, 5, planner.Manhattan)
	require.True(t, ok)
	assert.Equal(t, far, chosen.Cell, "the nearer candidate is excluded by recent history, so the farther one wins")
}

func TestSelectRelaxesWhenAllExcluded(t *testing.T) {
	known := grid.New(8, grid.Walkable)
	colored := component.NewColored(8)
	g := graphabs.BuildFull(known, colored, 8)

	only := grid.Cell{Row: 3, Col: 3}
	candidates := []Target{{Cell: only, Node: mustLocate(t, colored, 8, only)}}

	agent := grid.Cell{Row: 0, Col: 0}
	history := []grid.Cell{only}

	chosen, ok := Select(candidates, agent, known, g, colored, history, 5, planner.Manhattan)
	require.True(t, ok, "with every candidate excluded, Select must relax back to the full candidate set")
	assert.Equal(t, only, chosen.Cell)
}

func mustLocate(t *testing.T, colored *component.Colored, regionSize int, c grid.Cell) graphabs.NodeID {
	t.Helper()
	id, ok := graphabs.Locate(colored, regionSize, c)
	require.True(t, ok)
	return id
}
