package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRowsRejectsNonSquare(t *testing.T) {
	_, err := FromRows([][]CellState{
		{Walkable, Walkable},
		{Walkable},
	})
	require.Error(t, err)
}

func TestGridSetAt(t *testing.T) {
	g := New(4, Unknown)
	g.Set(1, 2, Wall)
	assert.Equal(t, Wall, g.At(1, 2))
	assert.False(t, g.Walkable(1, 2))
}

func TestRegionOfAndBounds(t *testing.T) {
	reg := RegionOf(Cell{Row: 17, Col: 5}, 8)
	assert.Equal(t, Region{RR: 2, RC: 0}, reg)

	r0, c0, r1, c1 := reg.Bounds(8)
	assert.Equal(t, 16, r0)
	assert.Equal(t, 0, c0)
	assert.Equal(t, 24, r1)
	assert.Equal(t, 8, c1)
}

func TestRegionAdjacent8(t *testing.T) {
	a := Region{RR: 1, RC: 1}
	assert.True(t, a.Adjacent8(Region{RR: 2, RC: 2}))
	assert.True(t, a.Adjacent8(Region{RR: 1, RC: 1}))
	assert.False(t, a.Adjacent8(Region{RR: 3, RC: 1}))
}

func TestDiagonalSqueezeRule(t *testing.T) {
	// (1,1) and (2,2) walkable, but (1,2) is a wall: squeeze blocks the
	// diagonal connection, scenario 4 of §8.
	g := New(4, Wall)
	g.Set(1, 1, Walkable)
	g.Set(2, 2, Walkable)
	g.Set(2, 1, Walkable)
	// (1,2) stays Wall.

	assert.False(t, DiagonalSqueezeOK(g, 1, 1, 1, 1))
	assert.False(t, Connected8(g, Cell{1, 1}, Cell{2, 2}))

	g.Set(1, 2, Walkable)
	assert.True(t, DiagonalSqueezeOK(g, 1, 1, 1, 1))
	assert.True(t, Connected8(g, Cell{1, 1}, Cell{2, 2}))
}

func TestConnected8Axial(t *testing.T) {
	g := New(4, Walkable)
	assert.True(t, Connected8(g, Cell{1, 1}, Cell{1, 2}))
}

func TestStepCost(t *testing.T) {
	assert.Equal(t, 1.0, StepCost(Cell{0, 0}, Cell{0, 1}))
	assert.InDelta(t, 1.41421356, StepCost(Cell{0, 0}, Cell{1, 1}), 1e-6)
}
