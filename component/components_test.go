package component

import (
	"testing"

	"github.com/arl/hpaexplore/grid"
	"github.com/stretchr/testify/assert"
)

func TestComputeSingleComponent(t *testing.T) {
	known := grid.New(8, grid.Walkable)
	colored := NewColored(8)
	reg := grid.Region{RR: 0, RC: 0}

	comps := Compute(known, colored, reg, 8)
	assert.Len(t, comps, 1)
	assert.Len(t, comps[0].Cells, 64)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			assert.Equal(t, 0, colored.At(r, c))
		}
	}
}

func TestComputeRespectsSqueeze(t *testing.T) {
	known := grid.New(8, grid.Wall)
	known.Set(1, 1, grid.Walkable)
	known.Set(2, 2, grid.Walkable)
	// (1,2) and (2,1) both walls: the diagonal connection is squeezed out.
	reg := grid.Region{RR: 0, RC: 0}
	colored := NewColored(8)

	comps := Compute(known, colored, reg, 8)
	assert.Len(t, comps, 2, "squeeze rule must keep (1,1) and (2,2) in separate components")
}

func TestComputeDiagonalAllowedWhenUnsqueezed(t *testing.T) {
	known := grid.New(8, grid.Wall)
	known.Set(1, 1, grid.Walkable)
	known.Set(2, 2, grid.Walkable)
	known.Set(1, 2, grid.Walkable)
	known.Set(2, 1, grid.Walkable)
	reg := grid.Region{RR: 0, RC: 0}
	colored := NewColored(8)

	comps := Compute(known, colored, reg, 8)
	assert.Len(t, comps, 1)
}

func TestComputeUnknownCellsUnassigned(t *testing.T) {
	known := grid.New(8, grid.Unknown)
	known.Set(0, 0, grid.Walkable)
	colored := NewColored(8)
	reg := grid.Region{RR: 0, RC: 0}

	Compute(known, colored, reg, 8)
	assert.Equal(t, 0, colored.At(0, 0))
	assert.Equal(t, Unassigned, colored.At(1, 1))
}

func TestComputeStaysWithinRegion(t *testing.T) {
	known := grid.New(16, grid.Walkable)
	colored := NewColored(16)

	comps0 := Compute(known, colored, grid.Region{RR: 0, RC: 0}, 8)
	comps1 := Compute(known, colored, grid.Region{RR: 1, RC: 1}, 8)

	assert.Len(t, comps0, 1)
	assert.Len(t, comps1, 1)
	assert.Len(t, comps0[0].Cells, 64)
	assert.Len(t, comps1[0].Cells, 64)
}
