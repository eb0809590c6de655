package explorer

import (
	"testing"

	"github.com/arl/hpaexplore/grid"
	"github.com/stretchr/testify/assert"
)

func TestRotationPathChoosesShorterArcTiesClockwise(t *testing.T) {
	// N -> S is equidistant (4) either way; ties go clockwise (via E).
	path := rotationPath(grid.N, grid.S)
	assert.Equal(t, []grid.Heading{grid.N, grid.NE, grid.E, grid.SE, grid.S}, path)
}

func TestRotationPathPrefersCounterClockwiseWhenShorter(t *testing.T) {
	// N -> NW is 1 step counter-clockwise, 7 clockwise.
	path := rotationPath(grid.N, grid.NW)
	assert.Equal(t, []grid.Heading{grid.N, grid.NW}, path)
}

func TestRotationPathSameHeadingIsTrivial(t *testing.T) {
	path := rotationPath(grid.E, grid.E)
	assert.Equal(t, []grid.Heading{grid.E}, path)
}

func TestHeadingFromDelta(t *testing.T) {
	cases := []struct {
		dr, dc int
		want   grid.Heading
	}{
		{-1, 0, grid.N},
		{-1, 1, grid.NE},
		{0, 1, grid.E},
		{1, 1, grid.SE},
		{1, 0, grid.S},
		{1, -1, grid.SW},
		{0, -1, grid.W},
		{-1, -1, grid.NW},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, headingFromDelta(c.dr, c.dc))
	}
}
