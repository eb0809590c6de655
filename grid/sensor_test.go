package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleCellsAlwaysIncludesSelf(t *testing.T) {
	truth := New(5, Walkable)
	cells := VisibleCells(truth, Cell{2, 2}, N, 0)
	assert.Equal(t, []Cell{{2, 2}}, cells)
}

func TestVisibleCellsBlockedByWall(t *testing.T) {
	truth := New(5, Walkable)
	truth.Set(2, 3, Wall) // directly east of (2,2)
	cells := VisibleCells(truth, Cell{2, 2}, E, 4)

	var contains4 bool
	for _, c := range cells {
		if c == (Cell{2, 4}) {
			contains4 = true
		}
	}
	assert.False(t, contains4, "cell behind the wall must not be visible")

	var contains3 bool
	for _, c := range cells {
		if c == (Cell{2, 3}) {
			contains3 = true
		}
	}
	assert.True(t, contains3, "the wall cell itself is a valid sensor reading")
}

func TestBresenhamLineEndpoints(t *testing.T) {
	line := BresenhamLine(Cell{0, 0}, Cell{3, 3})
	assert.Equal(t, Cell{0, 0}, line[0])
	assert.Equal(t, Cell{3, 3}, line[len(line)-1])
}

func TestSensorSoundnessProperty(t *testing.T) {
	truth := New(9, Walkable)
	for r := 0; r < 9; r++ {
		truth.Set(r, 5, Wall)
	}
	truth.Set(5, 5, Walkable) // a single gap in the wall row

	cells := VisibleCells(truth, Cell{4, 2}, E, 8)
	for _, c := range cells {
		line := BresenhamLine(Cell{4, 2}, c)
		for _, mid := range line[1 : len(line)-1] {
			assert.NotEqual(t, Wall, truth.At(mid.Row, mid.Col),
				"sensor soundness: %v must not see through %v", c, mid)
		}
	}
}
