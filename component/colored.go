package component

import "github.com/arl/hpaexplore/grid"

// Unassigned is the colored-grid value of a cell with no component (either
// Unknown, or a Wall).
const Unassigned = -1

// Colored is the SIZE×SIZE auxiliary array mapping each cell to the local
// id of its component within its region, or Unassigned.
type Colored struct {
	size int
	ids  []int
}

// NewColored returns a size×size colored grid with every cell Unassigned.
func NewColored(size int) *Colored {
	c := &Colored{size: size, ids: make([]int, size*size)}
	for i := range c.ids {
		c.ids[i] = Unassigned
	}
	return c
}

func (c *Colored) index(r, col int) int { return r*c.size + col }

// At returns the component id colored at (r, col).
func (c *Colored) At(r, col int) int { return c.ids[c.index(r, col)] }

// AtCell is At taking a grid.Cell.
func (c *Colored) AtCell(cell grid.Cell) int { return c.At(cell.Row, cell.Col) }

// Set assigns the component id of (r, col).
func (c *Colored) Set(r, col, id int) { c.ids[c.index(r, col)] = id }

// ClearRegion resets every cell of region reg to Unassigned.
func (c *Colored) ClearRegion(reg grid.Region, regionSize int) {
	r0, c0, r1, c1 := reg.Bounds(regionSize)
	for r := r0; r < r1; r++ {
		for col := c0; col < c1; col++ {
			c.Set(r, col, Unassigned)
		}
	}
}
