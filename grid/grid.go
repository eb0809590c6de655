package grid

import "fmt"

// CellState is the state of a single grid cell.
type CellState uint8

// Cell states. Walkable and Wall are ground-truth terminal states; Unknown
// only ever appears in a known map and transitions to one of the other two
// at most once per cell (monotone discovery, see UpdateKnown).
const (
	Walkable CellState = iota
	Wall
	Unknown
)

func (s CellState) String() string {
	switch s {
	case Walkable:
		return "walkable"
	case Wall:
		return "wall"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Cell is a (row, col) grid coordinate, origin at top-left.
type Cell struct {
	Row, Col int
}

// Region identifies a REGION_SIZE×REGION_SIZE tile by its region-row and
// region-col indices (not cell coordinates).
type Region struct {
	RR, RC int
}

// Offsets8 lists the eight 8-connected neighbor deltas, axial first then
// diagonal, in the order the teacher's flood fill and edge scans prefer:
// N, S, E, W, NE, NW, SE, SW.
var Offsets8 = [8][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1},
	{-1, 1}, {-1, -1}, {1, 1}, {1, -1},
}

// Grid is a fixed-size SIZE×SIZE dense array of cell states. It backs both
// the read-only ground-truth maze and the agent's known map.
type Grid struct {
	size  int
	cells []CellState
}

// New returns a size×size grid with every cell set to fill.
func New(size int, fill CellState) *Grid {
	g := &Grid{size: size, cells: make([]CellState, size*size)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// FromRows builds a Grid from a dense row-major [][]CellState. All rows must
// have the same length as the grid is square.
func FromRows(rows [][]CellState) (*Grid, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("grid: empty input")
	}
	for _, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("grid: non-square input, row has %d cols, want %d", len(row), size)
		}
	}
	g := &Grid{size: size, cells: make([]CellState, size*size)}
	for r, row := range rows {
		copy(g.cells[r*size:(r+1)*size], row)
	}
	return g, nil
}

// Size returns the grid's side length.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (r, c) lies within the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.size && c >= 0 && c < g.size
}

func (g *Grid) index(r, c int) int { return r*g.size + c }

// At returns the state of cell (r, c). It does not check bounds: an
// out-of-range row panics, while an out-of-range column may silently alias
// a cell of a neighboring row. Callers that may address an out-of-grid cell
// check InBounds first (Walkable does).
func (g *Grid) At(r, c int) CellState {
	return g.cells[g.index(r, c)]
}

// AtCell is At taking a Cell.
func (g *Grid) AtCell(c Cell) CellState { return g.At(c.Row, c.Col) }

// Set assigns the state of cell (r, c).
func (g *Grid) Set(r, c int, s CellState) {
	g.cells[g.index(r, c)] = s
}

// Walkable reports whether (r, c) is in bounds and Walkable.
func (g *Grid) Walkable(r, c int) bool {
	return g.InBounds(r, c) && g.At(r, c) == Walkable
}

// WalkableCell is Walkable taking a Cell.
func (g *Grid) WalkableCell(c Cell) bool { return g.Walkable(c.Row, c.Col) }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{size: g.size, cells: make([]CellState, len(g.cells))}
	copy(cp.cells, g.cells)
	return cp
}

// RegionOf returns the region containing cell c for the given region size.
func RegionOf(c Cell, regionSize int) Region {
	return Region{RR: c.Row / regionSize, RC: c.Col / regionSize}
}

// Bounds returns the half-open cell range [r0,r1)×[c0,c1) tiled by region
// reg at the given region size.
func (reg Region) Bounds(regionSize int) (r0, c0, r1, c1 int) {
	r0 = reg.RR * regionSize
	c0 = reg.RC * regionSize
	return r0, c0, r0 + regionSize, c0 + regionSize
}

// Adjacent8 reports whether two regions are 8-adjacent (including equal,
// which is not useful to callers but kept simple and total).
func (reg Region) Adjacent8(other Region) bool {
	dr := reg.RR - other.RR
	dc := reg.RC - other.RC
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1
}

// DiagonalSqueezeOK implements the diagonal-squeeze rule: a diagonal step
// from (r,c) to (r+dr,c+dc), |dr|=|dc|=1, is only valid if both intervening
// axial neighbors (r,c+dc) and (r+dr,c) are Walkable in g. This rule is
// authoritative everywhere a diagonal connection is considered: component
// flood fill, abstract-edge construction, and within-component A*.
func DiagonalSqueezeOK(g *Grid, r, c, dr, dc int) bool {
	return g.Walkable(r, c+dc) && g.Walkable(r+dr, c)
}

// Connected8 reports whether cell a and its 8-neighbor b (b = a + delta,
// delta one of Offsets8) are connected, applying the diagonal-squeeze rule
// for diagonal deltas and admitting axial deltas unconditionally. Both
// cells must already be known Walkable; Connected8 only adjudicates the
// squeeze, it does not check cell states itself beyond the squeeze
// neighbors.
func Connected8(g *Grid, a, b Cell) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 || dc == 0 {
		return true // axial
	}
	return DiagonalSqueezeOK(g, a.Row, a.Col, dr, dc)
}

// StepCost returns the ground distance between axially or diagonally
// adjacent cells: 1 for axial, √2 for diagonal.
func StepCost(a, b Cell) float64 {
	if a.Row == b.Row || a.Col == b.Col {
		return 1
	}
	return sqrt2
}

const sqrt2 = 1.4142135623730951
