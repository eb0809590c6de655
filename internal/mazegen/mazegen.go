package mazegen

import (
	"math/rand"

	"github.com/arl/hpaexplore/grid"
)

// room is a candidate rectangle of cells to carve as Walkable.
type room struct {
	r0, c0, r1, c1 int // half-open [r0,r1) x [c0,c1)
}

func (rm room) center() grid.Cell {
	return grid.Cell{Row: (rm.r0 + rm.r1) / 2, Col: (rm.c0 + rm.c1) / 2}
}

// Generate builds a size×size ground-truth grid (§6's "ground-truth grid
// format") consisting of randomly placed rectangular rooms connected by
// L-shaped corridors, with every other cell WALL. seed drives the RNG, so
// the same seed always reproduces the same grid.
func Generate(size, regionSize int, seed int64) *grid.Grid {
	g := grid.New(size, grid.Wall)
	rng := rand.New(rand.NewSource(seed))

	rooms := placeRooms(g, rng, size)
	for i := 1; i < len(rooms); i++ {
		carveCorridor(g, rooms[i-1].center(), rooms[i].center())
	}
	return g
}

// placeRooms scatters non-overlapping rectangular rooms across the grid
// and carves each one Walkable, returning them in placement order.
func placeRooms(g *grid.Grid, rng *rand.Rand, size int) []room {
	const (
		minRoomSize = 4
		maxRoomSize = 9
	)
	attempts := size * 2

	var rooms []room
	for i := 0; i < attempts && len(rooms) < size/6+2; i++ {
		w := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		h := minRoomSize + rng.Intn(maxRoomSize-minRoomSize+1)
		if w >= size-2 || h >= size-2 {
			continue
		}
		c0 := 1 + rng.Intn(size-w-2)
		r0 := 1 + rng.Intn(size-h-2)
		cand := room{r0: r0, c0: c0, r1: r0 + h, c1: c0 + w}
		if overlapsAny(cand, rooms) {
			continue
		}
		rooms = append(rooms, cand)
		carveRoom(g, cand)
	}
	return rooms
}

func overlapsAny(cand room, rooms []room) bool {
	const margin = 1
	for _, rm := range rooms {
		if cand.r0-margin < rm.r1 && rm.r0-margin < cand.r1 &&
			cand.c0-margin < rm.c1 && rm.c0-margin < cand.c1 {
			return true
		}
	}
	return false
}

func carveRoom(g *grid.Grid, rm room) {
	for r := rm.r0; r < rm.r1; r++ {
		for c := rm.c0; c < rm.c1; c++ {
			g.Set(r, c, grid.Walkable)
		}
	}
}

// carveCorridor connects a to b with an L-shaped one-cell-wide walkable
// path: horizontal run from a's column to b's column, then vertical run
// to b's row (or the reverse, chosen by coin flip via a's own coordinates
// to keep the generator deterministic for a given seed).
func carveCorridor(g *grid.Grid, a, b grid.Cell) {
	if (a.Row+a.Col)%2 == 0 {
		carveHorizontal(g, a.Row, a.Col, b.Col)
		carveVertical(g, b.Col, a.Row, b.Row)
		return
	}
	carveVertical(g, a.Col, a.Row, b.Row)
	carveHorizontal(g, b.Row, a.Col, b.Col)
}

func carveHorizontal(g *grid.Grid, r, c0, c1 int) {
	if c1 < c0 {
		c0, c1 = c1, c0
	}
	for c := c0; c <= c1; c++ {
		g.Set(r, c, grid.Walkable)
	}
}

func carveVertical(g *grid.Grid, c, r0, r1 int) {
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	for r := r0; r <= r1; r++ {
		g.Set(r, c, grid.Walkable)
	}
}
