package component

import "github.com/arl/hpaexplore/grid"

// Component is a maximal 8-connected (squeeze-respecting) set of Walkable
// cells confined to a single region, identified by an integer local to
// that region.
type Component struct {
	Local grid.Region // the region this component belongs to
	ID    int         // local id, dense 0..k-1 in discovery order
	Cells []grid.Cell
}

// Compute runs an 8-connected flood fill (respecting the diagonal-squeeze
// rule, §4.3/§9(a)) over region reg of known, starting a new component
// from each unvisited Walkable cell in raster order. It returns the dense
// ordered list of components and writes their ids into colored (overlaying
// whatever was previously colored there — the caller is responsible for
// ClearRegion first when recomputing, per the incremental-repair
// contract).
//
// Cells outside reg, or not yet known Walkable, play no part: a region is
// only ever scanned against a single REGION_SIZE window, and Unknown cells
// remain Unassigned in colored.
func Compute(known *grid.Grid, colored *Colored, reg grid.Region, regionSize int) []Component {
	r0, c0, r1, c1 := reg.Bounds(regionSize)

	visited := make(map[grid.Cell]bool)
	var comps []Component
	nextID := 0

	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			start := grid.Cell{Row: r, Col: c}
			if !known.WalkableCell(start) || visited[start] {
				continue
			}

			id := nextID
			nextID++
			queue := []grid.Cell{start}
			visited[start] = true
			var cells []grid.Cell

			for qi := 0; qi < len(queue); qi++ {
				cur := queue[qi]
				cells = append(cells, cur)
				colored.Set(cur.Row, cur.Col, id)

				for _, d := range grid.Offsets8 {
					n := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
					if n.Row < r0 || n.Row >= r1 || n.Col < c0 || n.Col >= c1 {
						continue // stay within this region
					}
					if !known.WalkableCell(n) || visited[n] {
						continue
					}
					if !grid.Connected8(known, cur, n) {
						continue
					}
					visited[n] = true
					queue = append(queue, n)
				}
			}

			comps = append(comps, Component{Local: reg, ID: id, Cells: cells})
		}
	}

	return comps
}
