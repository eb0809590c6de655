package frontier

import (
	"math"
	"sort"

	"github.com/arl/hpaexplore/grid"
	"github.com/aurelien-rainone/math32"
)

// Group is one cluster of adjacent frontier cells.
type Group struct {
	Points   []grid.Cell
	Centroid [2]float64
	Median   grid.Cell
	Size     int
}

// IsFrontierCell reports whether c is Walkable in known and has at least
// one Unknown 8-neighbor.
func IsFrontierCell(known *grid.Grid, c grid.Cell) bool {
	if !known.WalkableCell(c) {
		return false
	}
	for _, d := range grid.Offsets8 {
		n := grid.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !known.InBounds(n.Row, n.Col) {
			continue
		}
		if known.At(n.Row, n.Col) == grid.Unknown {
			return true
		}
	}
	return false
}

// Detect runs the Wavefront Frontier Detector over known: it enumerates
// frontier cells from the interior (the outermost rows and columns are not
// scanned, so a border cell is never reported even when it has an Unknown
// neighbor, per §4.7's interior-only enumeration), then groups them
// by transitive closure of Euclidean distance < 2 — which for integer
// cells is exactly 8-adjacency, so the grouping is itself a connected-
// components pass over the frontier cells.
func Detect(known *grid.Grid) []Group {
	size := known.Size()
	var cells []grid.Cell
	isFrontier := make(map[grid.Cell]bool)
	for r := 1; r < size-1; r++ {
		for c := 1; c < size-1; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if IsFrontierCell(known, cell) {
				cells = append(cells, cell)
				isFrontier[cell] = true
			}
		}
	}

	visited := make(map[grid.Cell]bool, len(cells))
	var groups []Group
	for _, start := range cells {
		if visited[start] {
			continue
		}
		queue := []grid.Cell{start}
		visited[start] = true
		var points []grid.Cell

		for i := 0; i < len(queue); i++ {
			cur := queue[i]
			points = append(points, cur)
			for _, d := range grid.Offsets8 {
				n := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
				if !isFrontier[n] || visited[n] {
					continue
				}
				if euclidean(cur, n) >= 2 {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}

		groups = append(groups, summarizeGroup(points))
	}

	return groups
}

func euclidean(a, b grid.Cell) float64 {
	dr := float32(a.Row - b.Row)
	dc := float32(a.Col - b.Col)
	return math.Sqrt(float64(math32.Sqr(dr) + math32.Sqr(dc)))
}

func summarizeGroup(points []grid.Cell) Group {
	var sumR, sumC float64
	for _, p := range points {
		sumR += float64(p.Row)
		sumC += float64(p.Col)
	}
	n := float64(len(points))
	centroid := [2]float64{sumR / n, sumC / n}

	type distPoint struct {
		p grid.Cell
		d float32
	}
	dists := make([]distPoint, len(points))
	for i, p := range points {
		dr := float32(p.Row) - float32(centroid[0])
		dc := float32(p.Col) - float32(centroid[1])
		dists[i] = distPoint{p: p, d: math32.Sqr(dr) + math32.Sqr(dc)}
	}
	sort.SliceStable(dists, func(i, j int) bool { return dists[i].d < dists[j].d })
	median := dists[(len(dists)-1)/2].p

	return Group{Points: points, Centroid: centroid, Median: median, Size: len(points)}
}
