package frontier

import (
	"sort"

	"github.com/arl/hpaexplore/component"
	"github.com/arl/hpaexplore/graphabs"
	"github.com/arl/hpaexplore/grid"
	"github.com/arl/hpaexplore/planner"
)

// Strategy selects which point of a group becomes its target cell, per
// §6's frontierStrategy option.
type Strategy string

// The three summarization strategies named in §6.
const (
	StrategyNearest  Strategy = "nearest"  // the group's first discovered point
	StrategyCentroid Strategy = "centroid" // the group's centroid, rounded to a cell
	StrategyMedian   Strategy = "median"   // the group's median-distance member
)

// Target is one component-aware frontier: a single target cell tagged
// with the abstract node that contains it, plus the size of the frontier
// group it summarizes (1 for the fallback detector's ungrouped cells).
type Target struct {
	Cell grid.Cell
	Node graphabs.NodeID
	Size int
}

// minDiscardDist is the Manhattan distance, in cells, at or below which a
// frontier is considered to already be at the agent and discarded (§4.7:
// "Frontiers within Manhattan distance ≤ 1.5 of the agent are discarded").
const minDiscardDist = 1.5

// Summarize turns raw WFD groups into component-aware targets: each group
// is reduced to one cell by strategy, snapped to integer coordinates, then
// tagged with the abstract node containing it (or, if the snapped cell has
// no node — e.g. it landed on Unknown — the node whose cells are
// Chebyshev-nearest to it). Groups within minDiscardDist of agent are
// dropped.
func Summarize(groups []Group, g *graphabs.Graph, colored *component.Colored, regionSize int, strategy Strategy, agent grid.Cell) []Target {
	var out []Target
	for _, grp := range groups {
		cell := pickTarget(grp, strategy)
		if manhattan(agent, cell) <= minDiscardDist {
			continue
		}
		id, ok := graphabs.Locate(colored, regionSize, cell)
		if !ok {
			id = nearestNodeByChebyshev(g, cell)
		}
		out = append(out, Target{Cell: cell, Node: id, Size: grp.Size})
	}
	return out
}

// Fallback implements the non-WFD detector of §4.7: every Walkable cell
// already present in the abstract graph that has an Unknown 8-neighbor
// becomes its own one-cell frontier target.
func Fallback(known *grid.Grid, g *graphabs.Graph) []Target {
	var out []Target
	for _, id := range sortedNodeIDs(g) {
		n, _ := g.Node(id)
		for _, cell := range n.Cells {
			if IsFrontierCell(known, cell) {
				out = append(out, Target{Cell: cell, Node: id, Size: 1})
			}
		}
	}
	return out
}

func pickTarget(grp Group, strategy Strategy) grid.Cell {
	switch strategy {
	case StrategyCentroid:
		return grid.Cell{Row: roundTo(grp.Centroid[0]), Col: roundTo(grp.Centroid[1])}
	case StrategyMedian:
		return grp.Median
	default: // StrategyNearest: the first point discovered for the group.
		return grp.Points[0]
	}
}

func roundTo(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}

func manhattan(a, b grid.Cell) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

func chebyshev(a, b grid.Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}

func sortedNodeIDs(g *graphabs.Graph) []graphabs.NodeID {
	ids := make([]graphabs.NodeID, 0, g.Len())
	for id := range g.Nodes() {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func nearestNodeByChebyshev(g *graphabs.Graph, target grid.Cell) graphabs.NodeID {
	var best graphabs.NodeID
	bestDist := -1
	for _, id := range sortedNodeIDs(g) {
		n, _ := g.Node(id)
		for _, c := range n.Cells {
			d := chebyshev(c, target)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = id
			}
		}
	}
	return best
}

// Select implements §4.9: exclude any candidate whose cell matches an
// entry in the recentN-most-recent history; if that empties the set,
// relax and consider all candidates. Among the remainder, pick the one
// with the shortest HPA* detailed path from agent, breaking ties by
// candidates' original order. Returns the zero Target and false if
// candidates is empty after relaxation too, or if no candidate can be
// planned to.
func Select(candidates []Target, agent grid.Cell, known *grid.Grid, g *graphabs.Graph, colored *component.Colored, history []grid.Cell, recentN int, h planner.Heuristic) (Target, bool) {
	recent := lastN(history, recentN)
	pool := filterExcluding(candidates, recent)
	if len(pool) == 0 {
		pool = candidates
	}
	if len(pool) == 0 {
		return Target{}, false
	}

	bestIdx := -1
	bestLen := -1
	for i, cand := range pool {
		res := planner.Plan(agent, cand.Cell, known, g, colored, h)
		if res.Status.Failed() {
			continue
		}
		n := len(res.DetailedPath)
		if bestLen < 0 || n < bestLen {
			bestLen = n
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Target{}, false
	}
	return pool[bestIdx], true
}

func lastN(history []grid.Cell, n int) []grid.Cell {
	if n <= 0 || len(history) == 0 {
		return nil
	}
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func filterExcluding(candidates []Target, excluded []grid.Cell) []Target {
	if len(excluded) == 0 {
		return candidates
	}
	var out []Target
	for _, c := range candidates {
		skip := false
		for _, e := range excluded {
			if c.Cell == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, c)
		}
	}
	return out
}
