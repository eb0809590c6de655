package planner

import (
	"github.com/arl/hpaexplore/grid"
	"github.com/arl/hpaexplore/graphabs"
)

// abstractAStar runs A* on the abstract graph with unit edge weights
// (§4.6 step 2), returning the node-id path from start to goal inclusive,
// or failure(NoPath)/failure(EndpointNotInGraph) if it cannot.
func abstractAStar(g *graphabs.Graph, start, goal graphabs.NodeID, h Heuristic) ([]graphabs.NodeID, PlanStatus) {
	if _, ok := g.Node(start); !ok {
		return nil, failure(EndpointNotInGraph)
	}
	if _, ok := g.Node(goal); !ok {
		return nil, failure(EndpointNotInGraph)
	}
	if start == goal {
		return []graphabs.NodeID{start}, success()
	}

	gScore := map[graphabs.NodeID]float64{start: 0}
	cameFrom := map[graphabs.NodeID]graphabs.NodeID{}
	closed := map[graphabs.NodeID]bool{}

	open := newNodeQueue[graphabs.NodeID]()
	open.push(start, regionHeuristic(start.Region, goal.Region, h))

	for !open.empty() {
		cur := open.pop()
		if closed[cur] {
			continue
		}
		if cur == goal {
			return reconstructAbstract(cameFrom, cur), success()
		}
		closed[cur] = true

		node, _ := g.Node(cur)
		for nb := range node.Neighbors {
			tentative := gScore[cur] + 1
			if best, ok := gScore[nb]; ok && tentative >= best {
				continue
			}
			gScore[nb] = tentative
			cameFrom[nb] = cur
			f := tentative + regionHeuristic(nb.Region, goal.Region, h)
			open.push(nb, f)
		}
	}

	return nil, failure(NoPath)
}

func reconstructAbstract(cameFrom map[graphabs.NodeID]graphabs.NodeID, end graphabs.NodeID) []graphabs.NodeID {
	path := []graphabs.NodeID{end}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// cellSet is an O(1)-membership view of a node's cells, built once per
// within-component search.
type cellSet map[grid.Cell]struct{}

func newCellSet(cells []grid.Cell) cellSet {
	s := make(cellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// cellAStar runs 8-connected A* between start and goal, restricted to
// cells in allowed, with axial cost 1 and diagonal cost √2, respecting
// the diagonal-squeeze rule (§4.6). If start or goal is not in allowed, it
// fails; it does not substitute a nearer cell itself. refine picks such a
// substitute target (closestInSet) before calling it for the final segment.
func cellAStar(known *grid.Grid, start, goal grid.Cell, allowed cellSet, h Heuristic) ([]grid.Cell, bool) {
	if _, ok := allowed[start]; !ok {
		return nil, false
	}
	if _, ok := allowed[goal]; !ok {
		return nil, false
	}
	if start == goal {
		return []grid.Cell{start}, true
	}

	gScore := map[grid.Cell]float64{start: 0}
	cameFrom := map[grid.Cell]grid.Cell{}
	closed := map[grid.Cell]bool{}

	open := newNodeQueue[grid.Cell]()
	open.push(start, cellHeuristic(start, goal, h))

	for !open.empty() {
		cur := open.pop()
		if closed[cur] {
			continue
		}
		if cur == goal {
			return reconstructCells(cameFrom, cur), true
		}
		closed[cur] = true

		for _, d := range grid.Offsets8 {
			nb := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if _, ok := allowed[nb]; !ok {
				continue
			}
			if !grid.Connected8(known, cur, nb) {
				continue
			}
			tentative := gScore[cur] + grid.StepCost(cur, nb)
			if best, ok := gScore[nb]; ok && tentative >= best {
				continue
			}
			gScore[nb] = tentative
			cameFrom[nb] = cur
			f := tentative + cellHeuristic(nb, goal, h)
			open.push(nb, f)
		}
	}

	return nil, false
}

func reconstructCells(cameFrom map[grid.Cell]grid.Cell, end grid.Cell) []grid.Cell {
	path := []grid.Cell{end}
	for {
		prev, ok := cameFrom[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// closestInSet returns the member of cells (in order) nearest to target by
// the active heuristic, ties broken by the earlier cell in cells, used
// when goal itself is not in the component (§4.6 step 3's final-segment
// rule).
func closestInSet(cells []grid.Cell, target grid.Cell, h Heuristic) grid.Cell {
	var best grid.Cell
	bestDist := -1.0
	for _, c := range cells {
		d := cellHeuristic(c, target, h)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}
