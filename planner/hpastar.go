package planner

import (
	"time"

	"github.com/arl/hpaexplore/component"
	"github.com/arl/hpaexplore/graphabs"
	"github.com/arl/hpaexplore/grid"
)

// Result is the return value of Plan, matching §6's Planner API.
type Result struct {
	AbstractPath  []graphabs.NodeID
	DetailedPath  []grid.Cell
	ActualEnd     grid.Cell
	Status        PlanStatus
	ExecutionTime time.Duration
}

// ExecutionTimeMs is ExecutionTime in milliseconds, the field name used by
// §6's Planner API.
func (r Result) ExecutionTimeMs() float64 {
	return float64(r.ExecutionTime) / float64(time.Millisecond)
}

// Plan runs the two-level HPA* planner from start to goal (§4.6): abstract
// A* over graph, then within-component A* refinement segment by segment.
func Plan(start, goal grid.Cell, known *grid.Grid, g *graphabs.Graph, colored *component.Colored, h Heuristic) Result {
	t0 := time.Now()

	sID, ok := graphabs.Locate(colored, g.RegionSize, start)
	if !ok {
		return Result{Status: failure(EndpointNotInGraph), ExecutionTime: time.Since(t0)}
	}
	eID, ok := graphabs.Locate(colored, g.RegionSize, goal)
	if !ok {
		return Result{Status: failure(EndpointNotInGraph), ExecutionTime: time.Since(t0)}
	}

	abstractPath, status := abstractAStar(g, sID, eID, h)
	if status.Failed() {
		return Result{AbstractPath: abstractPath, Status: status, ExecutionTime: time.Since(t0)}
	}

	detailed, actualEnd, refineStatus := refine(known, g, abstractPath, start, goal, h)
	return Result{
		AbstractPath:  abstractPath,
		DetailedPath:  detailed,
		ActualEnd:     actualEnd,
		Status:        refineStatus,
		ExecutionTime: time.Since(t0),
	}
}

// refine walks the abstract path segment by segment (§4.6 step 3),
// stitching within-component A* legs through each node's transition cell
// to the next, and finally into the goal (or the nearest reachable cell to
// it) inside the last node.
func refine(known *grid.Grid, g *graphabs.Graph, abstractPath []graphabs.NodeID, start, goal grid.Cell, h Heuristic) ([]grid.Cell, grid.Cell, PlanStatus) {
	var detailed []grid.Cell
	currPos := start

	for i := 0; i < len(abstractPath); i++ {
		u := abstractPath[i]
		node, ok := g.Node(u)
		if !ok {
			return nil, grid.Cell{}, failure(EndpointNotInGraph)
		}
		allowed := newCellSet(node.Cells)

		isFinal := i == len(abstractPath)-1
		if isFinal {
			target := goal
			if _, ok := allowed[goal]; !ok {
				target = closestInSet(node.Cells, goal, h)
			}
			leg, ok := cellAStar(known, currPos, target, allowed, h)
			if !ok {
				return nil, grid.Cell{}, failure(NoPath)
			}
			detailed = appendLeg(detailed, leg)

			if target != goal {
				return detailed, target, partial()
			}
			return detailed, target, success()
		}

		v := abstractPath[i+1]
		tr, ok := node.Neighbors[v]
		if !ok {
			return nil, grid.Cell{}, failure(NoPath)
		}

		leg, ok := cellAStar(known, currPos, tr.From, allowed, h)
		if !ok {
			return nil, grid.Cell{}, failure(NoPath)
		}
		detailed = appendLeg(detailed, leg)
		detailed = appendJump(detailed, tr.To)
		currPos = tr.To
	}

	// The final iteration of the loop always returns, so this point is only
	// reached with an empty abstractPath, which abstractAStar never returns
	// on success (start==goal yields a 1-element path).
	return detailed, currPos, success()
}

// appendLeg appends a within-component leg to path, dropping a duplicate
// of the leg's first cell if it equals path's current last cell (§4.6
// step 3).
func appendLeg(path []grid.Cell, leg []grid.Cell) []grid.Cell {
	if len(path) > 0 && len(leg) > 0 && path[len(path)-1] == leg[0] {
		leg = leg[1:]
	}
	return append(path, leg...)
}

// appendJump appends a single transition cell, skipping it if it is
// already the last cell appended.
func appendJump(path []grid.Cell, c grid.Cell) []grid.Cell {
	if len(path) > 0 && path[len(path)-1] == c {
		return path
	}
	return append(path, c)
}
