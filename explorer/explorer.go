package explorer

import (
	"github.com/arl/hpaexplore/component"
	"github.com/arl/hpaexplore/frontier"
	"github.com/arl/hpaexplore/graphabs"
	"github.com/arl/hpaexplore/grid"
	"github.com/arl/hpaexplore/planner"
	"github.com/aurelien-rainone/math32"
)

// historyLimit is the bounded FIFO length for recently-targeted frontiers
// (§3: "rolling history of recently targeted frontiers (bounded FIFO,
// length 20)").
const historyLimit = 20

// Metrics carries the run's iteration count and why it stopped.
type Metrics struct {
	Iterations        int
	TerminationReason string
}

// Termination reasons reported in Metrics.TerminationReason.
const (
	ReasonCoverageThreshold = "coverage_threshold"
	ReasonNoFrontier        = "no_frontier"
	ReasonNoReachable       = "no_reachable_frontier"
	ReasonAgentIsolated     = "agent_isolated"
	ReasonMaxIter           = "max_iter"
)

// Result is the Explorer API's return value (§6).
type Result struct {
	Success       bool
	Trajectory    []grid.Cell
	KnownMap      *grid.Grid
	Graph         *graphabs.Graph
	ColoredGrid   *component.Colored
	FinalCoverage float64
	AgentPos      grid.Cell
	AgentHeading  grid.Heading
	Metrics       Metrics
}

// ProgressEvent is delivered synchronously to onProgress once per
// iteration (§5): agent state, coverage, iteration count, the currently
// planned path, the current target, and a known-map snapshot.
type ProgressEvent struct {
	Iteration    int
	AgentPos     grid.Cell
	AgentHeading grid.Heading
	Coverage     float64
	Path         []grid.Cell
	Target       *grid.Cell
	KnownMap     *grid.Grid
}

// Explore runs the exploration controller to completion against truth,
// starting the agent at start (§4.8). onProgress may be nil; it must not
// mutate controller state.
func Explore(truth *grid.Grid, start grid.Cell, opts Options, onProgress func(ProgressEvent)) Result {
	size := truth.Size()
	known := grid.New(size, grid.Unknown)
	colored := component.NewColored(size)
	g := graphabs.BuildFull(known, colored, opts.RegionSize)

	pos := start
	heading := grid.N
	trajectory := []grid.Cell{pos}
	var history []grid.Cell
	var target *frontier.Target
	lastSwitchIter := -historyLimit - opts.TargetSwitchCooldown

	reason := ""
	success := false
	iter := 0

	for ; iter < opts.MaxIter; iter++ {
		// 1. Sense + repair.
		visible := grid.VisibleCells(truth, pos, heading, opts.SensorRange)
		revs := grid.UpdateKnown(known, truth, visible)
		graphabs.Repair(g, known, colored, grid.NewWalkable(revs))

		// 2. Coverage check.
		coverage := grid.Coverage(known, truth)
		if reachedCoverage(coverage, opts.CoverageThreshold) {
			success, reason = true, ReasonCoverageThreshold
			report(onProgress, iter, pos, heading, coverage, nil, target, known)
			break
		}

		// 3. Frontier detect.
		candidates := detectCandidates(known, g, colored, opts, pos)
		if len(candidates) == 0 {
			success, reason = true, ReasonNoFrontier
			report(onProgress, iter, pos, heading, coverage, nil, target, known)
			break
		}

		// 4. Reachability filter.
		agentNode, ok := graphabs.Locate(colored, opts.RegionSize, pos)
		if !ok {
			success, reason = false, ReasonAgentIsolated
			report(onProgress, iter, pos, heading, coverage, nil, target, known)
			break
		}
		reached := graphabs.ReachableFrom(g, agentNode)
		reachable := filterReachable(candidates, reached)
		if len(reachable) == 0 {
			success, reason = false, ReasonNoReachable
			report(onProgress, iter, pos, heading, coverage, nil, target, known)
			break
		}

		// 5. Target choice.
		if target == nil || target.Cell == pos || !containsCell(reachable, target.Cell) {
			chosen, ok := frontier.Select(reachable, pos, known, g, colored, history, 5, opts.Heuristic)
			if !ok {
				success, reason = false, ReasonNoReachable
				report(onProgress, iter, pos, heading, coverage, nil, target, known)
				break
			}
			target = &chosen
		}

		// 6. Plan.
		res := planner.Plan(pos, target.Cell, known, g, colored, opts.Heuristic)

		// 7. Abandonment check.
		if iter-lastSwitchIter >= opts.TargetSwitchCooldown {
			if better, ok := findAbandonTarget(reachable, target.Cell, pos, known, g, colored, history, opts.Heuristic, pathCost(res.DetailedPath)); ok {
				history = pushHistory(history, target.Cell, historyLimit)
				target = &better
				lastSwitchIter = iter
				res = planner.Plan(pos, target.Cell, known, g, colored, opts.Heuristic)
			}
		}

		if res.Status.Failed() || len(res.DetailedPath) == 0 {
			// NoPath: skip this iteration, re-sense and re-plan next time.
			report(onProgress, iter, pos, heading, coverage, nil, target, known)
			continue
		}

		// 8. Step.
		if len(res.DetailedPath) == 1 {
			if opts.Scan360 {
				var scanRevs []grid.Reveal
				for h := grid.N; h <= grid.NW; h++ {
					vis := grid.VisibleCells(truth, pos, h, opts.SensorRange)
					scanRevs = append(scanRevs, grid.UpdateKnown(known, truth, vis)...)
				}
				graphabs.Repair(g, known, colored, grid.NewWalkable(scanRevs))
			}
			history = pushHistory(history, target.Cell, historyLimit)
			target = nil
			report(onProgress, iter, pos, heading, coverage, res.DetailedPath, target, known)
			continue
		}

		idx := int(opts.StepSize) + 1
		if idx > len(res.DetailedPath)-1 {
			idx = len(res.DetailedPath) - 1
		}
		newPos := res.DetailedPath[idx]
		dr, dc := newPos.Row-pos.Row, newPos.Col-pos.Col
		pos = newPos
		trajectory = append(trajectory, pos)

		// 9. Rotate and sense.
		targetHeading := headingFromDelta(dr, dc)
		rotation := rotationPath(heading, targetHeading)
		var rotRevs []grid.Reveal
		for _, h := range rotation {
			vis := grid.VisibleCells(truth, pos, h, opts.SensorRange)
			rotRevs = append(rotRevs, grid.UpdateKnown(known, truth, vis)...)
		}
		graphabs.Repair(g, known, colored, grid.NewWalkable(rotRevs))
		heading = targetHeading

		report(onProgress, iter, pos, heading, grid.Coverage(known, truth), res.DetailedPath, target, known)
	}

	// iter ran 0..opts.MaxIter-1 and was then incremented once more by the
	// for-loop's post statement if it exhausted naturally (no break), so
	// iter+1 overcounts by one in that case; ReasonMaxIter runs are
	// reported as exactly opts.MaxIter.
	executed := iter + 1
	if reason == "" {
		reason = ReasonMaxIter
		executed = opts.MaxIter
	}

	return Result{
		Success:       success,
		Trajectory:    trajectory,
		KnownMap:      known,
		Graph:         g,
		ColoredGrid:   colored,
		FinalCoverage: grid.Coverage(known, truth),
		AgentPos:      pos,
		AgentHeading:  heading,
		Metrics:       Metrics{Iterations: executed, TerminationReason: reason},
	}
}

func report(onProgress func(ProgressEvent), iter int, pos grid.Cell, heading grid.Heading, coverage float64, path []grid.Cell, target *frontier.Target, known *grid.Grid) {
	if onProgress == nil {
		return
	}
	var tgt *grid.Cell
	if target != nil {
		c := target.Cell
		tgt = &c
	}
	onProgress(ProgressEvent{
		Iteration:    iter,
		AgentPos:     pos,
		AgentHeading: heading,
		Coverage:     coverage,
		Path:         path,
		Target:       tgt,
		KnownMap:     known.Clone(),
	})
}

func detectCandidates(known *grid.Grid, g *graphabs.Graph, colored *component.Colored, opts Options, pos grid.Cell) []frontier.Target {
	if opts.UseWFD {
		groups := frontier.Detect(known)
		return frontier.Summarize(groups, g, colored, opts.RegionSize, opts.FrontierStrategy, pos)
	}
	return frontier.Fallback(known, g)
}

func filterReachable(candidates []frontier.Target, reached map[graphabs.NodeID]bool) []frontier.Target {
	var out []frontier.Target
	for _, c := range candidates {
		if reached[c.Node] {
			out = append(out, c)
		}
	}
	return out
}

func containsCell(list []frontier.Target, c grid.Cell) bool {
	for _, t := range list {
		if t.Cell == c {
			return true
		}
	}
	return false
}

// findAbandonTarget implements §4.8 step 7: the first reachable candidate
// (in deterministic iteration order) whose detailed path is strictly
// cheaper than currentCost and that does not appear in the 5-most-recent
// history (which subsumes the 3-most-recent check) is the new target.
// Costs within float32 tolerance of each other are not considered a real
// improvement, using the same approximate-equality test the teacher's
// f32math.go used for float comparisons.
func findAbandonTarget(reachable []frontier.Target, currentCell, pos grid.Cell, known *grid.Grid, g *graphabs.Graph, colored *component.Colored, history []grid.Cell, h planner.Heuristic, currentCost float64) (frontier.Target, bool) {
	for _, cand := range reachable {
		if cand.Cell == currentCell {
			continue
		}
		if mostRecentContains(history, cand.Cell, 5) {
			continue
		}
		res := planner.Plan(pos, cand.Cell, known, g, colored, h)
		if res.Status.Failed() {
			continue
		}
		candCost := pathCost(res.DetailedPath)
		if candCost < currentCost && !math32.Approx(float32(candCost), float32(currentCost)) {
			return cand, true
		}
	}
	return frontier.Target{}, false
}

// reachedCoverage reports whether coverage (a 0..1 fraction) has met
// thresholdPct (a 0..100 percentage), treating a float32-approximate match
// as having met it to avoid missing the threshold on rounding noise.
func reachedCoverage(coverage, thresholdPct float64) bool {
	pct := coverage * 100
	return pct >= thresholdPct || math32.Approx(float32(pct), float32(thresholdPct))
}

// pathCost sums the ground distance (§3: axial 1, diagonal √2) of every
// consecutive pair in a detailed path.
func pathCost(path []grid.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += grid.StepCost(path[i-1], path[i])
	}
	return total
}

func pushHistory(hist []grid.Cell, c grid.Cell, max int) []grid.Cell {
	hist = append(hist, c)
	if len(hist) > max {
		hist = hist[len(hist)-max:]
	}
	return hist
}

func mostRecentContains(hist []grid.Cell, c grid.Cell, n int) bool {
	if n <= 0 || len(hist) == 0 {
		return false
	}
	start := len(hist) - n
	if start < 0 {
		start = 0
	}
	for _, e := range hist[start:] {
		if e == c {
			return true
		}
	}
	return false
}
