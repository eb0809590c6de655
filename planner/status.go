package planner

import "fmt"

// Status is the outcome of a plan, modeled as data rather than an error
// propagated up the call stack (§7: "planner failures are data in the
// return value, not exceptions"), echoing the teacher's Status bitmask
// (detour/status.go) with a three-way outcome plus a failure detail.
type Status uint8

const (
	// StatusSuccess means the planner reached goal exactly.
	StatusSuccess Status = iota
	// StatusPartial means the planner reached ActualEnd, the closest
	// reachable cell to goal within its component, not goal itself.
	StatusPartial
	// StatusFailure means no path could be produced at all.
	StatusFailure
)

// Detail further qualifies a StatusFailure.
type Detail uint8

const (
	// DetailNone applies to StatusSuccess and StatusPartial.
	DetailNone Detail = iota
	// NoPath: the abstract or within-component search exhausted its open
	// list without reaching the target (§7 NoPath).
	NoPath
	// EndpointNotInGraph: start or goal is Unknown or has no abstract
	// node (§7 EndpointNotInGraph).
	EndpointNotInGraph
)

// PlanStatus implements error so callers that want to treat a failed plan
// as an error can, while the Result-embedding callers (the controller)
// simply inspect Status.
type PlanStatus struct {
	Status Status
	Detail Detail
}

func (s PlanStatus) Error() string {
	switch s.Status {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial: reached nearest reachable cell, not the goal"
	default:
		switch s.Detail {
		case NoPath:
			return "no path"
		case EndpointNotInGraph:
			return "endpoint not in graph"
		default:
			return fmt.Sprintf("failure (detail %d)", s.Detail)
		}
	}
}

// Failed reports whether s is StatusFailure.
func (s PlanStatus) Failed() bool { return s.Status == StatusFailure }

func success() PlanStatus { return PlanStatus{Status: StatusSuccess} }
func partial() PlanStatus { return PlanStatus{Status: StatusPartial} }
func failure(d Detail) PlanStatus {
	return PlanStatus{Status: StatusFailure, Detail: d}
}
