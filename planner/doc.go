// Package planner implements the two-level HPA*-style planner: A* over the
// abstract graph (§4.6 step 2) followed by within-component A* refinement
// of each abstract edge into a detailed cell path (§4.6 step 3).
//
// The open-list binary heap (nodequeue.go) is adapted from the teacher's
// dtNodeQueue (detour/nodequeue.go) bubble-up/trickle-down shape,
// generalized with Go generics instead of a fixed *Node slot so the same
// heap backs both the abstract search (over graphabs.NodeID) and the
// within-component search (over grid.Cell).
package planner
