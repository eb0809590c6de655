// Package graphabs maintains the abstract graph used by the hierarchical
// planner: nodes are (region, local component id) pairs, edges connect
// components of 8-adjacent regions that share at least one cross-boundary
// walkable cell pair (respecting the diagonal-squeeze rule), and each edge
// carries the boundary cell pair that realizes the transition.
//
// Repair incrementally recomputes only the regions touched by newly
// revealed Walkable cells, then rebuilds every edge from the current known
// map — the contract is that the result is identical to a full rebuild
// (§4.5), not that the edge rescan itself is restricted to the touched
// regions.
package graphabs
