// Package component identifies 8-connected (squeeze-respecting) components
// of Walkable cells confined to a single REGION_SIZE×REGION_SIZE region,
// and maintains the SIZE×SIZE colored grid that maps each cell to its
// component's local id within its region (or -1 if unassigned).
//
// Grounded on the flood-fill/BFS shape of lvlath's
// gridgraph.ConnectedComponents (same visited-set, BFS-queue-of-indices
// traversal), hand-rolled rather than called directly because
// GridGraph.NeighborOffsets returns a fixed 4-/8-neighbor table with no
// injectable adjacency predicate — it has no way to encode the
// squeeze-rule diagonal test, and calling it unmodified would silently
// mis-connect squeezed diagonals.
package component
