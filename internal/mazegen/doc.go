// Package mazegen generates random room-and-corridor ground-truth grids
// for the demo CLI collaborator. It has no part in the core's tested
// invariants; it only produces a *grid.Grid that explorer.Explore can run
// against.
package mazegen
