// Package grid implements the dense 2D cell grid shared by the ground-truth
// maze and the agent's incrementally discovered map, its region/cell
// geometry, the diagonal-squeeze adjacency rule, and the omnidirectional
// range sensor with integer Bresenham line-of-sight filtering.
//
// A single type, Grid, represents both the ground truth (no Unknown cells)
// and the known map (Unknown everywhere until observed) — they have
// identical shape and the same cell-state alphabet, so the known map is
// simply a Grid seeded with Unknown and mutated in place as cells are
// revealed.
package grid
