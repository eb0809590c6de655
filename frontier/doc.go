// Package frontier implements the Wavefront Frontier Detector (§4.7):
// scanning the known map for frontier cells (Walkable with an Unknown
// 8-neighbor), grouping them by transitive closure of Euclidean distance
// < 2, summarizing each group to a single target cell, and tagging that
// target with the abstract component that contains it.
package frontier
