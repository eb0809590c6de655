// Package explorer implements the exploration controller (§4.8): the
// state machine that ties together sensing, map update, graph repair,
// frontier detection and selection, hierarchical planning, path
// execution, and rotation-with-sensing into a single autonomous run.
package explorer
