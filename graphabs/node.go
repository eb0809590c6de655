package graphabs

import (
	"fmt"

	"github.com/arl/hpaexplore/grid"
)

// NodeID identifies an abstract node: a component local to one region.
// Serializes as "rR,rC_id", the string form named in §3 of the spec.
type NodeID struct {
	Region grid.Region
	Local  int
}

func (id NodeID) String() string {
	return fmt.Sprintf("%d,%d_%d", id.Region.RR, id.Region.RC, id.Local)
}

// Transition is the cross-boundary cell pair realizing an abstract edge:
// From is the cell of the edge's source node, To is the cell of its
// neighbor, and the two are 8-adjacent (squeeze-respecting).
type Transition struct {
	From, To grid.Cell
}

// Node is one (region, component) pair in the abstract graph.
type Node struct {
	ID        NodeID
	Cells     []grid.Cell
	Neighbors map[NodeID]Transition
}

func newNode(id NodeID, cells []grid.Cell) *Node {
	return &Node{ID: id, Cells: cells, Neighbors: make(map[NodeID]Transition)}
}

// HasCell reports whether c is a member of this node's component.
func (n *Node) HasCell(c grid.Cell) bool {
	for _, cell := range n.Cells {
		if cell == c {
			return true
		}
	}
	return false
}
