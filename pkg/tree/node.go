package tree

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// NoParent is the parent index of the root node.
const NoParent = -1

// rootDirection is the committed direction of every root node.
var rootDirection = r3.Vec{Y: 1}

// Node is one growth increment.
type Node struct {
	Position  r3.Vec
	Direction r3.Vec // unit length; last committed heading
	Parent    int    // arena index of the parent, NoParent for the root

	influence      r3.Vec // accumulator, reset to Direction after each step
	influenceCount int
}

func newNode(parent int, pos, dir r3.Vec) Node {
	return Node{
		Position:  pos,
		Direction: dir,
		Parent:    parent,
		influence: dir,
	}
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

func (n *Node) resetInfluence() {
	n.influence = n.Direction
	n.influenceCount = 0
}

// AttractionPoint is a sampled target that pulls nearby nodes until one of
// them reaches it.
type AttractionPoint struct {
	Position r3.Vec

	closest int // per-step scratch; -1 when no node is eligible
}

// Segment is the line between a node and its parent.
type Segment struct {
	Node int // index of the child node
	From r3.Vec
	To   r3.Vec
}

// epsilon below which an accumulated heading is treated as zero length.
const epsilon = 1e-12

// unit normalizes v, reporting false when v has no usable direction.
func unit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n < epsilon {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

func dist(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}
