package tree

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
)

// Tree is the finished (or in-progress) node set of a growth run. Nodes are
// stored in creation order so every parent precedes its children.
type Tree struct {
	Nodes      []Node
	Iterations int // steps executed
	Unreached  int // attraction points left when growth stopped
}

// Root returns the root node. It panics on an empty tree.
func (t *Tree) Root() Node {
	return t.Nodes[0]
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.Nodes) }

// Children returns the indices of the direct children of node i.
func (t *Tree) Children(i int) []int {
	var out []int
	for j := i + 1; j < len(t.Nodes); j++ {
		if t.Nodes[j].Parent == i {
			out = append(out, j)
		}
	}
	return out
}

// Leaves returns the indices of nodes without children.
func (t *Tree) Leaves() []int {
	hasChild := make([]bool, len(t.Nodes))
	for _, n := range t.Nodes {
		if n.Parent >= 0 {
			hasChild[n.Parent] = true
		}
	}
	var out []int
	for i, c := range hasChild {
		if !c {
			out = append(out, i)
		}
	}
	return out
}

// Depths returns the number of edges between each node and the root.
func (t *Tree) Depths() []int {
	depth := make([]int, len(t.Nodes))
	for i, n := range t.Nodes {
		if n.Parent >= 0 {
			depth[i] = depth[n.Parent] + 1
		}
	}
	return depth
}

// Depth returns the length of the longest root-to-leaf path in edges.
func (t *Tree) Depth() int {
	deepest := 0
	for _, d := range t.Depths() {
		deepest = max(deepest, d)
	}
	return deepest
}

// Segments returns one parent-to-child segment per non-root node.
func (t *Tree) Segments() []Segment {
	segs := make([]Segment, 0, max(len(t.Nodes)-1, 0))
	for i, n := range t.Nodes {
		if n.IsRoot() {
			continue
		}
		segs = append(segs, Segment{
			Node: i,
			From: t.Nodes[n.Parent].Position,
			To:   n.Position,
		})
	}
	return segs
}

// Bounds returns the axis-aligned box enclosing every node position.
func (t *Tree) Bounds() (lo, hi r3.Vec) {
	if len(t.Nodes) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	lo = r3.Vec{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = r3.Vec{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, n := range t.Nodes {
		p := n.Position
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

// Stats summarizes a tree.
type Stats struct {
	Nodes      int
	Leaves     int
	Depth      int
	Iterations int
	Unreached  int
}

// Stats computes summary statistics.
func (t *Tree) Stats() Stats {
	return Stats{
		Nodes:      len(t.Nodes),
		Leaves:     len(t.Leaves()),
		Depth:      t.Depth(),
		Iterations: t.Iterations,
		Unreached:  t.Unreached,
	}
}

// Validate checks the structural invariants of a tree: a single root at
// index 0, every other parent index pointing at an earlier node, finite
// positions and unit-length directions.
func (t *Tree) Validate() error {
	if len(t.Nodes) == 0 {
		return errors.New(errors.ErrCodeInvalidTree, "tree has no nodes")
	}
	for i, n := range t.Nodes {
		if i == 0 {
			if !n.IsRoot() {
				return errors.New(errors.ErrCodeInvalidTree, "node 0 must be the root")
			}
		} else if n.Parent < 0 || n.Parent >= i {
			return errors.New(errors.ErrCodeInvalidTree, "node %d has invalid parent %d", i, n.Parent)
		}
		if !finite(n.Position) || !finite(n.Direction) {
			return errors.New(errors.ErrCodeInvalidTree, "node %d has a non-finite vector", i)
		}
		if l := r3.Norm(n.Direction); math.Abs(l-1) > 1e-6 {
			return errors.New(errors.ErrCodeInvalidTree, "node %d direction has length %g", i, l)
		}
	}
	return nil
}

func finite(v r3.Vec) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
