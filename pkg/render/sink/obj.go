package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/arbor/pkg/tree"
)

// RenderOBJ writes t as a Wavefront OBJ polyline set: one "v" per node in
// arena order and one "l" per parent-child segment. OBJ indices are 1-based.
func RenderOBJ(t *tree.Tree) []byte {
	segs := t.Segments()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# arbor tree: %d nodes, %d segments\n", len(t.Nodes), len(segs))
	buf.WriteString("o tree\n")
	for _, n := range t.Nodes {
		p := n.Position
		fmt.Fprintf(&buf, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, s := range segs {
		fmt.Fprintf(&buf, "l %d %d\n", t.Nodes[s.Node].Parent+1, s.Node+1)
	}
	return buf.Bytes()
}
