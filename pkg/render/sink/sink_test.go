package sink

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/rng"
	"github.com/matzehuels/arbor/pkg/shape"
	"github.com/matzehuels/arbor/pkg/tree"
)

// chain grows five nodes straight up the Y axis, one unit apart.
func chain() *tree.Tree {
	e := tree.NewWithPoints(tree.Settings{
		InfluenceRadius: 100,
		KillDistance:    1,
		NodeSize:        1,
		MaxIterations:   10,
	}, r3.Vec{}, []r3.Vec{{Y: 5}})
	e.Run()
	return e.Tree()
}

func grown() *tree.Tree {
	return tree.Generate(tree.Settings{
		AttractionPoints: 200,
		Crown:            shape.Sphere{Centre: r3.Vec{Y: 1.5}, Radius: 1.5},
		InfluenceRadius:  7,
		KillDistance:     2,
		NodeSize:         0.15,
		MaxIterations:    100,
	}, r3.Vec{}, rng.New(3))
}

func TestRenderSVGOneLinePerSegment(t *testing.T) {
	tr := grown()
	for _, v := range []View{ViewFront, ViewSide, ViewTop} {
		t.Run(string(v), func(t *testing.T) {
			svg := string(RenderSVG(tr, WithView(v)))
			if got, want := strings.Count(svg, "<line "), len(tr.Segments()); got != want {
				t.Errorf("got %d lines, want %d", got, want)
			}
			if !strings.Contains(svg, `data-view="`+string(v)+`"`) {
				t.Error("view not recorded")
			}
		})
	}
}

func TestRenderSVGFitsFrame(t *testing.T) {
	svg := string(RenderSVG(chain(), WithSize(800, 800)))

	for _, want := range []string{
		`viewBox="0 0 800.0 800.0"`,
		`stroke-width="36.00"`,
		`<line id="seg-1" x1="400.00" y1="760.00" x2="400.00" y2="580.00"/>`,
		`<line id="seg-4" x1="400.00" y1="220.00" x2="400.00" y2="40.00"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %s in:\n%s", want, svg)
		}
	}
}

func TestRenderSVGColour(t *testing.T) {
	c, _ := colorful.Hex("#336699")
	svg := string(RenderSVG(chain(), WithColour(c)))
	if !strings.Contains(svg, `stroke="#336699"`) {
		t.Errorf("colour not applied:\n%s", svg)
	}
	if svg := string(RenderSVG(chain())); !strings.Contains(svg, `stroke="#4a3b2a"`) {
		t.Errorf("default colour missing")
	}
}

func TestRenderSVGDegenerate(t *testing.T) {
	root := &tree.Tree{Nodes: []tree.Node{{Parent: tree.NoParent, Direction: r3.Vec{Y: 1}}}}
	svg := string(RenderSVG(root))
	if strings.Contains(svg, "<line") {
		t.Error("root-only tree drew lines")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}

	// Straight up seen from above collapses to a point.
	top := string(RenderSVG(chain(), WithView(ViewTop)))
	if strings.Contains(top, "NaN") || strings.Contains(top, "Inf") {
		t.Errorf("non-finite coordinates:\n%s", top)
	}
}

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"", ViewFront, false},
		{"front", ViewFront, false},
		{"SIDE", ViewSide, false},
		{" top ", ViewTop, false},
		{"iso", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseView(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidView) {
					t.Errorf("ParseView(%q) error = %v, want INVALID_VIEW", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseView(%q) = %q, %v", tt.in, got, err)
			}
		})
	}
}

func TestRenderOBJ(t *testing.T) {
	obj := string(RenderOBJ(chain()))
	lines := strings.Split(strings.TrimSpace(obj), "\n")

	var verts, elems []string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "v "):
			verts = append(verts, l)
		case strings.HasPrefix(l, "l "):
			elems = append(elems, l)
		}
	}
	if len(verts) != 5 || len(elems) != 4 {
		t.Fatalf("got %d vertices and %d lines:\n%s", len(verts), len(elems), obj)
	}
	if verts[4] != "v 0 4 0" {
		t.Errorf("last vertex = %q", verts[4])
	}
	if elems[0] != "l 1 2" || elems[3] != "l 4 5" {
		t.Errorf("line elements = %v", elems)
	}
}

func TestRenderOBJMatchesSegments(t *testing.T) {
	tr := grown()
	obj := string(RenderOBJ(tr))
	if got := strings.Count(obj, "\nl "); got != len(tr.Segments()) {
		t.Errorf("got %d line elements, want %d", got, len(tr.Segments()))
	}
}
