package nodelink

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/tree"
)

func forked() *tree.Tree {
	up := r3.Vec{Y: 1}
	return &tree.Tree{Nodes: []tree.Node{
		{Parent: tree.NoParent, Direction: up},
		{Parent: 0, Position: r3.Vec{Y: 1}, Direction: up},
		{Parent: 1, Position: r3.Vec{X: -1, Y: 2}, Direction: r3.Vec{X: -1}},
		{Parent: 1, Position: r3.Vec{X: 1, Y: 2}, Direction: r3.Vec{X: 1}},
	}}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(forked(), Options{})

	for _, want := range []string{"digraph G {", "n0 -> n1;", "n1 -> n2;", "n1 -> n3;", "shape=point"} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("got %d edges, want 3", got)
	}
	if strings.Contains(dot, "label=") {
		t.Error("plain diagram has labels")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(forked(), Options{Detailed: true})

	for _, want := range []string{`#0 depth 0`, `#3 depth 2`, `(1.00, 2.00, 0.00)`, `fillcolor="#b5d99c"`} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in:\n%s", want, dot)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="62pt" height="116pt" viewBox="0.00 0.00 62.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 62.00 116.00" width="62" height="116">`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("changed svg without viewBox: %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(forked(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() = %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("unexpected root element:\n%s", out)
	}
}

func TestRenderConverted(t *testing.T) {
	dot := ToDOT(forked(), Options{Detailed: true})
	pdf, pdfErr := RenderPDF(context.Background(), dot)
	png, pngErr := RenderPNG(context.Background(), dot, 1)

	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		for name, err := range map[string]error{"pdf": pdfErr, "png": pngErr} {
			if !errors.Is(err, errors.ErrCodeUnsupported) {
				t.Errorf("%s without rsvg-convert = %v, want UNSUPPORTED", name, err)
			}
		}
		return
	}
	if pdfErr != nil || pngErr != nil {
		t.Fatalf("RenderPDF = %v, RenderPNG = %v", pdfErr, pngErr)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("RenderPDF output is not a PDF")
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Error("RenderPNG output is not a PNG")
	}
}
