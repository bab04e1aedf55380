package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/arbor/pkg/render"
	"github.com/matzehuels/arbor/pkg/tree"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels nodes with index, depth and position.
	// When false, nodes are unlabeled dots.
	Detailed bool
}

// ToDOT converts a tree to Graphviz DOT format. Edges run from parent to
// child. The root and the leaves are coloured so the ends of each branch
// stand out.
func ToDOT(t *tree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Detailed {
		buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.1,0.05\"];\n")
	} else {
		buf.WriteString("  node [shape=point, width=0.08, color=\"#4a3b2a\"];\n")
	}
	buf.WriteString("  edge [arrowhead=none, color=\"#4a3b2a\"];\n")
	buf.WriteString("  ranksep=0.15;\n")
	buf.WriteString("  nodesep=0.1;\n")
	buf.WriteString("\n")

	depths := t.Depths()
	leaves := make(map[int]bool)
	for _, i := range t.Leaves() {
		leaves[i] = true
	}

	for i, n := range t.Nodes {
		attrs := fmtAttrs(i, n, depths[i], leaves[i], opts.Detailed)
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, n := range t.Nodes {
		if n.IsRoot() {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", n.Parent, i)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(i int, n tree.Node, depth int) string {
	p := n.Position
	return fmt.Sprintf("#%d depth %d\n(%.2f, %.2f, %.2f)", i, depth, p.X, p.Y, p.Z)
}

func fmtAttrs(i int, n tree.Node, depth int, leaf, detailed bool) []string {
	var attrs []string
	if detailed {
		attrs = append(attrs, fmt.Sprintf("label=%q", fmtLabel(i, n, depth)))
	}
	switch {
	case n.IsRoot() && detailed:
		attrs = append(attrs, "fillcolor=\"#c9b79c\"")
	case n.IsRoot():
		attrs = append(attrs, "width=0.15")
	case leaf && detailed:
		attrs = append(attrs, "fillcolor=\"#b5d99c\"")
	case leaf:
		attrs = append(attrs, "color=\"#5a8f3c\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz root element so the drawing scales
// from a zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
