// Package nodelink renders tree topology as a node-link diagram.
//
// # Overview
//
// Geometry aside, a grown tree is a rooted graph. This package hands that
// graph to Graphviz so branching structure can be inspected directly: where
// splits happen, how deep each branch runs, which nodes ended as leaves.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(t, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
// With Detailed unset nodes are drawn as small dots, which keeps large trees
// legible. Detailed labels every node with its index, depth and position.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
