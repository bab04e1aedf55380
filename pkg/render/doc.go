// Package render turns grown trees into files.
//
// # Overview
//
// Rendering is split by output family:
//
//   - Generic format conversion (SVG to PDF/PNG), in this package
//   - Projected line drawings and meshes (in [sink] subpackage)
//   - Topology diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both sinks use them:
//
//	svg := sink.RenderSVG(t, sink.WithView(sink.ViewFront))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Line Drawings
//
// The [sink] subpackage projects every parent-child segment onto one of the
// three axis planes and writes it as an SVG line, or writes the full 3D
// polyline set as a Wavefront OBJ file.
//
// # Topology Diagrams
//
// The [nodelink] subpackage renders the parent links as a Graphviz graph,
// which is useful for inspecting branching structure independent of
// geometry.
//
// [sink]: github.com/matzehuels/arbor/pkg/render/sink
// [nodelink]: github.com/matzehuels/arbor/pkg/render/nodelink
package render
