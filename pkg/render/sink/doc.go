// Package sink provides output format renderers for grown trees.
//
// # Overview
//
// A "sink" transforms a [tree.Tree] into a final output format. This package
// provides renderers for:
//
//   - SVG: orthographic line drawing of every branch segment
//   - OBJ: Wavefront polyline mesh for 3D tools
//   - PDF: Print-ready output (requires rsvg-convert)
//   - PNG: Raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] projects each parent-child segment onto an axis plane and fits
// the drawing into the requested frame, keeping the aspect ratio:
//
//	svg := sink.RenderSVG(t,
//	    sink.WithView(sink.ViewSide),
//	    sink.WithSize(1024, 1024),
//	    sink.WithThickness(0.2),
//	)
//
// The stroke width is given in world units and scales with the drawing.
//
// # OBJ Output
//
// [RenderOBJ] writes one vertex per node and one line element per segment,
// so the file opens in Blender or MeshLab as a wireframe skeleton.
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render SVG first, then convert via
// [render.ToPDF] and [render.ToPNG].
//
// [tree.Tree]: github.com/matzehuels/arbor/pkg/tree.Tree
// [render.ToPDF]: github.com/matzehuels/arbor/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/arbor/pkg/render.ToPNG
package sink
