package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/arbor/pkg/tree"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 800
	DefaultThickness = 0.2
	defaultMargin    = 0.05 // fraction of the frame left empty on each side
	minStrokeWidth   = 0.5  // pixels
)

var defaultColour, _ = colorful.Hex("#4a3b2a")

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	view      View
	width     float64
	height    float64
	colour    colorful.Color
	thickness float64
}

func WithView(v View) SVGOption { return func(r *svgRenderer) { r.view = v } }
func WithSize(width, height float64) SVGOption {
	return func(r *svgRenderer) {
		if width > 0 {
			r.width = width
		}
		if height > 0 {
			r.height = height
		}
	}
}
func WithColour(c colorful.Color) SVGOption { return func(r *svgRenderer) { r.colour = c } }

// WithThickness sets the branch stroke width in world units.
func WithThickness(t float64) SVGOption {
	return func(r *svgRenderer) {
		if t > 0 {
			r.thickness = t
		}
	}
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		view:      ViewFront,
		width:     DefaultWidth,
		height:    DefaultHeight,
		colour:    defaultColour,
		thickness: DefaultThickness,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws one line element per segment of t.
func RenderSVG(t *tree.Tree, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	fit := r.fit(t)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, `  <g id="tree" data-view="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round">`+"\n",
		r.view, r.colour.Hex(), math.Max(r.thickness*fit.scale, minStrokeWidth))

	for _, s := range t.Segments() {
		x1, y1 := fit.apply(r.view.project(s.From))
		x2, y2 := fit.apply(r.view.project(s.To))
		fmt.Fprintf(&buf, `    <line id="seg-%d" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", s.Node, x1, y1, x2, y2)
	}

	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// frame maps plane coordinates onto SVG pixels. SVG y grows downwards.
type frame struct {
	scale        float64
	cu, cw       float64 // plane centre of the drawing
	halfW, halfH float64
}

func (f frame) apply(u, w float64) (float64, float64) {
	return f.halfW + (u-f.cu)*f.scale, f.halfH - (w-f.cw)*f.scale
}

func (r svgRenderer) fit(t *tree.Tree) frame {
	minU, minW := math.Inf(1), math.Inf(1)
	maxU, maxW := math.Inf(-1), math.Inf(-1)
	for _, n := range t.Nodes {
		u, w := r.view.project(n.Position)
		minU, maxU = math.Min(minU, u), math.Max(maxU, u)
		minW, maxW = math.Min(minW, w), math.Max(maxW, w)
	}
	if len(t.Nodes) == 0 {
		minU, maxU, minW, maxW = 0, 0, 0, 0
	}

	usableW := r.width * (1 - 2*defaultMargin)
	usableH := r.height * (1 - 2*defaultMargin)
	scale := math.Inf(1)
	if du := maxU - minU; du > 0 {
		scale = math.Min(scale, usableW/du)
	}
	if dw := maxW - minW; dw > 0 {
		scale = math.Min(scale, usableH/dw)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	return frame{
		scale: scale,
		cu:    (minU + maxU) / 2,
		cw:    (minW + maxW) / 2,
		halfW: r.width / 2,
		halfH: r.height / 2,
	}
}
