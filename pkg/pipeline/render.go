package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/arbor/pkg/errors"
	treeio "github.com/matzehuels/arbor/pkg/io"
	"github.com/matzehuels/arbor/pkg/observability"
	"github.com/matzehuels/arbor/pkg/render/nodelink"
	"github.com/matzehuels/arbor/pkg/render/sink"
	"github.com/matzehuels/arbor/pkg/tree"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, t *tree.Tree, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, t, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render(ctx context.Context, t *tree.Tree, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	var dot string
	dotFor := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(t, nodelink.Options{Detailed: opts.Detailed})
		}
		return dot
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(t, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(t, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(DefaultPNGScale))
		case FormatPDF:
			data, err = sink.RenderPDF(t, svgOpts...)
		case FormatOBJ:
			data = sink.RenderOBJ(t)
		case FormatJSON:
			var buf bytes.Buffer
			settings := opts.Settings
			err = treeio.WriteJSON(treeio.Document{Tree: t, Settings: &settings}, &buf)
			data = buf.Bytes()
		case FormatDOT:
			data = []byte(dotFor())
		case FormatNodelink:
			data, err = nodelink.RenderSVG(ctx, dotFor())
		case FormatNodelinkPDF:
			data, err = nodelink.RenderPDF(ctx, dotFor())
		case FormatNodelinkPNG:
			data, err = nodelink.RenderPNG(ctx, dotFor(), DefaultPNGScale)
		default:
			return nil, errors.New(errors.ErrCodeInternal, "no renderer for format %q", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	colour, err := opts.Settings.StrokeColour()
	if err != nil {
		return nil, err
	}
	view, err := sink.ParseView(opts.View)
	if err != nil {
		return nil, err
	}
	return []sink.SVGOption{
		sink.WithView(view),
		sink.WithSize(opts.Width, opts.Height),
		sink.WithColour(colour),
		sink.WithThickness(opts.Settings.BranchThickness),
	}, nil
}
