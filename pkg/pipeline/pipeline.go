// Package pipeline provides the generate → render pipeline for arbor.
//
// This package implements the complete pipeline used by the CLI: grow a tree
// from validated settings, then render it in any number of output formats.
// Both stages are cached. Growth is deterministic, so a tree can be keyed by
// a hash of the settings that grew it and artifacts by a hash of the tree
// plus the render options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.Options{
//	    Settings: config.Default(),
//	    Formats:  []string{"svg", "obj"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	t, hit, err := runner.GenerateWithCacheInfo(ctx, opts)
//	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, t, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/arbor/pkg/cache"
	"github.com/matzehuels/arbor/pkg/config"
	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/render/sink"
	"github.com/matzehuels/arbor/pkg/tree"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default frame width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultHeight is the default frame height in pixels.
	DefaultHeight = sink.DefaultHeight

	// DefaultView is the default projection for drawings.
	DefaultView = string(sink.ViewFront)

	// DefaultPNGScale renders PNGs at twice the frame size.
	DefaultPNGScale = 2.0

	// EngineVersion is part of every tree cache key. Bump it whenever a
	// change to the growth algorithm alters its output.
	EngineVersion = "1"
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"      // projected line drawing
	FormatPNG      = "png"      // raster of the line drawing
	FormatPDF      = "pdf"      // vector print of the line drawing
	FormatJSON     = "json"     // tree interchange document
	FormatOBJ      = "obj"      // Wavefront polyline mesh
	FormatDOT      = "dot"      // Graphviz source of the topology
	FormatNodelink = "nodelink" // Graphviz-rendered SVG of the topology

	FormatNodelinkPDF = "nodelink-pdf" // topology diagram converted to PDF
	FormatNodelinkPNG = "nodelink-png" // topology diagram converted to PNG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatPNG:      true,
	FormatPDF:      true,
	FormatJSON:     true,
	FormatOBJ:      true,
	FormatDOT:      true,
	FormatNodelink: true,

	FormatNodelinkPDF: true,
	FormatNodelinkPNG: true,
}

// Formats returns the supported format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Extension returns the file extension, including the dot, used when
// writing an artifact of the given format.
func Extension(format string) string {
	switch format {
	case FormatNodelink:
		return ".nodelink.svg"
	case FormatNodelinkPDF:
		return ".nodelink.pdf"
	case FormatNodelinkPNG:
		return ".nodelink.png"
	}
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Growth settings, including the render-only stroke settings.
	Settings config.Settings `json:"settings"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	View     string   `json:"view,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // label nodelink/dot nodes

	// Refresh skips cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the grown (or cached) tree.
	Tree *tree.Tree

	// TreeHash is the content hash of the tree's JSON encoding.
	TreeHash string

	// RunID identifies this run in logs.
	RunID string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Nodes      int
	Segments   int
	Leaves     int
	Depth      int
	Iterations int
	Unreached  int
	GrowTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	TreeHit   bool // Whether the tree came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(Formats(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list, trimming blanks and dropping
// duplicates while keeping order.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all options and applies defaults for the full
// pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate checks the growth settings.
func (o *Options) ValidateForGenerate() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.Settings.Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.View == "" {
		o.View = DefaultView
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	view, err := sink.ParseView(o.View)
	if err != nil {
		return err
	}
	o.View = string(view)
	if _, err := o.Settings.StrokeColour(); err != nil {
		return err
	}
	return errors.ValidatePositive("branch_thickness", o.Settings.BranchThickness)
}

// growthInputs are the settings that determine a tree. Render-only fields are
// left out so changing a colour does not regrow the tree.
type growthInputs struct {
	AttractionPoints int        `json:"attraction_points"`
	Crown            string     `json:"crown"`
	InfluenceRadius  float64    `json:"influence_radius"`
	KillDistance     float64    `json:"kill_distance"`
	NodeSize         float64    `json:"node_size"`
	MaxIterations    int        `json:"max_iterations"`
	Origin           [3]float64 `json:"origin"`
	Seed             uint64     `json:"seed"`
}

// SettingsHash hashes the inputs that determine the grown tree.
func (o *Options) SettingsHash() (string, error) {
	s := o.Settings
	return cache.HashJSON(growthInputs{
		AttractionPoints: s.AttractionPoints,
		Crown:            s.Crown.String(),
		InfluenceRadius:  s.InfluenceRadius,
		KillDistance:     s.KillDistance,
		NodeSize:         s.NodeSize,
		MaxIterations:    s.MaxIterations,
		Origin:           s.Origin,
		Seed:             s.EffectiveSeed(),
	})
}

// TreeKeyOpts returns cache key options for growth.
func (o *Options) TreeKeyOpts() cache.TreeKeyOpts {
	return cache.TreeKeyOpts{Engine: EngineVersion}
}

// ArtifactKeyOpts returns cache key options for artifact rendering. Options
// a format ignores are left zero so they do not split the cache.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		k.View = o.View
		k.Width = o.Width
		k.Height = o.Height
		k.Colour = strings.ToLower(o.Settings.Colour)
		k.Thickness = o.Settings.BranchThickness
	case FormatDOT, FormatNodelink, FormatNodelinkPDF, FormatNodelinkPNG:
		k.Detailed = o.Detailed
	case FormatJSON:
		// The document embeds the full settings.
		k.Settings, _ = cache.HashJSON(o.Settings)
	}
	return k
}
