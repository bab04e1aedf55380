// Package pkg provides the core libraries for arbor, a space colonization
// tree generator.
//
// # Overview
//
// Arbor grows branching tree skeletons. A cloud of attraction points is
// scattered inside a crown volume; each growth step pulls every node toward
// the points closest to it, adds one node step in the averaged direction, and
// removes the points a node has reached. Growth stops when no points remain
// or the step cap is hit.
//
// # Architecture
//
// The data flow through arbor:
//
//	settings (defaults, TOML/YAML file, CLI flags)
//	         ↓
//	    [config] validates and converts them
//	         ↓
//	    [shape] samples attraction points in the crown
//	         ↓
//	    [tree] grows the skeleton (parent-indexed node arena)
//	         ↓
//	    [render/sink], [render/nodelink], [io] draw or export it
//
// [pipeline] wires these stages together and caches both the grown tree and
// each rendered artifact through [cache].
//
// # Quick Start
//
// Grow the stock tree and draw it from above:
//
//	import (
//	    "github.com/matzehuels/arbor/pkg/config"
//	    "github.com/matzehuels/arbor/pkg/render/sink"
//	)
//
//	t, err := config.Default().Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := sink.RenderSVG(t, sink.WithView(sink.ViewTop))
//
// # Main Packages
//
// ## Growth
//
// [tree] - The space colonization engine. Step runs one association, growth
// and pruning pass; Run loops until termination. Runs are deterministic for a
// given seed.
//
// [shape] - Crown volumes (sphere, box) that sample attraction points.
//
// [rng] - Seeded random streams shared by sampling and reseeding.
//
// [config] - User-facing settings with defaults, validation and TOML/YAML
// loading.
//
// ## Output
//
// [render/sink] - Projected SVG line drawings, PNG and PDF rasters, and
// Wavefront OBJ polylines.
//
// [render/nodelink] - Graphviz diagrams of the branching topology.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// [io] - Versioned JSON interchange for grown trees.
//
// ## Infrastructure
//
// [pipeline] - The generate → render pipeline used by the CLI.
//
// [cache] - File, Redis and null caches with content-addressed keys.
//
// [observability] - Hooks around growth, rendering and cache access.
//
// [errors] - Structured error codes.
//
// [buildinfo] - Version information stamped at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/tree/...      # Specific package
//	go test -run Example ./...  # Examples only
package pkg
