package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/arbor/pkg/config"
	"github.com/matzehuels/arbor/pkg/errors"
	"github.com/matzehuels/arbor/pkg/pipeline"
	"github.com/matzehuels/arbor/pkg/render/sink"
	"github.com/matzehuels/arbor/pkg/rng"
	"github.com/matzehuels/arbor/pkg/shape"
)

// renderFlags are shared by generate and render.
type renderFlags struct {
	formats  string
	output   string
	view     string
	width    float64
	height   float64
	detailed bool
	refresh  bool
}

func (f *renderFlags) register(cmd *cobra.Command, defaultOut string) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", pipeline.FormatSVG,
		"output formats, comma separated ("+strings.Join(pipeline.Formats(), ", ")+")")
	cmd.Flags().StringVarP(&f.output, "output", "o", defaultOut, "output base path; the format extension is appended")
	cmd.Flags().StringVar(&f.view, "view", pipeline.DefaultView, "projection for drawings ("+strings.Join(sink.Views(), ", ")+")")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "drawing width in pixels")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "drawing height in pixels")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "label nodes in dot and nodelink output")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")
}

func (f *renderFlags) apply(opts *pipeline.Options) {
	opts.Formats = pipeline.ParseFormats(f.formats)
	opts.View = f.view
	opts.Width = f.width
	opts.Height = f.height
	opts.Detailed = f.detailed
	opts.Refresh = f.refresh
	opts.SetRenderDefaults()
}

// settingsFlags binds one flag per setting. Only flags the user actually
// set override the loaded configuration.
type settingsFlags struct {
	vals        config.Settings
	crownKind   string
	crownCentre []float64
	crownSize   []float64
	origin      []float64
	randomSeed  bool
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	d := config.Default()
	f.vals = d
	fs := cmd.Flags()

	fs.IntVar(&f.vals.AttractionPoints, "points", d.AttractionPoints, "number of attraction points")
	fs.StringVar(&f.crownKind, "crown", string(d.Crown.Kind), "crown volume ("+strings.Join(shape.Kinds(), ", ")+")")
	fs.Float64SliceVar(&f.crownCentre, "crown-centre", d.Crown.Centre[:], "crown centre x,y,z")
	fs.Float64Var(&f.vals.Crown.Radius, "crown-radius", d.Crown.Radius, "sphere crown radius")
	fs.Float64SliceVar(&f.crownSize, "crown-size", d.Crown.Size[:], "box crown extents x,y,z")
	fs.Float64Var(&f.vals.InfluenceRadius, "influence", d.InfluenceRadius, "influence radius in node steps")
	fs.Float64Var(&f.vals.KillDistance, "kill", d.KillDistance, "kill distance in node steps")
	fs.Float64Var(&f.vals.NodeSize, "node-size", d.NodeSize, "length of one growth step")
	fs.IntVar(&f.vals.MaxIterations, "max-iterations", d.MaxIterations, "growth step cap")
	fs.Float64SliceVar(&f.origin, "origin", d.Origin[:], "root position x,y,z")
	fs.Uint64Var(&f.vals.Seed, "seed", d.Seed, "random seed (0 means the default seed)")
	fs.BoolVar(&f.randomSeed, "random-seed", false, "pick a fresh random seed")
	fs.IntVar(&f.vals.BranchSides, "sides", d.BranchSides, "branch cross-section sides")
	fs.Float64Var(&f.vals.BranchThickness, "thickness", d.BranchThickness, "branch stroke width in world units")
	fs.StringVar(&f.vals.Colour, "colour", d.Colour, "branch colour as #rrggbb")

	cmd.MarkFlagsMutuallyExclusive("seed", "random-seed")
}

// apply copies every changed flag onto s.
func (f *settingsFlags) apply(fs *pflag.FlagSet, s *config.Settings) error {
	changed := fs.Changed
	if changed("points") {
		s.AttractionPoints = f.vals.AttractionPoints
	}
	if changed("crown") {
		s.Crown.Kind = shape.Kind(f.crownKind)
	}
	if changed("crown-radius") {
		s.Crown.Radius = f.vals.Crown.Radius
	}
	if changed("influence") {
		s.InfluenceRadius = f.vals.InfluenceRadius
	}
	if changed("kill") {
		s.KillDistance = f.vals.KillDistance
	}
	if changed("node-size") {
		s.NodeSize = f.vals.NodeSize
	}
	if changed("max-iterations") {
		s.MaxIterations = f.vals.MaxIterations
	}
	if changed("seed") {
		s.Seed = f.vals.Seed
	}
	if changed("sides") {
		s.BranchSides = f.vals.BranchSides
	}
	if changed("thickness") {
		s.BranchThickness = f.vals.BranchThickness
	}
	if changed("colour") {
		s.Colour = f.vals.Colour
	}

	triples := []struct {
		name string
		src  []float64
		dst  *[3]float64
	}{
		{"crown-centre", f.crownCentre, &s.Crown.Centre},
		{"crown-size", f.crownSize, &s.Crown.Size},
		{"origin", f.origin, &s.Origin},
	}
	for _, tr := range triples {
		if !changed(tr.name) {
			continue
		}
		if len(tr.src) != 3 {
			return errors.New(errors.ErrCodeInvalidSettings,
				"--%s needs three comma separated values, got %d", tr.name, len(tr.src))
		}
		copy(tr.dst[:], tr.src)
	}

	if f.randomSeed {
		s.Seed = rng.NewRandom().Seed()
	}
	return nil
}

// loadSettings reads the config file, if any, then applies flag overrides.
// Without an explicit path, arbor.toml in the working directory is used when
// present.
func loadSettings(path string, fs *pflag.FlagSet, f *settingsFlags) (config.Settings, error) {
	s := config.Default()
	if path == "" {
		if _, err := os.Stat(config.DefaultFileName); err == nil {
			path = config.DefaultFileName
		}
	}
	if path != "" {
		var err error
		if s, err = config.Load(path); err != nil {
			return s, err
		}
	}
	if err := f.apply(fs, &s); err != nil {
		return s, err
	}
	return s, s.Validate()
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		settings   settingsFlags
		render     renderFlags
		caching    cacheFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Grow a tree and write it in one or more formats",
		Long: `Grow a tree by space colonization and write the result.

Settings come from the defaults, then the --config file, then any flags given
on the command line. Identical settings and seed always grow the same tree, so
results are cached unless --no-cache is set.`,
		Example: `  arbor generate
  arbor generate --crown sphere --crown-centre 0,3,0 --crown-radius 2 -f svg,obj
  arbor generate --config arbor.toml --random-seed -o oak -f png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(configPath, cmd.Flags(), &settings)
			if err != nil {
				return err
			}
			opts := pipeline.Options{Settings: s, Logger: c.Logger}
			render.apply(&opts)

			runner, err := c.newRunner(cmd.Context(), caching)
			if err != nil {
				return err
			}
			defer runner.Close()

			return c.runGenerate(cmd, runner, opts, render.output)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "settings file (.toml, .yaml)")
	settings.register(cmd)
	render.register(cmd, defaultOutput)
	caching.register(cmd)

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, runner *pipeline.Runner, opts pipeline.Options, output string) error {
	w := cmd.OutOrStdout()
	sp := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Growing tree...")
	sp.Start()
	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		sp.StopWithError("Generation failed")
		return err
	}
	sp.Stop()

	paths, err := writeArtifacts(output, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}

	printSuccess(w, "Grew tree (seed %d)", opts.Settings.EffectiveSeed())
	printStats(w, result.Stats, result.CacheInfo.TreeHit)
	if result.Stats.Unreached > 0 {
		printWarning(w, "%d attraction points were never reached", result.Stats.Unreached)
	}
	for _, p := range paths {
		printFile(w, p)
	}
	if jsonPath, ok := pathFor(output, opts.Formats, pipeline.FormatJSON); ok {
		printNextStep(w, "Render again", fmt.Sprintf("%s render %s -f png", appName, jsonPath))
	}
	return nil
}

// writeArtifacts writes each artifact to output plus the format extension,
// in the order formats were requested.
func writeArtifacts(output string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if err := errors.ValidateOutputPath(output); err != nil {
		return nil, err
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory")
		}
	}
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(output, format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath appends the format extension to base unless base already
// carries it.
func outputPath(base, format string) string {
	ext := pipeline.Extension(format)
	if strings.HasSuffix(strings.ToLower(base), ext) {
		return base
	}
	return base + ext
}

func pathFor(output string, formats []string, format string) (string, bool) {
	for _, f := range formats {
		if f == format {
			return outputPath(output, format), true
		}
	}
	return "", false
}
