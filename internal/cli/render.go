package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/config"
	treeio "github.com/matzehuels/arbor/pkg/io"
	"github.com/matzehuels/arbor/pkg/pipeline"
)

// renderCommand creates the render command, which re-renders a tree that
// was exported as JSON without growing it again.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		render    renderFlags
		caching   cacheFlags
		colour    string
		thickness float64
	)

	cmd := &cobra.Command{
		Use:   "render [tree.json]",
		Short: "Render an exported tree",
		Long: `Render a tree previously written with "arbor generate -f json".

The stroke colour and thickness stored in the file are used unless
overridden. The output base defaults to the input path without its extension.`,
		Example: `  arbor render tree.json -f png,pdf
  arbor render tree.json --view top --colour "#2f5d3a"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := treeio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			s := config.Default()
			if doc.Settings != nil {
				s = *doc.Settings
			}
			if cmd.Flags().Changed("colour") {
				s.Colour = colour
			}
			if cmd.Flags().Changed("thickness") {
				s.BranchThickness = thickness
			}

			opts := pipeline.Options{Settings: s, Logger: c.Logger}
			render.apply(&opts)
			if !cmd.Flags().Changed("output") {
				render.output = strings.TrimSuffix(args[0], filepath.Ext(args[0]))
			}

			runner, err := c.newRunner(cmd.Context(), caching)
			if err != nil {
				return err
			}
			defer runner.Close()

			prog := newProgress(c.Logger)
			artifacts, hit, err := runner.RenderWithCacheInfo(cmd.Context(), doc.Tree, opts)
			if err != nil {
				return err
			}
			paths, err := writeArtifacts(render.output, opts.Formats, artifacts)
			if err != nil {
				return err
			}
			prog.done("rendered", "files", len(paths), "cached", hit)

			w := cmd.OutOrStdout()
			printSuccess(w, "Rendered %d nodes", doc.Tree.Len())
			for _, p := range paths {
				printFile(w, p)
			}
			return nil
		},
	}

	render.register(cmd, "")
	caching.register(cmd)
	cmd.Flags().StringVar(&colour, "colour", config.DefaultColour, "branch colour as #rrggbb")
	cmd.Flags().Float64Var(&thickness, "thickness", config.DefaultBranchThickness, "branch stroke width in world units")

	return cmd
}
