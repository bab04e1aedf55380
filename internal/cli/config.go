package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/arbor/pkg/config"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect settings files",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a settings file with the default values",
		Long: `Write a commented settings file holding the defaults. The encoding follows
the extension (.toml, .yaml or .yml); the default path is arbor.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Write(path, config.Default(), force); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printSuccess(w, "Wrote default settings")
			printFile(w, path)
			printNextStep(w, "Grow a tree", appName+" generate --config "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var (
		path   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := config.Default()
			if path != "" {
				var err error
				if s, err = config.Load(path); err != nil {
					return err
				}
			}
			return config.Encode(cmd.OutOrStdout(), s, config.Format(format))
		},
	}

	cmd.Flags().StringVar(&path, "config", "", "settings file to load instead of the defaults")
	cmd.Flags().StringVar(&format, "format", string(config.FormatTOML), "output encoding (toml, yaml)")
	return cmd
}
