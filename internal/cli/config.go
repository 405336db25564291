package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/infra/config"
	"github.com/runoshun/taskbot/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long: `Display the config file in use and the effective configuration
after merging defaults, the global config and --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}

			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			switch {
			case out.File.Path == "":
				_, _ = fmt.Fprintln(w, "- (no config directory)")
			case out.File.Exists:
				_, _ = fmt.Fprintf(w, "- %s\n", out.File.Path)
			default:
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.File.Path)
			}
			_, _ = fmt.Fprintf(w, "- data: %s\n", c.Config.DataDir)
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Store]")
			_, _ = fmt.Fprintf(w, "- type: %s\n", c.Config.StoreType)
			_, _ = fmt.Fprintf(w, "- path: %s\n", c.Config.StorePath)
			if out.LastSaved.IsZero() {
				_, _ = fmt.Fprintln(w, "- last saved: never")
			} else {
				_, _ = fmt.Fprintf(w, "- last saved: %s\n", out.LastSaved.Local().Format(time.DateTime))
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			text, err := config.Encode(out.Effective)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(w, text)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCommand(d))
	return cmd
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(d *deps) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config file",
		Long: `Write a commented config file with the default settings.

The file goes to --config when given, otherwise to the global config
path ($XDG_CONFIG_HOME/taskbot/config.toml). An existing file is kept
unless --force is set.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoContainer: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitConfig(d.configManager())
			out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{Force: force})
			if err != nil {
				if errors.Is(err, domain.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}
