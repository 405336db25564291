package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/usecase"
)

// newMigrateCommand creates the migrate command.
func newMigrateCommand(d *deps) *cobra.Command {
	var opts struct {
		From     string
		To       string
		FromPath string
		ToPath   string
		Force    bool
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy tasks between store backends",
		Long: `Copy every task from one store backend to another.

Backends: ` + strings.Join(domain.AllStoreTypes(), ", ") + `.
--from defaults to the configured backend. Paths default to the configured
path for the configured backend and to the data directory otherwise.
Corrupt records are skipped. A destination that already holds tasks is
left alone unless --force is set.

Examples:
  # Move the default text file into SQLite
  taskbot migrate --to sqlite

  # Copy a JSON file into a git repository
  taskbot migrate --from json --from-path ./tasks.json --to git --to-path ./tasks.git`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}

			from := strings.ToLower(strings.TrimSpace(opts.From))
			if from == "" {
				from = c.Config.StoreType
			}
			to := strings.ToLower(strings.TrimSpace(opts.To))
			if to == "" {
				return fmt.Errorf("--to is required (one of %s)", strings.Join(domain.AllStoreTypes(), ", "))
			}

			fromPath := opts.FromPath
			if fromPath == "" {
				fromPath = c.StorePathFor(from)
			}
			toPath := opts.ToPath
			if toPath == "" {
				toPath = c.StorePathFor(to)
			}
			if from == to && fromPath == toPath {
				return fmt.Errorf("source and destination are the same: %s %s", from, fromPath)
			}

			source, err := c.OpenStore(from, fromPath)
			if err != nil {
				return fmt.Errorf("open source: %w", err)
			}
			dest, err := c.OpenStore(to, toPath)
			if err != nil {
				return fmt.Errorf("open destination: %w", err)
			}

			out, err := c.MigrateStoreUseCase(source, dest).Execute(cmd.Context(), usecase.MigrateStoreInput{Force: opts.Force})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d/%d tasks from %s (%s) to %s (%s)\n",
				out.Migrated, out.Total, from, fromPath, to, toPath)
			if out.Skipped > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Skipped %d corrupt records\n", out.Skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Source backend (default: configured backend)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Destination backend")
	cmd.Flags().StringVar(&opts.FromPath, "from-path", "", "Source path")
	cmd.Flags().StringVar(&opts.ToPath, "to-path", "", "Destination path")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite a destination that already holds tasks")

	return cmd
}
