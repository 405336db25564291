package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/tui"
)

// launchTUIFunc starts the TUI. It is a variable so tests can replace it.
var launchTUIFunc = func(ctx context.Context, handler tui.CommandHandler, list *domain.TaskList, opts tui.Options) error {
	return tui.Run(ctx, handler, list, opts)
}

// newTUICommand creates the tui command.
func newTUICommand(d *deps) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI",
		Long: `Start a full-screen session. Commands are typed on the bottom line,
responses scroll above it and the task list is shown alongside.

BYE, esc or ctrl+c leaves the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			list, err := loadList(cmd, c)
			if err != nil {
				return err
			}

			return launchTUIFunc(cmd.Context(), c.HandleCommandUseCase(list), list, tui.Options{
				Quiet: quiet || c.AppConfig.Session.Quiet,
			})
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the greeting")
	return cmd
}
