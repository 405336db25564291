package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/infra/console"
	"github.com/runoshun/taskbot/internal/usecase"
)

// newStdinSource reads the command's input.
func newStdinSource(cmd *cobra.Command) domain.LineSource {
	return console.NewReader(cmd.InOrStdin())
}

// newExecCommand creates the exec command.
func newExecCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a single command",
		Long: `Run a single command line and print the response.

The arguments are joined with spaces, so quoting is optional.
The exit status is non-zero when the command is rejected.

Examples:
  taskbot exec todo read book
  taskbot exec "deadline return book /by 2020-06-01 1800"
  taskbot exec mark 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLine(cmd, d, strings.Join(args, " "))
		},
	}
}

// newListCommand creates the list command.
func newListCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLine(cmd, d, string(domain.CommandList))
		},
	}
}

// runLine loads the list, handles one line and prints the framed response.
func runLine(cmd *cobra.Command, d *deps, line string) error {
	c, err := d.container()
	if err != nil {
		return err
	}
	list, err := loadList(cmd, c)
	if err != nil {
		return err
	}

	out, err := c.HandleCommandUseCase(list).Execute(cmd.Context(), usecase.HandleCommandInput{Line: line})
	if err != nil {
		return err
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), domain.Frame(out.Message)); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return out.UserErr
}
