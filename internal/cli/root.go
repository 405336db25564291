// Package cli provides the command-line interface for taskbot.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskbot/internal/app"
	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/infra/config"
	"github.com/runoshun/taskbot/internal/usecase"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// annotationNoContainer marks commands that run without loading config or the store.
const annotationNoContainer = "taskbot/no-container"

// ContainerFactory builds the container once flags are parsed.
type ContainerFactory func(opts app.Options) (*app.Container, error)

// deps holds the container shared by every subcommand.
// It is built lazily because --config and --data-dir decide how.
type deps struct {
	factory ContainerFactory
	c       *app.Container
	opts    app.Options
}

// container returns the container, building it on first use.
func (d *deps) container() (*app.Container, error) {
	if d.c != nil {
		return d.c, nil
	}
	if d.factory == nil {
		return nil, errors.New("no container available")
	}
	c, err := d.factory(d.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	d.c = c
	return c, nil
}

// close releases the container if one was built.
func (d *deps) close() error {
	if d.c == nil {
		return nil
	}
	return d.c.Close()
}

// configManager returns the container's manager, or one for the selected
// config file when no container was built.
func (d *deps) configManager() domain.ConfigManager {
	if d.c != nil && d.c.ConfigManager != nil {
		return d.c.ConfigManager
	}
	return config.NewManager(d.opts.ConfigPath)
}

// NewRootCommand creates the root command for taskbot.
// factory builds the container after flags are parsed; version is shown by --version.
func NewRootCommand(factory ContainerFactory, version string) *cobra.Command {
	return newRootCommand(&deps{factory: factory}, version)
}

func newRootCommand(d *deps, version string) *cobra.Command {
	var quiet bool

	root := &cobra.Command{
		Use:   "taskbot",
		Short: "Personal task tracker driven by one-line commands",
		Long: `taskbot keeps a list of todos, deadlines and events.

Run without arguments to start an interactive session reading commands
from standard input:

` + commandHelp() + `
The list is saved after every change.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoContainer] == "true" {
				return nil
			}

			c, err := d.container()
			if err != nil {
				return err
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			list, err := loadList(cmd, c)
			if err != nil {
				return err
			}

			uc := c.RunSessionUseCase(list, newStdinSource(cmd), cmd.OutOrStdout())
			_, err = uc.Execute(cmd.Context(), usecase.RunSessionInput{
				Quiet: quiet || c.AppConfig.Session.Quiet,
			})
			return err
		},
	}

	root.PersistentFlags().StringVar(&d.opts.ConfigPath, "config", "", "Config file (overrides the global config)")
	root.PersistentFlags().StringVar(&d.opts.DataDir, "data-dir", "", "Data directory (default $XDG_DATA_HOME/taskbot)")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "Skip the greeting")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	execCmd := newExecCommand(d)
	execCmd.GroupID = groupTask

	listCmd := newListCommand(d)
	listCmd.GroupID = groupTask

	tuiCmd := newTUICommand(d)
	tuiCmd.GroupID = groupTask

	configCmd := newConfigCommand(d)
	configCmd.GroupID = groupSetup

	migrateCmd := newMigrateCommand(d)
	migrateCmd.GroupID = groupSetup

	root.AddCommand(
		execCmd,
		listCmd,
		tuiCmd,
		configCmd,
		migrateCmd,
	)
	closeAfterRun(d, root)

	return root
}

// closeAfterRun wraps every RunE in the tree so the container is closed
// whether or not the command fails. Cobra skips post-run hooks on error.
func closeAfterRun(d *deps, cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if cerr := d.close(); err == nil {
					err = cerr
				}
			}()
			return run(cmd, args)
		}
	}
	for _, sub := range cmd.Commands() {
		closeAfterRun(d, sub)
	}
}

// commandHelp lists the usage of every session command, one per line.
func commandHelp() string {
	var b strings.Builder
	for _, c := range domain.AllCommands() {
		_, _ = fmt.Fprintf(&b, "  %s\n", c.Usage())
	}
	return b.String()
}

// loadList loads the task list and reports skipped records on stderr.
func loadList(cmd *cobra.Command, c *app.Container) (*domain.TaskList, error) {
	out, err := c.LoadTasksUseCase().Execute(cmd.Context())
	if err != nil {
		return nil, err
	}
	for _, e := range out.Skipped {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %v\n", e)
	}
	return out.List, nil
}
