// Package tui provides a terminal UI for running task commands.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/usecase"
)

// CommandHandler runs one command line against the task list.
type CommandHandler interface {
	Execute(ctx context.Context, in usecase.HandleCommandInput) (*usecase.HandleCommandOutput, error)
}

// Options configures a new Model.
type Options struct {
	Quiet bool // Skip the greeting
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	ctx     context.Context
	handler CommandHandler
	list    *domain.TaskList
	err     error

	// State
	transcript []string
	history    []string
	tasks      []domain.Task

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	viewport viewport.Model
	input    textinput.Model

	// Numeric state (smaller types last)
	width      int
	height     int
	historyPos int
	busy       bool
	showTasks  bool
	quitting   bool
}

// New creates a Model that sends command lines to handler.
// list must be the list handler mutates; it is only read between commands.
func New(handler CommandHandler, list *domain.TaskList, opts Options) *Model {
	ti := textinput.New()
	ti.Placeholder = "todo read book"
	ti.CharLimit = 500
	ti.Focus()

	m := &Model{
		ctx:       context.Background(),
		handler:   handler,
		list:      list,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		viewport:  viewport.New(0, 0),
		input:     ti,
		tasks:     list.Tasks(),
		showTasks: true,
	}
	m.input.Prompt = m.styles.Prompt.Render("> ")
	if !opts.Quiet {
		m.transcript = append(m.transcript, domain.Frame(domain.GreetingMessage()))
	}
	m.refreshTranscript()
	return m
}

// WithContext sets the context passed to the command handler.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err returns the store fault that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Run starts the TUI and blocks until the user quits.
// A store fault stops the program and is returned.
func Run(ctx context.Context, handler CommandHandler, list *domain.TaskList, opts Options) error {
	m := New(handler, list, opts).WithContext(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return m.Err()
}

// execute returns a command that runs line through the handler.
// Only one command is in flight at a time, so the list is not shared.
func (m *Model) execute(line string) tea.Cmd {
	handler, list, ctx := m.handler, m.list, m.ctx
	return func() tea.Msg {
		out, err := handler.Execute(ctx, usecase.HandleCommandInput{Line: line})
		if err != nil {
			return MsgError{Line: line, Err: err}
		}
		return MsgResponse{Line: line, Output: out, Tasks: list.Tasks()}
	}
}
