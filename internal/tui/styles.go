package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskbot/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Text    lipgloss.Color

	// Task kinds
	Todo     lipgloss.Color
	Deadline lipgloss.Color
	Event    lipgloss.Color
	Done     lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Text:    lipgloss.Color("#DFE6E9"), // Light gray

	Todo:     lipgloss.Color("#74B9FF"), // Light blue
	Deadline: lipgloss.Color("#FDCB6E"), // Yellow
	Event:    lipgloss.Color("#A29BFE"), // Lavender
	Done:     lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderInfo lipgloss.Style

	// Transcript
	Transcript lipgloss.Style
	Echo       lipgloss.Style

	// Task pane
	TaskPane      lipgloss.Style
	TaskPaneTitle lipgloss.Style
	TaskNumber    lipgloss.Style
	TaskTodo      lipgloss.Style
	TaskDeadline  lipgloss.Style
	TaskEvent     lipgloss.Style
	TaskDone      lipgloss.Style
	TaskEmpty     lipgloss.Style

	// Command line
	Input  lipgloss.Style
	Prompt lipgloss.Style

	Help  lipgloss.Style
	Error lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Transcript: lipgloss.NewStyle().
			Foreground(Colors.Text),
		Echo: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		TaskPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),
		TaskPaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		TaskNumber: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		TaskTodo: lipgloss.NewStyle().
			Foreground(Colors.Todo),
		TaskDeadline: lipgloss.NewStyle().
			Foreground(Colors.Deadline),
		TaskEvent: lipgloss.NewStyle().
			Foreground(Colors.Event),
		TaskDone: lipgloss.NewStyle().
			Foreground(Colors.Done).
			Strikethrough(true),
		TaskEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Colors.Muted),
		Prompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// TaskStyle returns the style for a task: done tasks share one style,
// pending ones are colored by kind.
func (s Styles) TaskStyle(t domain.Task) lipgloss.Style {
	if t.Done {
		return s.TaskDone
	}
	switch t.Kind {
	case domain.KindTodo:
		return s.TaskTodo
	case domain.KindDeadline:
		return s.TaskDeadline
	case domain.KindEvent:
		return s.TaskEvent
	default:
		return s.Transcript
	}
}
