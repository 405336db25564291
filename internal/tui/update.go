package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskbot/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgResponse:
		m.busy = false
		m.tasks = msg.Tasks
		m.appendResponse(msg.Line, msg.Output.Message)
		if msg.Output.Exit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case MsgError:
		m.busy = false
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.HistoryPrev):
		m.recall(-1)
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.recall(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTasks):
		m.showTasks = !m.showTasks
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the command line to the handler.
// Blank lines and lines typed while a command runs are ignored.
func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	if line == "" || m.busy {
		return nil
	}

	m.history = append(m.history, line)
	m.historyPos = len(m.history)
	m.input.Reset()
	m.busy = true
	return m.execute(line)
}

// recall moves through previously submitted lines. Moving past the
// newest entry clears the command line.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := min(max(m.historyPos+delta, 0), len(m.history))
	m.historyPos = pos
	if pos == len(m.history) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *Model) appendResponse(line, message string) {
	m.transcript = append(m.transcript,
		m.styles.Echo.Render("> "+line)+"\n",
		domain.Frame(message),
	)
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	m.viewport.SetContent(strings.Join(m.transcript, ""))
	m.viewport.GotoBottom()
}
