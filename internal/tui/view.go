package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskbot/internal/domain"
)

// Layout constants.
const (
	minTaskPaneWidth = 28
	taskPaneRatio    = 0.4
	headerHeight     = 1
	inputHeight      = 2 // Border and command line
)

// layout sizes the components for the current window.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	contentWidth := m.width - m.styles.App.GetHorizontalFrameSize()

	transcriptWidth := contentWidth
	if m.showTasks {
		transcriptWidth -= m.taskPaneWidth(contentWidth)
	}

	m.help.Width = contentWidth
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	bodyHeight := max(m.height-headerHeight-inputHeight-helpHeight, 1)

	m.viewport.Width = max(transcriptWidth, 1)
	m.viewport.Height = bodyHeight
	m.input.Width = max(contentWidth-lipgloss.Width(m.input.Prompt)-1, 1)
	m.viewport.GotoBottom()
}

func (m *Model) taskPaneWidth(contentWidth int) int {
	w := int(float64(contentWidth) * taskPaneRatio)
	return max(w, minTaskPaneWidth)
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.viewport.View()
	if m.showTasks {
		contentWidth := m.width - m.styles.App.GetHorizontalFrameSize()
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderTaskPane(m.taskPaneWidth(contentWidth)))
	}

	sections := []string{
		m.renderHeader(),
		body,
		m.styles.Input.Render(m.input.View()),
		m.styles.Help.Render(m.help.View(m.keys)),
	}
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderHeader() string {
	title := m.styles.Header.Render("taskbot")
	info := fmt.Sprintf("  %d tasks", len(m.tasks))
	if len(m.tasks) == 1 {
		info = "  1 task"
	}
	if m.busy {
		info += " · running"
	}
	return title + m.styles.HeaderInfo.Render(info)
}

// renderTaskPane lists the tasks numbered as the commands address them.
func (m *Model) renderTaskPane(width int) string {
	inner := max(width-m.styles.TaskPane.GetHorizontalFrameSize(), 1)

	var b strings.Builder
	b.WriteString(m.styles.TaskPaneTitle.Render("Tasks"))
	b.WriteString("\n" + m.renderLegend())
	if len(m.tasks) == 0 {
		b.WriteString("\n" + m.styles.TaskEmpty.Render("No tasks yet"))
	}
	for i, t := range m.tasks {
		number := m.styles.TaskNumber.Render(fmt.Sprintf("%d.", i+1))
		line := m.styles.TaskStyle(t).Render(t.String())
		b.WriteString("\n" + number + line)
	}

	style := m.styles.TaskPane.Width(inner)
	if m.viewport.Height > 0 {
		style = style.Height(max(m.viewport.Height-m.styles.TaskPane.GetVerticalFrameSize(), 1))
	}
	return style.Render(b.String())
}

// renderLegend shows each task kind in its own color.
func (m *Model) renderLegend() string {
	kinds := domain.AllKinds()
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		label := fmt.Sprintf("[%s] %s", k, k.Display())
		parts = append(parts, m.styles.TaskStyle(domain.Task{Kind: k}).Render(label))
	}
	return strings.Join(parts, " ")
}
