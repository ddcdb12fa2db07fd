package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/models"
)

const (
	minColumnWidth = 18
	maxColumnWidth = 36
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	view.Content = m.render()
	return view
}

// render lays out header, board, prompt, notice and help from top to bottom
func (m Model) render() string {
	sections := []string{m.renderHeader(), m.renderBoard()}

	if prompt := m.renderPrompt(); prompt != "" {
		sections = append(sections, prompt)
	}
	if m.notice != "" {
		sections = append(sections, m.renderNotice())
	}
	sections = append(sections, m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// Constrain content to fit terminal height
	if m.height > 0 {
		lines := strings.Split(content, "\n")
		if len(lines) > m.height {
			content = strings.Join(lines[len(lines)-m.height:], "\n")
		}
	}
	return content
}

func (m Model) renderHeader() string {
	board := m.board.Board()
	left := TitleStyle.Render("Kanban") +
		SubtleStyle.Render(fmt.Sprintf("  %d columns, %d tasks", len(board.Columns), board.TaskCount()))

	var flags []string
	if m.board.CanUndo() {
		flags = append(flags, "undo")
	}
	if m.board.CanRedo() {
		flags = append(flags, "redo")
	}
	if m.lastEvent.SequenceID > 0 {
		flags = append(flags, fmt.Sprintf("#%d %s", m.lastEvent.SequenceID, m.lastEvent.Op))
	}
	right := SubtleStyle.Render(strings.Join(flags, " · "))

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderBoard() string {
	columns := m.board.Board().Columns
	if len(columns) == 0 {
		return SubtleStyle.Render("\nNo columns. Press C to add one.\n")
	}

	width := m.columnWidth(len(columns))
	active := m.board.ActiveID()

	rendered := make([]string, 0, len(columns))
	for i, column := range columns {
		selected := i == m.selectedColumn
		selectedTask := -1
		if selected {
			selectedTask = m.selectedTask
		}
		rendered = append(rendered, renderColumn(column, width, selected, selectedTask, active))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// columnWidth shares the terminal width between columns within fixed bounds
func (m Model) columnWidth(n int) int {
	if n == 0 {
		return maxColumnWidth
	}
	return min(max(m.width/n, minColumnWidth), maxColumnWidth)
}

// renderColumn renders a column with its title and tasks
//
//	╭──────────────╮
//	│ To Do (3)    │
//	│ › Task 1     │
//	│   Task 2     │
//	╰──────────────╯
func renderColumn(column models.Column, width int, selected bool, selectedTask int, active string) string {
	inner := width - 4 // border and padding

	lines := []string{TitleStyle.Render(truncate(fmt.Sprintf("%s (%d)", column.Title, len(column.Tasks)), inner))}

	if len(column.Tasks) == 0 {
		lines = append(lines, SubtleStyle.Italic(true).Render("No tasks"))
	}
	for i, task := range column.Tasks {
		lines = append(lines, renderTask(task, inner, i == selectedTask, task == active))
	}

	// drop slot after the last task
	if selected && active != "" && selectedTask >= len(column.Tasks) {
		lines = append(lines, SelectedTaskStyle.Render("› ┈┈ drop here"))
	}

	style := ColumnStyle
	if selected {
		style = SelectedColumnStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func renderTask(task string, width int, selected, dragging bool) string {
	text := truncate(task, width-2)
	switch {
	case dragging:
		return DraggingStyle.Render("✥ " + text)
	case selected:
		return SelectedTaskStyle.Render("› " + text)
	default:
		return TaskStyle.Render("  " + text)
	}
}

func (m Model) renderPrompt() string {
	switch m.mode {
	case AddTaskMode:
		return PromptStyle.Render(TitleStyle.Render("New task") + "\n" + m.input.View())
	case RenameColumnMode:
		return PromptStyle.Render(TitleStyle.Render("Column title") + "\n" + m.input.View())
	case DeleteColumnConfirmMode:
		title := m.targetColumn
		board := m.board.Board()
		if idx := board.ColumnIndex(m.targetColumn); idx >= 0 {
			title = board.Columns[idx].Title
		}
		return PromptStyle.Render(ErrorStyle.Render(fmt.Sprintf("Delete column '%s' and its tasks?", title)) + " (y/n)")
	case ResetConfirmMode:
		return PromptStyle.Render(ErrorStyle.Render("Reset the board to the starter tasks?") + " (y/n)")
	}
	return ""
}

func (m Model) renderNotice() string {
	switch m.noticeLevel {
	case levelError:
		return ErrorStyle.Render("❌ " + m.notice)
	case levelWarning:
		return WarningStyle.Render(m.notice)
	default:
		return InfoStyle.Render(m.notice)
	}
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
