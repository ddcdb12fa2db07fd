package tui

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/dnd"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Context cancelled, shut down
	select {
	case <-m.Ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RefreshMsg:
		m.lastEvent = msg.Event
		m.clampSelection()
		return m, m.listen()

	case tea.KeyPressMsg:
		switch m.mode {
		case AddTaskMode, RenameColumnMode:
			return m.handleInputMode(msg)
		case DeleteColumnConfirmMode, ResetConfirmMode:
			return m.handleConfirmMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// cursor blink and other input plumbing
	if m.mode == AddTaskMode || m.mode == RenameColumnMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ============================================================================
// NORMAL MODE
// ============================================================================

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	km := m.keys

	switch {
	case key.Matches(msg, km.Quit):
		return m.handleQuit()
	case key.Matches(msg, km.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, km.PrevColumn):
		return m.handleNavigateLeft()
	case key.Matches(msg, km.NextColumn):
		return m.handleNavigateRight()
	case key.Matches(msg, km.PrevTask):
		return m.handleNavigateUp()
	case key.Matches(msg, km.NextTask):
		return m.handleNavigateDown()
	case key.Matches(msg, km.Grab):
		return m.handleGrab()
	case key.Matches(msg, km.Cancel):
		return m.handleCancelDrag()
	}

	// Everything below changes the board and waits for the drop
	if m.board.ActiveID() != "" {
		if isCommand(msg, km) {
			m.setNotice(levelInfo, "Drop or cancel the drag first")
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, km.AddTask):
		return m.handleAddTask()
	case key.Matches(msg, km.AddColumn):
		return m.handleAddColumn()
	case key.Matches(msg, km.RenameColumn):
		return m.handleRenameColumn()
	case key.Matches(msg, km.DeleteColumn):
		return m.handleDeleteColumn()
	case key.Matches(msg, km.Undo):
		return m.handleUndo()
	case key.Matches(msg, km.Redo):
		return m.handleRedo()
	case key.Matches(msg, km.Reset):
		m.mode = ResetConfirmMode
		return m, nil
	}

	return m, nil
}

func isCommand(msg tea.KeyPressMsg, km KeyMap) bool {
	return key.Matches(msg, km.AddTask, km.AddColumn, km.RenameColumn, km.DeleteColumn,
		km.Undo, km.Redo, km.Reset)
}

func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	if active := m.board.ActiveID(); active != "" {
		m.board.EndDrag(m.Ctx, dnd.DragEnd{ActiveID: active})
	}
	return m, tea.Quit
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.selectedColumn > 0 {
		m.selectedColumn--
		m.selectedTask = 0
	} else {
		m.setNotice(levelInfo, "Already at the first column")
	}
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	if m.selectedColumn < len(m.board.Board().Columns)-1 {
		m.selectedColumn++
		m.selectedTask = 0
	} else {
		m.setNotice(levelInfo, "Already at the last column")
	}
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.selectedTask > 0 {
		m.selectedTask--
	} else {
		m.setNotice(levelInfo, "Already at the first task")
	}
	return m, nil
}

// handleNavigateDown allows one step past the last task while dragging, so
// the drop can target the end of the column
func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		return m, nil
	}

	last := len(column.Tasks) - 1
	if m.board.ActiveID() != "" {
		last = len(column.Tasks)
	}
	if m.selectedTask < last {
		m.selectedTask++
	} else {
		m.setNotice(levelInfo, "Already at the last task")
	}
	return m, nil
}

// ============================================================================
// DRAG AND DROP
// ============================================================================

// handleGrab starts a drag on the selected task, or drops the task being dragged
func (m Model) handleGrab() (tea.Model, tea.Cmd) {
	if active := m.board.ActiveID(); active != "" {
		return m.handleDrop(active)
	}

	task, ok := m.currentTask()
	if !ok {
		m.setNotice(levelInfo, "No task to grab")
		return m, nil
	}
	if err := m.board.StartDrag(dnd.DragStart{ActiveID: task}); err != nil {
		m.setNotice(levelError, err.Error())
		return m, nil
	}

	m.setNotice(levelInfo, fmt.Sprintf("Dragging '%s' (space to drop, esc to cancel)", task))
	return m, nil
}

// handleDrop ends the drag over the selection: the selected task if there is
// one, otherwise the selected column. Dropping a task on itself moves nothing.
func (m Model) handleDrop(active string) (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		return m.handleCancelDrag()
	}

	over := column.ID
	if task, ok := m.currentTask(); ok {
		over = task
	}

	moved := m.board.EndDrag(m.Ctx, dnd.DragEnd{ActiveID: active, OverID: over})
	slog.Debug("tui drop", "task", active, "over", over, "moved", moved)

	m.selectTask(active)
	if moved {
		m.setNotice(levelInfo, fmt.Sprintf("Moved '%s'", active))
	} else {
		m.setNotice(levelInfo, "Nothing moved")
	}
	m.collectWarnings()
	return m, nil
}

func (m Model) handleCancelDrag() (tea.Model, tea.Cmd) {
	active := m.board.ActiveID()
	if active == "" {
		return m, nil
	}

	m.board.EndDrag(m.Ctx, dnd.DragEnd{ActiveID: active})
	m.selectTask(active)
	m.setNotice(levelInfo, "Drag cancelled")
	return m, nil
}

// ============================================================================
// BOARD COMMANDS
// ============================================================================

func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		m.setNotice(levelInfo, "Add a column first")
		return m, nil
	}
	return m.openPrompt(AddTaskMode, column.ID, "", "New task")
}

func (m Model) handleAddColumn() (tea.Model, tea.Cmd) {
	column, err := m.board.AddColumn(m.Ctx)
	if err != nil {
		m.setNotice(levelError, err.Error())
		return m, nil
	}

	m.selectedColumn = len(m.board.Board().Columns) - 1
	m.selectedTask = 0
	m.collectWarnings()

	// name it straight away; esc keeps the default title
	return m.openPrompt(RenameColumnMode, column.ID, column.Title, "Column title")
}

func (m Model) handleRenameColumn() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	return m.openPrompt(RenameColumnMode, column.ID, column.Title, "Column title")
}

func (m Model) handleDeleteColumn() (tea.Model, tea.Cmd) {
	column, ok := m.currentColumn()
	if !ok {
		return m, nil
	}
	m.mode = DeleteColumnConfirmMode
	m.targetColumn = column.ID
	return m, nil
}

func (m Model) handleUndo() (tea.Model, tea.Cmd) {
	if !m.board.Undo(m.Ctx) {
		m.setNotice(levelInfo, "Nothing to undo")
		return m, nil
	}
	m.clampSelection()
	m.setNotice(levelInfo, "Undone")
	m.collectWarnings()
	return m, nil
}

func (m Model) handleRedo() (tea.Model, tea.Cmd) {
	if !m.board.Redo(m.Ctx) {
		m.setNotice(levelInfo, "Nothing to redo")
		return m, nil
	}
	m.clampSelection()
	m.setNotice(levelInfo, "Redone")
	m.collectWarnings()
	return m, nil
}

// ============================================================================
// INPUT MODE
// ============================================================================

func (m Model) openPrompt(mode Mode, columnID, value, placeholder string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.targetColumn = columnID
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) closePrompt() Model {
	m.mode = NormalMode
	m.targetColumn = ""
	m.input.Blur()
	m.input.Reset()
	return m
}

// handleInputMode handles text input for new tasks and column titles
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.handleInputConfirm()
	case "esc":
		return m.closePrompt(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleInputConfirm() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	columnID := m.targetColumn
	mode := m.mode
	m = m.closePrompt()

	switch mode {
	case AddTaskMode:
		if err := m.board.AddTask(m.Ctx, columnID, value); err != nil {
			m.setNotice(levelError, err.Error())
			return m, nil
		}
		m.selectTask(value)
		m.setNotice(levelInfo, fmt.Sprintf("Added '%s'", value))
	case RenameColumnMode:
		if err := m.board.RenameColumn(m.Ctx, columnID, value); err != nil {
			m.setNotice(levelError, err.Error())
			return m, nil
		}
	}

	m.collectWarnings()
	return m, nil
}

// ============================================================================
// CONFIRMATIONS
// ============================================================================

func (m Model) handleConfirmMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
	case "n", "N", "esc":
		m.mode = NormalMode
		m.targetColumn = ""
		return m, nil
	default:
		return m, nil
	}

	mode, columnID := m.mode, m.targetColumn
	m.mode = NormalMode
	m.targetColumn = ""

	switch mode {
	case DeleteColumnConfirmMode:
		if err := m.board.DeleteColumn(m.Ctx, columnID); err != nil {
			m.setNotice(levelError, err.Error())
			return m, nil
		}
		m.clampSelection()
		m.setNotice(levelInfo, "Column deleted")
	case ResetConfirmMode:
		m.board.Reset(m.Ctx)
		m.selectedColumn, m.selectedTask = 0, 0
		m.setNotice(levelInfo, "Board reset")
	}

	m.collectWarnings()
	return m, nil
}
