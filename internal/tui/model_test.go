package tui

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// ===== TEST HELPERS =====

type harness struct {
	model    Model
	board    boardservice.Service
	store    *storage.MemoryStore
	warnings []boardservice.Warning
}

func newHarness(t *testing.T, opts ...boardservice.Option) *harness {
	t.Helper()

	h := &harness{store: storage.NewMemoryStore()}
	base := []boardservice.Option{
		boardservice.WithLogger(logging.Discard()),
		boardservice.WithWarningHandler(func(w boardservice.Warning) {
			h.warnings = append(h.warnings, w)
		}),
	}
	h.board = boardservice.NewService(context.Background(), h.store, append(base, opts...)...)
	h.model = New(context.Background(), h.board, WithWarnings(h.drain))
	return h
}

func (h *harness) drain() []boardservice.Warning {
	out := h.warnings
	h.warnings = nil
	return out
}

// keyMsg builds the key press bubbletea delivers for a keystroke name
func keyMsg(name string) tea.KeyPressMsg {
	switch name {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "ctrl+r":
		return tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}
	}
	r := []rune(name)[0]
	return tea.KeyPressMsg{Code: r, Text: name}
}

// press sends keystrokes one at a time and returns the last command
func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = h.model.Update(keyMsg(k))
		h.model = updated.(Model)
	}
	return cmd
}

// typeText types s into the focused input
func (h *harness) typeText(s string) {
	for _, r := range s {
		updated, _ := h.model.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		h.model = updated.(Model)
	}
}

func (h *harness) resize(width, height int) {
	updated, _ := h.model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	h.model = updated.(Model)
}

func (h *harness) tasks(columnID string) []string {
	board := h.board.Board()
	return board.Columns[board.ColumnIndex(columnID)].Tasks
}

// ===== NAVIGATION =====

func TestNew_SelectsFirstTask(t *testing.T) {
	h := newHarness(t)

	col, task := h.model.Selection()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, task)
	assert.Equal(t, NormalMode, h.model.Mode())
	assert.Equal(t, "Loading...", h.model.View().Content)
}

func TestNavigation(t *testing.T) {
	h := newHarness(t)

	h.press("l", "j")
	col, task := h.model.Selection()
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, task)

	h.press("j")
	assert.Equal(t, "Already at the last task", h.model.Notice())

	h.press("right", "l")
	col, task = h.model.Selection()
	assert.Equal(t, 2, col)
	assert.Equal(t, 0, task, "changing column resets the task")
	assert.Equal(t, "Already at the last column", h.model.Notice())

	h.press("h", "left", "h")
	col, _ = h.model.Selection()
	assert.Equal(t, 0, col)
	assert.Equal(t, "Already at the first column", h.model.Notice())
}

// ===== DRAG AND DROP =====

func TestDrag_AcrossColumns(t *testing.T) {
	h := newHarness(t)

	h.press("space")
	assert.Equal(t, "Task 1", h.board.ActiveID())
	assert.Contains(t, h.model.Notice(), "Dragging 'Task 1'")

	h.press("l", "space")

	assert.Empty(t, h.board.ActiveID())
	assert.Equal(t, []string{"Task 2", "Task 3"}, h.tasks(models.ColumnTodo))
	assert.Equal(t, []string{"Task 4", "Task 5", "Task 1"}, h.tasks(models.ColumnInProgress))
	assert.Equal(t, "Moved 'Task 1'", h.model.Notice())

	col, task := h.model.Selection()
	assert.Equal(t, 1, col, "selection follows the dropped task")
	assert.Equal(t, 2, task)
	assert.True(t, h.board.CanUndo())
}

func TestDrag_WithinColumnReorders(t *testing.T) {
	h := newHarness(t)

	h.press("space", "j", "j", "space")

	assert.Equal(t, []string{"Task 2", "Task 3", "Task 1"}, h.tasks(models.ColumnTodo))
}

func TestDrag_PastLastTaskTargetsColumn(t *testing.T) {
	h := newHarness(t)

	// Task 4, then onto the slot below Done's last task
	h.press("l", "space", "l", "j")
	col, task := h.model.Selection()
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, task)

	h.press("space")
	assert.Equal(t, []string{"Task 6", "Task 4"}, h.tasks(models.ColumnDone))
}

func TestDrag_DropOnItselfIsNoOp(t *testing.T) {
	h := newHarness(t)

	h.press("space", "space")

	assert.True(t, h.board.Board().Equal(models.Seed()))
	assert.False(t, h.board.CanUndo())
	assert.Equal(t, "Nothing moved", h.model.Notice())
}

func TestDrag_Cancel(t *testing.T) {
	h := newHarness(t)

	h.press("j", "space", "l", "esc")

	assert.Empty(t, h.board.ActiveID())
	assert.True(t, h.board.Board().Equal(models.Seed()))
	assert.Equal(t, "Drag cancelled", h.model.Notice())
	col, task := h.model.Selection()
	assert.Equal(t, 0, col)
	assert.Equal(t, 1, task)
}

func TestDrag_BlocksBoardCommands(t *testing.T) {
	h := newHarness(t)

	h.press("space", "a")

	assert.Equal(t, NormalMode, h.model.Mode())
	assert.Equal(t, "Drop or cancel the drag first", h.model.Notice())
	assert.Equal(t, "Task 1", h.board.ActiveID())
}

func TestQuit_EndsDrag(t *testing.T) {
	h := newHarness(t)

	h.press("space")
	cmd := h.press("q")

	require.NotNil(t, cmd)
	assert.Empty(t, h.board.ActiveID())
	assert.True(t, h.board.Board().Equal(models.Seed()))
}

// ===== HISTORY =====

func TestUndoRedoKeys(t *testing.T) {
	h := newHarness(t)

	h.press("u")
	assert.Equal(t, "Nothing to undo", h.model.Notice())

	h.press("space", "l", "space")
	moved := h.board.Board()

	h.press("u")
	assert.True(t, h.board.Board().Equal(models.Seed()))
	assert.Equal(t, "Undone", h.model.Notice())
	col, task := h.model.Selection()
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, task, "selection clamps to the shorter column")

	h.press("ctrl+r")
	assert.True(t, h.board.Board().Equal(moved))
	assert.Equal(t, "Redone", h.model.Notice())

	h.press("U")
	assert.Equal(t, "Nothing to redo", h.model.Notice())
}

func TestReset_Confirm(t *testing.T) {
	h := newHarness(t)
	h.press("space", "l", "space")

	h.press("R")
	assert.Equal(t, ResetConfirmMode, h.model.Mode())
	h.press("n")
	assert.Equal(t, NormalMode, h.model.Mode())
	assert.False(t, h.board.Board().Equal(models.Seed()))

	h.press("R", "y")
	assert.True(t, h.board.Board().Equal(models.Seed()))
	assert.Equal(t, "Board reset", h.model.Notice())
	assert.True(t, h.board.CanUndo(), "reset can be undone")
}

// ===== BOARD COMMANDS =====

func TestAddTask(t *testing.T) {
	h := newHarness(t)

	h.press("a")
	require.Equal(t, AddTaskMode, h.model.Mode())
	h.typeText("Deploy")
	h.press("enter")

	assert.Equal(t, NormalMode, h.model.Mode())
	assert.Equal(t, []string{"Task 1", "Task 2", "Task 3", "Deploy"}, h.tasks(models.ColumnTodo))
	_, task := h.model.Selection()
	assert.Equal(t, 3, task)
}

func TestAddTask_ValidationError(t *testing.T) {
	h := newHarness(t)

	h.press("a", "enter")
	assert.Equal(t, NormalMode, h.model.Mode())
	assert.Contains(t, h.model.Notice(), boardservice.ErrEmptyTask.Error())

	h.press("a")
	h.typeText("Task 2")
	h.press("enter")
	assert.Contains(t, h.model.Notice(), boardservice.ErrDuplicateTask.Error())
	assert.Len(t, h.tasks(models.ColumnTodo), 3)
}

func TestAddTask_EscapeDiscards(t *testing.T) {
	h := newHarness(t)

	h.press("a")
	h.typeText("Draft")
	h.press("esc")

	assert.Equal(t, NormalMode, h.model.Mode())
	assert.Len(t, h.tasks(models.ColumnTodo), 3)
}

func TestAddColumnPromptsForTitle(t *testing.T) {
	h := newHarness(t)

	h.press("C")
	require.Equal(t, RenameColumnMode, h.model.Mode())
	col, _ := h.model.Selection()
	assert.Equal(t, 3, col)

	h.typeText("!")
	h.press("enter")

	columns := h.board.Board().Columns
	require.Len(t, columns, 4)
	assert.Equal(t, models.NewColumnTitle+"!", columns[3].Title)
}

func TestRenameColumn(t *testing.T) {
	h := newHarness(t)

	h.press("r")
	h.typeText("!")
	h.press("enter")

	assert.Equal(t, "To Do!", h.board.Board().Columns[0].Title)
}

func TestDeleteColumn_Confirm(t *testing.T) {
	h := newHarness(t)
	h.press("l", "l")

	h.press("X")
	require.Equal(t, DeleteColumnConfirmMode, h.model.Mode())
	h.press("esc")
	assert.Len(t, h.board.Board().Columns, 3)

	h.press("X", "y")
	assert.Len(t, h.board.Board().Columns, 2)
	assert.Equal(t, "Column deleted", h.model.Notice())
	col, _ := h.model.Selection()
	assert.Equal(t, 1, col, "selection clamps to the remaining columns")
}

// ===== WARNINGS AND EVENTS =====

func TestSaveWarningsShowInNotice(t *testing.T) {
	h := newHarness(t)
	h.store.FailSaves(errors.New("disk full"))

	h.press("space", "l", "space")

	assert.Contains(t, h.model.Notice(), "disk full")
	assert.Equal(t, []string{"Task 4", "Task 5", "Task 1"}, h.tasks(models.ColumnInProgress),
		"the move still happened")
}

func TestRefreshFromEvents(t *testing.T) {
	bus := events.NewBus()
	ch, unsubscribe := bus.Subscribe(8)
	defer unsubscribe()

	h := newHarness(t, boardservice.WithEventPublisher(bus))
	h.model = New(context.Background(), h.board, WithEvents(ch))

	cmd := h.model.Init()
	require.NotNil(t, cmd)

	require.NoError(t, h.board.AddTask(context.Background(), models.ColumnDone, "Ship"))
	msg := cmd()
	refresh, ok := msg.(RefreshMsg)
	require.True(t, ok)
	assert.Equal(t, boardservice.OpAddTask, refresh.Event.Op)

	h.resize(120, 40)
	updated, next := h.model.Update(refresh)
	h.model = updated.(Model)
	assert.NotNil(t, next, "keeps listening")
	assert.Contains(t, h.model.View().Content, "#1 add_task")
}

func TestCancelledContextQuits(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	h.model = New(ctx, h.board)
	cancel()

	_, cmd := h.model.Update(keyMsg("j"))
	require.NotNil(t, cmd)
}

// ===== VIEW =====

func TestView_RendersBoard(t *testing.T) {
	h := newHarness(t)
	h.resize(120, 40)

	content := h.model.View().Content
	for _, want := range []string{"Kanban", "To Do (3)", "In Progress (2)", "Done (1)", "› Task 1", "Task 6"} {
		assert.Contains(t, content, want)
	}

	h.press("space")
	assert.Contains(t, h.model.View().Content, "✥ Task 1")
}

func TestView_Prompts(t *testing.T) {
	h := newHarness(t)
	h.resize(120, 40)

	h.press("X")
	assert.Contains(t, h.model.View().Content, "Delete column 'To Do' and its tasks?")

	h.press("n", "R")
	assert.Contains(t, h.model.View().Content, "Reset the board")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
