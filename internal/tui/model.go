// Package tui is the interactive board. It drives a board service from the
// keyboard: tasks are grabbed, carried across columns and dropped, and every
// change can be undone for as long as the program runs.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// Mode is what the keyboard is currently driving
type Mode int

const (
	NormalMode Mode = iota
	AddTaskMode
	RenameColumnMode
	DeleteColumnConfirmMode
	ResetConfirmMode
)

type noticeLevel int

const (
	levelInfo noticeLevel = iota
	levelWarning
	levelError
)

// RefreshMsg is delivered for every event the board publishes
type RefreshMsg struct {
	Event events.Event
}

// Model represents the application state for the TUI
type Model struct {
	Ctx context.Context

	board boardservice.Service
	keys  KeyMap
	help  help.Model
	input textinput.Model

	mode         Mode
	targetColumn string // column a prompt or confirmation acts on

	width  int
	height int

	selectedColumn int
	selectedTask   int

	notice      string
	noticeLevel noticeLevel

	eventChan <-chan events.Event
	lastEvent events.Event
	warnings  func() []boardservice.Warning
}

// Option configures a Model
type Option func(*Model)

// WithEvents makes the model listen for board events on ch
func WithEvents(ch <-chan events.Event) Option {
	return func(m *Model) {
		m.eventChan = ch
	}
}

// WithWarnings sets the function that drains pending storage warnings.
// They are shown in the notice line after each command.
func WithWarnings(drain func() []boardservice.Warning) Option {
	return func(m *Model) {
		m.warnings = drain
	}
}

// WithKeyMap replaces the default bindings
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.keys = km
	}
}

// New creates the model positioned on the first task of the first column
func New(ctx context.Context, board boardservice.Service, opts ...Option) Model {
	input := textinput.New()
	input.CharLimit = 255

	m := Model{
		Ctx:   ctx,
		board: board,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		input: input,
	}
	for _, opt := range opts {
		opt(&m)
	}

	// warnings raised while loading the board
	m.collectWarnings()
	return m
}

// Init starts listening for board events
func (m Model) Init() tea.Cmd {
	return m.listen()
}

// Mode returns the current input mode
func (m Model) Mode() Mode {
	return m.mode
}

// Selection returns the selected column and task indexes
func (m Model) Selection() (int, int) {
	return m.selectedColumn, m.selectedTask
}

// Notice returns the message shown above the help line
func (m Model) Notice() string {
	return m.notice
}

// listen returns a command that waits for the next board event
func (m Model) listen() tea.Cmd {
	if m.eventChan == nil {
		return nil
	}

	ch, ctx := m.eventChan, m.Ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}

// currentColumn returns the selected column
func (m Model) currentColumn() (models.Column, bool) {
	columns := m.board.Board().Columns
	if m.selectedColumn < 0 || m.selectedColumn >= len(columns) {
		return models.Column{}, false
	}
	return columns[m.selectedColumn], true
}

// currentTask returns the selected task
func (m Model) currentTask() (string, bool) {
	column, ok := m.currentColumn()
	if !ok || m.selectedTask < 0 || m.selectedTask >= len(column.Tasks) {
		return "", false
	}
	return column.Tasks[m.selectedTask], true
}

// clampSelection keeps the selection on the board after columns or tasks go away
func (m *Model) clampSelection() {
	columns := m.board.Board().Columns
	if len(columns) == 0 {
		m.selectedColumn, m.selectedTask = 0, 0
		return
	}
	m.selectedColumn = min(max(m.selectedColumn, 0), len(columns)-1)

	tasks := columns[m.selectedColumn].Tasks
	if len(tasks) == 0 {
		m.selectedTask = 0
		return
	}
	m.selectedTask = min(max(m.selectedTask, 0), len(tasks)-1)
}

// selectTask moves the selection onto task, wherever it is
func (m *Model) selectTask(task string) {
	board := m.board.Board()
	col := board.ColumnOf(task)
	if col < 0 {
		m.clampSelection()
		return
	}
	m.selectedColumn = col
	m.selectedTask = board.Columns[col].IndexOf(task)
}

func (m *Model) setNotice(level noticeLevel, msg string) {
	m.notice = msg
	m.noticeLevel = level
}

// collectWarnings shows pending storage warnings. The last one wins the
// notice line; all of them are already in the log.
func (m *Model) collectWarnings() {
	if m.warnings == nil {
		return
	}
	for _, w := range m.warnings() {
		m.setNotice(levelWarning, "⚠ "+w.Error())
	}
}
