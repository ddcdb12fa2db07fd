// Package board is the command surface of the kanban board. It owns the current
// board and its history, routes every mutation through the history, and saves
// each committed change.
package board

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/kanban/internal/dnd"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/history"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/search"
	"github.com/thenoetrevino/kanban/internal/storage"
)

// Operation names used in warnings and events
const (
	OpLoad         = "load"
	OpAddColumn    = "add_column"
	OpDeleteColumn = "delete_column"
	OpRenameColumn = "rename_column"
	OpAddTask      = "add_task"
	OpMoveTask     = "move_task"
	OpUndo         = "undo"
	OpRedo         = "redo"
	OpReset        = "reset"
)

// Service defines all board operations.
//
// A Service is not safe for concurrent use; commands are expected to arrive one
// at a time from a single event loop.
type Service interface {
	// Read operations
	Board() models.Board
	ActiveID() string
	CanUndo() bool
	CanRedo() bool
	Filter(term string) models.Board
	Search(query string) []search.Match

	// Column operations
	AddColumn(ctx context.Context) (models.Column, error)
	DeleteColumn(ctx context.Context, id string) error
	RenameColumn(ctx context.Context, id, title string) error

	// Task operations
	AddTask(ctx context.Context, columnID, text string) error

	// Drag and drop
	StartDrag(ev dnd.DragStart) error
	EndDrag(ctx context.Context, ev dnd.DragEnd) bool

	// History
	Undo(ctx context.Context) bool
	Redo(ctx context.Context) bool
	Reset(ctx context.Context)
}

// service implements Service on top of a history and a store
type service struct {
	store    storage.Store
	history  *history.History
	activeID string
	cfg      serviceConfig
}

// NewService loads the saved board from store and returns a service positioned
// on it. When nothing is saved the seed board is used. A snapshot that cannot be
// read also falls back to the seed and is reported as a warning.
func NewService(ctx context.Context, store storage.Store, opts ...Option) Service {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &service{store: store, cfg: cfg}

	initial, ok, err := store.Load(ctx)
	switch {
	case err != nil:
		s.warn(OpLoad, fmt.Errorf("failed to load board, starting from seed: %w", err))
		initial = models.Seed()
	case !ok:
		initial = models.Seed()
	}

	s.history = history.New(initial, history.WithLimit(cfg.historyLimit))
	return s
}

// ============================================================================
// READ OPERATIONS
// ============================================================================

// Board returns a copy of the current board
func (s *service) Board() models.Board {
	return s.history.Current()
}

// ActiveID returns the task being dragged, or "" when no drag is in flight
func (s *service) ActiveID() string {
	return s.activeID
}

func (s *service) CanUndo() bool { return s.history.CanUndo() }
func (s *service) CanRedo() bool { return s.history.CanRedo() }

// Filter returns the current board narrowed to tasks containing term
func (s *service) Filter(term string) models.Board {
	return search.Filter(s.history.Current(), term)
}

// Search fuzzy-matches query against every task on the board
func (s *service) Search(query string) []search.Match {
	return search.Fuzzy(s.history.Current(), query)
}

// ============================================================================
// COLUMN OPERATIONS
// ============================================================================

// AddColumn appends an empty "New Column" with a generated ID
func (s *service) AddColumn(ctx context.Context) (models.Column, error) {
	board := s.history.Current()

	column := models.Column{
		ID:    models.NewColumnIDPrefix + s.cfg.newID(),
		Title: models.NewColumnTitle,
		Tasks: []string{},
	}
	if board.ColumnIndex(column.ID) >= 0 {
		return models.Column{}, fmt.Errorf("%w: %q", ErrDuplicateColumn, column.ID)
	}

	board.Columns = append(board.Columns, column)
	s.commit(ctx, OpAddColumn, board)
	return column.Clone(), nil
}

// DeleteColumn removes a column together with its tasks
func (s *service) DeleteColumn(ctx context.Context, id string) error {
	board := s.history.Current()

	idx := board.ColumnIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, id)
	}

	board.Columns = append(board.Columns[:idx], board.Columns[idx+1:]...)
	s.commit(ctx, OpDeleteColumn, board)
	return nil
}

// RenameColumn changes a column's title
func (s *service) RenameColumn(ctx context.Context, id, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}

	board := s.history.Current()
	idx := board.ColumnIndex(id)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, id)
	}

	board.Columns[idx].Title = title
	s.commit(ctx, OpRenameColumn, board)
	return nil
}

// ============================================================================
// TASK OPERATIONS
// ============================================================================

// AddTask appends text to the bottom of a column. Task text is its identity, so
// text already present anywhere on the board is rejected.
func (s *service) AddTask(ctx context.Context, columnID, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyTask
	}
	if utf8.RuneCountInString(text) > maxTaskLength {
		return ErrTaskTooLong
	}

	board := s.history.Current()
	idx := board.ColumnIndex(columnID)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, columnID)
	}
	if owner := board.ColumnOf(text); owner >= 0 {
		return fmt.Errorf("%w: %q is in %q", ErrDuplicateTask, text, board.Columns[owner].ID)
	}

	board.Columns[idx].Tasks = append(board.Columns[idx].Tasks, text)
	s.commit(ctx, OpAddTask, board)
	return nil
}

// ============================================================================
// DRAG AND DROP
// ============================================================================

// StartDrag records the task being dragged. Only one drag may be in flight.
func (s *service) StartDrag(ev dnd.DragStart) error {
	if ev.ActiveID == "" {
		return ErrEmptyTask
	}
	if s.activeID != "" {
		return fmt.Errorf("%w: %q", ErrDragInProgress, s.activeID)
	}
	s.activeID = ev.ActiveID
	return nil
}

// EndDrag finishes the drag and applies the resulting move, if any. It reports
// whether the board changed. The active task is cleared either way.
func (s *service) EndDrag(ctx context.Context, ev dnd.DragEnd) bool {
	s.activeID = ""

	next, changed := dnd.Resolve(s.history.Current(), ev)
	if !changed {
		s.cfg.logger.Debug("drop resolved to no-op",
			"active_id", ev.ActiveID,
			"over_id", ev.OverID)
		return false
	}

	s.commit(ctx, OpMoveTask, next)
	return true
}

// ============================================================================
// HISTORY
// ============================================================================

// Undo restores the board as it was before the last change
func (s *service) Undo(ctx context.Context) bool {
	if !s.history.Undo() {
		return false
	}
	s.persist(ctx, OpUndo)
	s.publish(events.EventBoardChanged, OpUndo)
	return true
}

// Redo re-applies the most recently undone change
func (s *service) Redo(ctx context.Context) bool {
	if !s.history.Redo() {
		return false
	}
	s.persist(ctx, OpRedo)
	s.publish(events.EventBoardChanged, OpRedo)
	return true
}

// Reset clears the saved board and returns to the seed. The reset itself is
// recorded in history and can be undone; the seed is not saved until the next
// change.
func (s *service) Reset(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.warn(OpReset, fmt.Errorf("failed to clear saved board: %w", err))
	}
	s.history.Commit(models.Seed())
	s.publish(events.EventBoardReset, OpReset)
}

// ============================================================================
// HELPERS
// ============================================================================

// commit records next in history, saves it and notifies subscribers
func (s *service) commit(ctx context.Context, op string, next models.Board) {
	s.history.Commit(next)
	s.persist(ctx, op)
	s.publish(events.EventBoardChanged, op)
}

// persist saves the current board. Failures become warnings.
func (s *service) persist(ctx context.Context, op string) {
	if err := s.store.Save(ctx, s.history.Current()); err != nil {
		s.warn(op, fmt.Errorf("failed to save board: %w", err))
	}
}

// publish sends a change event (fire-and-forget)
func (s *service) publish(eventType events.EventType, op string) {
	if s.cfg.eventClient == nil {
		return
	}

	if err := s.cfg.eventClient.SendEvent(events.Event{Type: eventType, Op: op}); err != nil {
		s.cfg.logger.Warn("failed to send event", "op", op, "error", err)
	}
}

func (s *service) warn(op string, err error) {
	s.cfg.logger.Warn("board warning", "op", op, "error", err)
	if s.cfg.onWarning != nil {
		s.cfg.onWarning(Warning{Op: op, Err: err})
	}
}
