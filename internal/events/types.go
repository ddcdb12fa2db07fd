package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventBoardChanged is sent after a command commits a new board
	EventBoardChanged EventType = "board_changed"

	// EventBoardReset is sent after the board is reset to the seed
	EventBoardReset EventType = "board_reset"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	Op         string    // Command that produced the change, e.g. "add_task", "undo"
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
