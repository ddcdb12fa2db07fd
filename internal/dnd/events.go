// Package dnd turns drag-and-drop gestures into board transitions.
//
// The rendering layer owns pointer, touch and keyboard sensors. It reports a
// gesture as a DragStart followed by a DragEnd, both carrying opaque IDs.
package dnd

// DragStart is sent when the user picks up a task
type DragStart struct {
	ActiveID string // Task being dragged
}

// DragEnd is sent when the user releases a task
type DragEnd struct {
	ActiveID string // Task being dragged
	OverID   string // Column or task under the pointer; empty when dropped outside any target
}

// Dropped reports whether the task was released over a droppable target
func (e DragEnd) Dropped() bool {
	return e.OverID != ""
}
