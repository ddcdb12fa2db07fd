package models

// Column represents a kanban board column (e.g., "To Do", "In Progress", "Done").
// Tasks are kept in display order.
type Column struct {
	ID    string   `json:"id"`    // Unique identifier for the column
	Title string   `json:"title"` // Display name of the column
	Tasks []string `json:"tasks"` // Task identifiers, top to bottom
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	tasks := make([]string, len(c.Tasks))
	copy(tasks, c.Tasks)
	return Column{ID: c.ID, Title: c.Title, Tasks: tasks}
}

// IndexOf returns the position of task in the column, or -1
func (c Column) IndexOf(task string) int {
	for i, t := range c.Tasks {
		if t == task {
			return i
		}
	}
	return -1
}

// Contains reports whether the column holds task
func (c Column) Contains(task string) bool {
	return c.IndexOf(task) >= 0
}
