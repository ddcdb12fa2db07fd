package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds every binding the board responds to in normal mode
type KeyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevTask   key.Binding
	NextTask   key.Binding

	Grab   key.Binding // start a drag, or drop the task being dragged
	Cancel key.Binding

	AddTask      key.Binding
	AddColumn    key.Binding
	RenameColumn key.Binding
	DeleteColumn key.Binding

	Undo  key.Binding
	Redo  key.Binding
	Reset key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns vim-style bindings with arrow key fallbacks
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevColumn: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "prev column")),
		NextColumn: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next column")),
		PrevTask:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev task")),
		NextTask:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next task")),

		Grab:   key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("space", "grab/drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),

		AddTask:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		AddColumn:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "add column")),
		RenameColumn: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename column")),
		DeleteColumn: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete column")),

		Undo:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:  key.NewBinding(key.WithKeys("ctrl+r", "U"), key.WithHelp("ctrl+r", "redo")),
		Reset: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset board")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.AddTask, k.Undo, k.Redo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevColumn, k.NextColumn, k.PrevTask, k.NextTask},
		{k.Grab, k.Cancel, k.AddTask},
		{k.AddColumn, k.RenameColumn, k.DeleteColumn},
		{k.Undo, k.Redo, k.Reset},
		{k.Help, k.Quit},
	}
}
