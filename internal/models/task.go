package models

// Task is identified solely by its display text. The text is the identifier and
// occurs in at most one column of a board.
type Task = string
