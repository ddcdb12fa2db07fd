// Package search narrows a board down to the tasks a user is looking for.
// Results are views; they never feed back into history.
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/kanban/internal/models"
)

// Match is a task found by Fuzzy
type Match struct {
	Task           string
	ColumnID       string
	Score          int
	MatchedIndexes []int
}

// Filter returns a copy of board keeping, in every column, only tasks whose
// text contains term (case-insensitive). Columns are kept even when empty.
// An empty term returns a full copy.
func Filter(board models.Board, term string) models.Board {
	needle := strings.ToLower(term)
	out := models.Board{Columns: make([]models.Column, len(board.Columns))}

	for i, col := range board.Columns {
		tasks := make([]string, 0, len(col.Tasks))
		for _, task := range col.Tasks {
			if strings.Contains(strings.ToLower(task), needle) {
				tasks = append(tasks, task)
			}
		}
		out.Columns[i] = models.Column{ID: col.ID, Title: col.Title, Tasks: tasks}
	}
	return out
}

// Fuzzy ranks every task on the board against query, best match first
func Fuzzy(board models.Board, query string) []Match {
	if query == "" {
		return nil
	}

	var (
		names  []string
		owners []string
	)
	for _, col := range board.Columns {
		for _, task := range col.Tasks {
			names = append(names, task)
			owners = append(owners, col.ID)
		}
	}

	matches := fuzzy.Find(query, names)
	results := make([]Match, len(matches))
	for i, m := range matches {
		results[i] = Match{
			Task:           m.Str,
			ColumnID:       owners[m.Index],
			Score:          m.Score,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return results
}
