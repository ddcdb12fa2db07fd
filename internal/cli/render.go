package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/search"
)

// DefaultWidth is the word-wrap width used when rendering boards
const DefaultWidth = 80

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// BoardMarkdown lays the board out as markdown: one section per column, one
// bullet per task. The task being dragged is marked.
func BoardMarkdown(board models.Board, activeID string) string {
	var b strings.Builder

	b.WriteString("# Board\n\n")
	if len(board.Columns) == 0 {
		b.WriteString("_No columns_\n")
		return b.String()
	}

	for _, col := range board.Columns {
		fmt.Fprintf(&b, "## %s (%d)\n\n", col.Title, len(col.Tasks))
		fmt.Fprintf(&b, "`%s`\n\n", col.ID)
		if len(col.Tasks) == 0 {
			b.WriteString("_empty_\n\n")
			continue
		}
		for _, task := range col.Tasks {
			if task == activeID {
				fmt.Fprintf(&b, "- **%s** _(dragging)_\n", task)
				continue
			}
			fmt.Fprintf(&b, "- %s\n", task)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderBoard renders the board for the terminal
func RenderBoard(board models.Board, activeID string, width int) string {
	return RenderMarkdown(BoardMarkdown(board, activeID), width)
}

// MatchesMarkdown lists fuzzy search results, best first
func MatchesMarkdown(query string, matches []search.Match, board models.Board) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Search: %s\n\n", query)
	if len(matches) == 0 {
		b.WriteString("_No matching tasks_\n")
		return b.String()
	}
	for _, m := range matches {
		title := m.ColumnID
		if idx := board.ColumnIndex(m.ColumnID); idx >= 0 {
			title = board.Columns[idx].Title
		}
		fmt.Fprintf(&b, "- %s (%s)\n", m.Task, title)
	}
	return b.String()
}

// RenderMarkdown renders markdown with glamour, falling back to the raw
// markdown when the renderer fails
func RenderMarkdown(md string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(rendered)
}
