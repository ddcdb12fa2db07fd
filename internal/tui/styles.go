package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config/colors"
)

// Cached to avoid recomputing on every redraw. InitStyles replaces them.
var (
	// ColumnStyle frames a column
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle frames the column under the cursor
	SelectedColumnStyle lipgloss.Style

	// TitleStyle renders column titles and the header
	TitleStyle lipgloss.Style

	// TaskStyle renders an unselected task
	TaskStyle lipgloss.Style

	// SelectedTaskStyle renders the task under the cursor
	SelectedTaskStyle lipgloss.Style

	// DraggingStyle renders the task being dragged
	DraggingStyle lipgloss.Style

	// SubtleStyle renders hints and empty states
	SubtleStyle lipgloss.Style

	// Notice styles for the line above the help
	InfoStyle    lipgloss.Style
	WarningStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	// PromptStyle frames the text input and confirmations
	PromptStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles builds every style from the color scheme
func InitStyles(scheme colors.ColorScheme) {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Subtle)).
		Padding(0, 1)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(scheme.Accent))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	SelectedTaskStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	DraggingStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(scheme.Warning))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Success))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Warning))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(scheme.Accent)).
		Padding(0, 1)
}
