package styles

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/kanban/internal/config/colors"
)

var (
	// Text styles
	TitleStyle  lipgloss.Style
	SubtleStyle lipgloss.Style
	ValueStyle  lipgloss.Style
	ColumnStyle lipgloss.Style // Column headers in compact listings
	ActiveStyle lipgloss.Style // The task being dragged

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(*colors.Default())
}

// Init initializes all CLI styles with the given color scheme
func Init(scheme colors.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal))

	ColumnStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	ActiveStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(scheme.Warning))

	SuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Error))

	WarningStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Warning))
}
