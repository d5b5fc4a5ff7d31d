package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/gridnav/internal/config"
)

// Styling lives in one place so colors and layout tweaks are easy to reason about.

var (
	appStyle = lipgloss.NewStyle().
			Margin(1, 2)

	titleStyle             lipgloss.Style
	helpStyle              lipgloss.Style
	statusStyle            lipgloss.Style
	errorStyle             lipgloss.Style
	focusOnStyle           lipgloss.Style
	focusOffStyle          lipgloss.Style
	emptyStyle             lipgloss.Style
	cellStyle              lipgloss.Style
	activeCellStyle        lipgloss.Style
	blurredActiveCellStyle lipgloss.Style
)

var retroBorder = lipgloss.Border{
	Top:         "━",
	Bottom:      "━",
	Left:        " ",
	Right:       " ",
	TopLeft:     "┍",
	TopRight:    "┑",
	BottomLeft:  "┕",
	BottomRight: "┙",
}

func init() {
	applyThemeStyles(config.DefaultConfig())
}

func applyThemeStyles(cfg config.Config) {
	theme := config.GetTheme(cfg.Theme)
	width := cfg.ItemWidth + cellPadding

	titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Primary)).
		Bold(true).
		PaddingBottom(1)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Comment))

	statusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Foreground)).
		PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Error)).
		Bold(true)

	focusOnStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Success))

	focusOffStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Comment))

	emptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Comment)).
		Italic(true)

	cellStyle = lipgloss.NewStyle().
		Border(retroBorder).
		BorderForeground(lipgloss.Color(theme.Comment)).
		Foreground(lipgloss.Color(theme.Foreground)).
		Width(width).
		Padding(0, 1)

	activeCellStyle = cellStyle.
		BorderForeground(lipgloss.Color(theme.Accent)).
		Foreground(lipgloss.Color(theme.Accent)).
		Bold(true)

	blurredActiveCellStyle = cellStyle.
		Underline(true)
}
