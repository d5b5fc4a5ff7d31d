package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/gridnav/internal/config"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	if m.termWidth == 0 {
		return "Initializing..."
	}

	header := titleStyle.Render(fmt.Sprintf("%s %s", m.spinner.View(), strings.ToUpper(config.AppName)))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.renderGrid(),
		m.renderStatus(),
		helpStyle.Render(m.help.View(m.keys)),
	)
	return appStyle.Render(content)
}

// measureCellWidth renders an empty item cell and returns its on-screen width.
func measureCellWidth() int {
	return lipgloss.Width(cellStyle.Render(""))
}

func (m Model) itemLabel(i int) string {
	label := fmt.Sprintf(m.Config.ItemLabel, i+1)
	return runewidth.Truncate(label, m.Config.ItemWidth, "…")
}

func (m Model) renderCell(i int, active bool) string {
	label := m.itemLabel(i)
	switch {
	case active && m.grid.focused:
		return activeCellStyle.Render(label)
	case active:
		return blurredActiveCellStyle.Render(label)
	default:
		return cellStyle.Render(label)
	}
}

// renderGrid lays items out itemsPerRow at a time, separated by the column
// gap. With no row width known yet everything goes in one column.
func (m Model) renderGrid() string {
	count := m.grid.nav.ItemCount()
	if count == 0 {
		return emptyStyle.Render(fmt.Sprintf("No items. Press %s to add one.", m.Config.Keys.AddItem))
	}

	perRow := max(m.grid.ItemsPerRow(), 1)
	active, hasActive := m.grid.nav.Active()
	gap := strings.Repeat(" ", m.Config.ColumnGap)

	var rows []string
	for start := 0; start < count; start += perRow {
		end := min(start+perRow, count)
		var cells []string
		for i := start; i < end; i++ {
			if i > start && gap != "" {
				cells = append(cells, gap)
			}
			cells = append(cells, m.renderCell(i, hasActive && i == active))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderStatus() string {
	activeText := "none"
	if idx, ok := m.grid.nav.Active(); ok {
		activeText = m.itemLabel(idx)
	}

	focus := focusOffStyle.Render("○ unfocused")
	if m.grid.focused {
		focus = focusOnStyle.Render("● focused")
	}

	line := fmt.Sprintf("ITEMS: %d | PER ROW: %d | ACTIVE: %s | ", m.grid.nav.ItemCount(), m.grid.ItemsPerRow(), activeText)
	parts := []string{line + focus}
	if m.statusMessage != "" {
		msg := wrapText(m.statusMessage, m.termWidth-LayoutSideMargin)
		if m.statusIsError {
			parts = append(parts, errorStyle.Render(msg))
		} else {
			parts = append(parts, helpStyle.Render(msg))
		}
	}
	return statusStyle.Render(strings.Join(parts, "\n"))
}
