package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/gridnav/internal/config"
)

// Snapshot mounts a grid at the given terminal width, replays keys through
// the normal key handling and renders the grid with its status line.
func Snapshot(cfg config.Config, width int, keys []string) string {
	m := NewModel(cfg, "", nil)
	tm, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 50})
	m = tm.(Model)
	for _, k := range keys {
		tm, _ = m.updateKey(keyMsgFromName(k))
		m = tm.(Model)
	}
	m.grid.teardown()
	return appStyle.Render(m.renderGrid() + "\n" + m.renderStatus())
}

// keyMsgFromName builds the key message a terminal would deliver for name.
// DOM-style arrow names are accepted as well.
func keyMsgFromName(name string) tea.KeyMsg {
	switch name {
	case "up", "ArrowUp":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down", "ArrowDown":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left", "ArrowLeft":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right", "ArrowRight":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}
