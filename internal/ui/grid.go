package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/gridnav/internal/config"
)

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	log.Printf("Key pressed: %q", msg.String())

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.grid.teardown()
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		if m.grid.nav.ItemCount() >= config.MaxItemCount {
			m.setStatus(fmt.Sprintf("at most %d items", config.MaxItemCount), true)
			return m, nil
		}
		m.grid.addItem()
		m.setStatus("", false)
		return m, nil
	case key.Matches(msg, m.keys.Remove):
		m.grid.removeItem()
		m.setStatus("", false)
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.grid.focused = true
		return m, nil
	case key.Matches(msg, m.keys.Blur):
		m.grid.focused = false
		return m, nil
	}

	// Directional keys only reach the grid while it holds focus.
	if !m.grid.focused {
		return m, nil
	}
	dir := m.keys.direction(msg)
	if m.grid.nav.Move(dir) {
		idx, _ := m.grid.nav.Active()
		log.Printf("Moved %s to item %d", dir, idx)
	}
	return m, nil
}
