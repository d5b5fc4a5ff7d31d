package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/gridnav/internal/config"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		WatchConfigCmd(m.configPath),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width - LayoutSideMargin
		log.Printf("Resize: %dx%d", msg.Width, msg.Height)
		m.grid.onResize(msg.Width)
		return m, nil

	case tea.FocusMsg:
		m.grid.focused = true
		return m, nil

	case tea.BlurMsg:
		m.grid.focused = false
		return m, nil

	case ConfigChangedMsg:
		cfg, err := config.LoadFile(msg.Path)
		if err != nil {
			log.Printf("config reload failed: %v", err)
			m.setStatus(fmt.Sprintf("config error: %v", err), true)
			return m, WatchConfigCmd(m.configPath)
		}
		m.applyConfig(cfg)
		m.setStatus("config reloaded", false)
		return m, WatchConfigCmd(m.configPath)

	case configWatchFailedMsg:
		log.Printf("config watcher stopped: %v", msg.err)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}
