package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucky7xz/gridnav/internal/config"
)

type Model struct {
	Config     config.Config
	configPath string

	grid       *session
	termWidth  int
	termHeight int

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	statusMessage string
	statusIsError bool

	Quitting bool
}

// NewModel mounts a grid for cfg. configPath is watched for changes when set;
// loadErr, if any, is shown in the status line.
func NewModel(cfg config.Config, configPath string, loadErr error) Model {
	cfg.ApplyDefaults()
	config.ClampConfig(&cfg)
	applyThemeStyles(cfg)

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(config.GetTheme(cfg.Theme).Primary))

	m := Model{
		Config:     cfg,
		configPath: configPath,
		grid:       newSession(cfg.ItemCount, cfg.ColumnGap, measureCellWidth()),
		keys:       newKeyMap(cfg.Keys),
		help:       help.New(),
		spinner:    s,
	}
	if loadErr != nil {
		m.setStatus(fmt.Sprintf("config error: %v", loadErr), true)
	}
	return m
}

// InitialModel loads the user config and builds the model for it.
func InitialModel() Model {
	cfg, path, err := config.LoadConfig(nil)
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
	}
	return NewModel(cfg, path, err)
}

// ActiveIndex returns the active item, or ok=false when nothing is active.
func (m Model) ActiveIndex() (int, bool) {
	return m.grid.nav.Active()
}

func (m Model) ItemCount() int {
	return m.grid.nav.ItemCount()
}

func (m Model) ItemsPerRow() int {
	return m.grid.ItemsPerRow()
}

// Focused reports whether the grid currently captures directional keys.
func (m Model) Focused() bool {
	return m.grid.focused
}

func (m *Model) setStatus(message string, isError bool) {
	m.statusMessage = message
	m.statusIsError = isError
}

// applyConfig swaps in a reloaded config without remounting the grid.
func (m *Model) applyConfig(cfg config.Config) {
	cfg.ApplyDefaults()
	config.ClampConfig(&cfg)
	applyThemeStyles(cfg)

	m.Config = cfg
	m.keys = newKeyMap(cfg.Keys)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(config.GetTheme(cfg.Theme).Primary))

	m.grid.stepItemCount(cfg.ItemCount)
	m.grid.cellWidth = measureCellWidth()
	m.grid.layout.SetGap(float64(cfg.ColumnGap))
}
