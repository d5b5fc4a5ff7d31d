package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucky7xz/gridnav/internal/config"
	"github.com/lucky7xz/gridnav/internal/core"
)

// keyMap binds configured keys to grid actions and doubles as the help source.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Add    key.Binding
	Remove key.Binding
	Focus  key.Binding
	Blur   key.Binding
	Quit   key.Binding
}

func newKeyMap(c config.InputConfig) keyMap {
	nav := func(keys []string, arrow, desc string) key.Binding {
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(arrow+"/"+strings.Join(keys[1:], ""), desc),
		)
	}
	if len(c.NavUp) == 0 {
		c.InitControls()
	}
	return keyMap{
		Up:    nav(c.NavUp, "↑", "up"),
		Down:  nav(c.NavDown, "↓", "down"),
		Left:  nav(c.NavLeft, "←", "left"),
		Right: nav(c.NavRight, "→", "right"),
		Add: key.NewBinding(
			key.WithKeys(c.AddItem),
			key.WithHelp(c.AddItem, "add item"),
		),
		Remove: key.NewBinding(
			key.WithKeys(c.RemoveItem),
			key.WithHelp(c.RemoveItem, "remove item"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus grid"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "release focus"),
		),
		Quit: key.NewBinding(
			key.WithKeys(c.Quit, "ctrl+c"),
			key.WithHelp(c.Quit, "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Add, k.Remove, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Add, k.Remove},
		{k.Focus, k.Blur, k.Quit},
	}
}

// direction translates a key press into a grid direction. Unbound keys
// return core.DirNone.
func (k keyMap) direction(msg tea.KeyMsg) core.Direction {
	switch {
	case key.Matches(msg, k.Up):
		return core.DirUp
	case key.Matches(msg, k.Down):
		return core.DirDown
	case key.Matches(msg, k.Left):
		return core.DirLeft
	case key.Matches(msg, k.Right):
		return core.DirRight
	default:
		return core.DirNone
	}
}
