package config

import "strings"

// Theme holds the palette used by the grid renderer.
type Theme struct {
	Primary    string // titles, header
	Background string
	Foreground string // item text
	Comment    string // muted text, idle borders
	Accent     string // active item
	Success    string // focused indicator
	Error      string // config errors
}

var themes = map[string]Theme{
	"dracula": {
		Primary:    "#ff2e63",
		Background: "#0d0221",
		Foreground: "#f0f0f0",
		Comment:    "#5c527f",
		Accent:     "#9d4edd",
		Success:    "#00f5d4",
		Error:      "#ff2e63",
	},
	"jade": {
		Primary:    "#50fa7b",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Comment:    "#6272a4",
		Accent:     "#50fa7b",
		Success:    "#50fa7b",
		Error:      "#ff5555",
	},
	"nord": {
		Primary:    "#0077be",
		Background: "#0a192f",
		Foreground: "#e5e9f0",
		Comment:    "#4c566a",
		Accent:     "#88c0d0",
		Success:    "#a3be8c",
		Error:      "#bf616a",
	},
	"everforest": {
		Primary:    "#4a7c59",
		Background: "#2d353b",
		Foreground: "#d3c6aa",
		Comment:    "#5c6a72",
		Accent:     "#a7c080",
		Success:    "#a7c080",
		Error:      "#e67e80",
	},
}

// GetTheme looks a theme up by name, case-insensitively. Unknown names fall
// back to dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t
	}
	return themes["dracula"]
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string {
	return []string{"dracula", "everforest", "jade", "nord"}
}
