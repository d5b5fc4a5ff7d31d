package config

// InputConfig defines the user-configurable keybindings and toggles.
type InputConfig struct {
	// Toggles for the extra navigation sets; arrow keys are always bound
	DisableWasd bool `toml:"disable_wasd_bindings"`
	DisableVim  bool `toml:"disable_vim_bindings"`

	AddItem    string `toml:"add_item"`
	RemoveItem string `toml:"remove_item"`
	Quit       string `toml:"quit"`

	// Computed by InitControls
	NavUp    []string `toml:"-"`
	NavDown  []string `toml:"-"`
	NavLeft  []string `toml:"-"`
	NavRight []string `toml:"-"`
}

// Config is the runtime configuration read from config.toml.
type Config struct {
	Theme     string      `toml:"theme"`
	ItemCount int         `toml:"item_count"`
	ColumnGap int         `toml:"column_gap"` // cells between adjacent items
	ItemWidth int         `toml:"item_width"` // cell content width, without border
	ItemLabel string      `toml:"item_label"` // fmt pattern taking the 1-based item number
	Keys      InputConfig `toml:"keys"`
}
