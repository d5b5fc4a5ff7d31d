package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestApplyDefaults ensures that a zero-value Config gets populated with safe defaults.
func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Theme != "dracula" {
		t.Errorf("expected default theme 'dracula', got '%s'", cfg.Theme)
	}
	if cfg.ItemWidth != 10 {
		t.Errorf("expected default item width 10, got %d", cfg.ItemWidth)
	}
	if cfg.ItemCount != 0 {
		t.Errorf("an empty grid should stay empty, got %d items", cfg.ItemCount)
	}
	if len(cfg.Keys.NavUp) == 0 {
		t.Error("ApplyDefaults failed to initialize navigation keys (NavUp is empty)")
	}
	if cfg.Keys.AddItem != "+" || cfg.Keys.RemoveItem != "-" {
		t.Errorf("unexpected add/remove keys %q/%q", cfg.Keys.AddItem, cfg.Keys.RemoveItem)
	}
}

func TestApplyDefaults_RejectsLabelWithoutNumber(t *testing.T) {
	cfg := Config{ItemLabel: "Card"}
	cfg.ApplyDefaults()
	if cfg.ItemLabel != "Item %d" {
		t.Errorf("expected fallback label, got %q", cfg.ItemLabel)
	}
}

func TestInitControls(t *testing.T) {
	tests := []struct {
		name     string
		keys     InputConfig
		expected []string
	}{
		{"all sets", InputConfig{}, []string{"up", "w", "k"}},
		{"no wasd", InputConfig{DisableWasd: true}, []string{"up", "k"}},
		{"no vim", InputConfig{DisableVim: true}, []string{"up", "w"}},
		{"arrows only", InputConfig{DisableWasd: true, DisableVim: true}, []string{"up"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := tt.keys
			keys.InitControls()
			if strings.Join(keys.NavUp, ",") != strings.Join(tt.expected, ",") {
				t.Errorf("NavUp = %v, want %v", keys.NavUp, tt.expected)
			}
		})
	}
}

func TestClampConfig(t *testing.T) {
	cfg := Config{ItemCount: -3, ColumnGap: 99, ItemWidth: 1}
	ClampConfig(&cfg)
	if cfg.ItemCount != 0 || cfg.ColumnGap != MaxColumnGap || cfg.ItemWidth != MinItemWidth {
		t.Errorf("unexpected clamp result: %+v", cfg)
	}

	cfg = Config{ItemCount: 5000, ColumnGap: -1, ItemWidth: 500}
	ClampConfig(&cfg)
	if cfg.ItemCount != MaxItemCount || cfg.ColumnGap != 0 || cfg.ItemWidth != MaxItemWidth {
		t.Errorf("unexpected clamp result: %+v", cfg)
	}
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(`
theme = "nord"
item_count = 5
column_gap = 2

[keys]
disable_vim_bindings = true
quit = "x"
`)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Theme != "nord" || cfg.ItemCount != 5 || cfg.ColumnGap != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Keys.Quit != "x" {
		t.Errorf("expected quit key 'x', got %q", cfg.Keys.Quit)
	}
	for _, k := range cfg.Keys.NavDown {
		if k == "j" {
			t.Error("vim bindings should be disabled")
		}
	}
}

func TestDecode_Broken(t *testing.T) {
	if _, err := Decode("this is not TOML ["); err == nil {
		t.Error("expected an error for broken TOML")
	}
}

// TestLoadConfig_Bootstrap confirms that a fresh boot creates config.toml
// and that the written file round-trips to the defaults.
func TestLoadConfig_Bootstrap(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	cfg, path, err := LoadConfig(nil)
	if err != nil {
		t.Fatal(err)
	}

	expected := filepath.Join(tmpDir, "gridnav", "config.toml")
	if path != expected {
		t.Errorf("expected config path %s, got %s", expected, path)
	}
	if _, err := os.Stat(expected); os.IsNotExist(err) {
		t.Fatal("bootstrap failed to create config.toml")
	}
	content, _ := os.ReadFile(expected)
	if !strings.Contains(string(content), "item_count = 14") {
		t.Errorf("config.toml missing item_count:\n%s", content)
	}
	if strings.Contains(string(content), "NavUp") {
		t.Errorf("computed key sets leaked into config.toml:\n%s", content)
	}
	if cfg.ItemCount != 14 || cfg.ColumnGap != 3 {
		t.Errorf("unexpected bootstrapped config: %+v", cfg)
	}
}

func TestLoadConfig_BrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("item_count = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := LoadConfig(&path)
	if err == nil {
		t.Fatal("expected an error for a broken config")
	}
	if cfg.ItemCount != DefaultConfig().ItemCount {
		t.Errorf("expected defaults on failure, got %+v", cfg)
	}
	if len(cfg.Keys.NavUp) == 0 {
		t.Error("fallback config has no navigation keys")
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("NORD").Primary != themes["nord"].Primary {
		t.Error("theme lookup should be case-insensitive")
	}
	if GetTheme("missing").Primary != themes["dracula"].Primary {
		t.Error("unknown theme should fall back to dracula")
	}
	for _, name := range ThemeNames() {
		if _, ok := themes[name]; !ok {
			t.Errorf("ThemeNames lists unknown theme %q", name)
		}
	}
}

// TestDecode_PartialKeepsDefaults makes sure keys missing from the file keep
// their default values while explicit zeroes still apply.
func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode("theme = \"nord\"\n")
	if err != nil {
		t.Fatal(err)
	}
	defaults := DefaultConfig()
	if cfg.Theme != "nord" {
		t.Errorf("expected theme nord, got %q", cfg.Theme)
	}
	if cfg.ItemCount != defaults.ItemCount || cfg.ColumnGap != defaults.ColumnGap || cfg.ItemWidth != defaults.ItemWidth {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
	if cfg.Keys.Quit != defaults.Keys.Quit {
		t.Errorf("expected default quit key, got %q", cfg.Keys.Quit)
	}

	cfg, err = Decode("item_count = 0\ncolumn_gap = 0\n")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ItemCount != 0 || cfg.ColumnGap != 0 {
		t.Errorf("explicit zeroes were overridden: %+v", cfg)
	}
}

func TestApplyDefaults_ActionKeyConflicts(t *testing.T) {
	tests := []struct {
		name     string
		keys     InputConfig
		expected InputConfig
	}{
		{
			name:     "wasd add key",
			keys:     InputConfig{AddItem: "a", RemoveItem: "x", Quit: "z"},
			expected: InputConfig{AddItem: "+", RemoveItem: "x", Quit: "z"},
		},
		{
			name:     "vim quit key",
			keys:     InputConfig{AddItem: "n", RemoveItem: "m", Quit: "j"},
			expected: InputConfig{AddItem: "n", RemoveItem: "m", Quit: "q"},
		},
		{
			name:     "arrow remove key",
			keys:     InputConfig{AddItem: "n", RemoveItem: "left", Quit: "z"},
			expected: InputConfig{AddItem: "n", RemoveItem: "-", Quit: "z"},
		},
		{
			name:     "wasd disabled frees the letters",
			keys:     InputConfig{DisableWasd: true, AddItem: "a", RemoveItem: "x", Quit: "z"},
			expected: InputConfig{AddItem: "a", RemoveItem: "x", Quit: "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Keys: tt.keys}
			cfg.ApplyDefaults()
			got := cfg.Keys
			if got.AddItem != tt.expected.AddItem || got.RemoveItem != tt.expected.RemoveItem || got.Quit != tt.expected.Quit {
				t.Errorf("got add=%q remove=%q quit=%q, want add=%q remove=%q quit=%q",
					got.AddItem, got.RemoveItem, got.Quit,
					tt.expected.AddItem, tt.expected.RemoveItem, tt.expected.Quit)
			}
		})
	}
}
