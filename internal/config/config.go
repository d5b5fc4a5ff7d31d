package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	MaxItemCount = 999
	MaxColumnGap = 20
	MinItemWidth = 3
	MaxItemWidth = 60
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := Config{
		Theme:     "dracula",
		ItemCount: 14,
		ColumnGap: 3,
		ItemWidth: 10,
		ItemLabel: "Item %d",
		Keys: InputConfig{
			AddItem:    "+",
			RemoveItem: "-",
			Quit:       "q",
		},
	}
	cfg.Keys.InitControls()
	return cfg
}

// ApplyDefaults fills empty fields from DefaultConfig and rebuilds the key sets.
// A zero item_count is kept: an empty grid is a valid configuration.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if strings.TrimSpace(c.Theme) == "" {
		c.Theme = defaults.Theme
	}
	if c.ItemWidth == 0 {
		c.ItemWidth = defaults.ItemWidth
	}
	if strings.TrimSpace(c.ItemLabel) == "" || !strings.Contains(c.ItemLabel, "%d") {
		c.ItemLabel = defaults.ItemLabel
	}
	if strings.TrimSpace(c.Keys.AddItem) == "" {
		c.Keys.AddItem = defaults.Keys.AddItem
	}
	if strings.TrimSpace(c.Keys.RemoveItem) == "" {
		c.Keys.RemoveItem = defaults.Keys.RemoveItem
	}
	if strings.TrimSpace(c.Keys.Quit) == "" {
		c.Keys.Quit = defaults.Keys.Quit
	}
	c.Keys.InitControls()
	c.Keys.resolveConflicts(defaults.Keys)
}

// resolveConflicts puts an action key that shadows a navigation key back to
// its default.
func (c *InputConfig) resolveConflicts(defaults InputConfig) {
	nav := make(map[string]bool)
	for _, set := range [][]string{c.NavUp, c.NavDown, c.NavLeft, c.NavRight} {
		for _, k := range set {
			nav[k] = true
		}
	}
	actions := []struct {
		name     string
		key      *string
		fallback string
	}{
		{"add_item", &c.AddItem, defaults.AddItem},
		{"remove_item", &c.RemoveItem, defaults.RemoveItem},
		{"quit", &c.Quit, defaults.Quit},
	}
	for _, a := range actions {
		if nav[*a.key] {
			log.Printf("config: %s key %q is a navigation key, using %q", a.name, *a.key, a.fallback)
			*a.key = a.fallback
		}
	}
}

func ClampConfig(cfg *Config) {
	if cfg.ItemCount < 0 {
		cfg.ItemCount = 0
	}
	if cfg.ItemCount > MaxItemCount {
		cfg.ItemCount = MaxItemCount
	}
	if cfg.ColumnGap < 0 {
		cfg.ColumnGap = 0
	}
	if cfg.ColumnGap > MaxColumnGap {
		cfg.ColumnGap = MaxColumnGap
	}
	if cfg.ItemWidth < MinItemWidth {
		cfg.ItemWidth = MinItemWidth
	}
	if cfg.ItemWidth > MaxItemWidth {
		cfg.ItemWidth = MaxItemWidth
	}
}

// GetConfigDir resolves os.UserConfigDir()/gridnav ($XDG_CONFIG_HOME or
// ~/.config on Linux). Only when no user config dir is available does it
// fall back to ~/.gridnav.
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", errors.Join(err, herr)
		}
		return filepath.Join(home, "."+AppName), nil
	}
	return filepath.Join(configDir, AppName), nil
}

// ConfigPath returns the config.toml location inside configDir.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.toml")
}

// Bootstrap writes the default config to path unless a file already exists.
func Bootstrap(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := Encode(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	log.Printf("bootstrap: wrote default config to %s", path)
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses TOML data on top of the defaults, then clamps the result.
func Decode(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(os.ExpandEnv(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	ClampConfig(&cfg)
	return cfg, nil
}

// LoadFile reads and decodes the config at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Decode(string(data))
}

// LoadConfig loads config.toml from the config directory, creating it on
// first run. override, when set, points at a different file and is never
// bootstrapped. On failure the defaults are returned along with the error so
// the caller can keep running.
func LoadConfig(override *string) (Config, string, error) {
	var path string
	if override != nil && strings.TrimSpace(*override) != "" {
		path = *override
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return DefaultConfig(), "", fmt.Errorf("resolve config directory: %w", err)
		}
		path = ConfigPath(configDir)
		if err := Bootstrap(path); err != nil {
			return DefaultConfig(), path, err
		}
	}

	log.Printf("Loading config from: %s", path)
	cfg, err := LoadFile(path)
	if err != nil {
		return DefaultConfig(), path, err
	}
	return cfg, path, nil
}
