// Package config handles loading and saving folio configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/folio/config.yaml
//   - State:  ~/.local/state/folio/ (last opened portfolio)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Portfolio is a registered data file in the config, switchable by name.
type Portfolio struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// UIConfig holds UI preference settings.
type UIConfig struct {
	Theme      string `yaml:"theme,omitempty"`       // "dark" (default) or "light"
	DefaultTab string `yaml:"default_tab,omitempty"` // work, about, contact
}

// Config is the top-level configuration for folio.
type Config struct {
	DataPath   string      `yaml:"data_path,omitempty"` // default portfolio file
	Portfolios []Portfolio `yaml:"portfolios,omitempty"`
	UI         UIConfig    `yaml:"ui,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Theme:      "dark",
			DefaultTab: "work",
		},
	}
}

// ConfigDir returns the XDG config directory for folio.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "folio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "folio")
}

// StateDir returns the XDG state directory for folio.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "folio")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "folio")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.DataPath = expandHome(cfg.DataPath)
	for i := range cfg.Portfolios {
		cfg.Portfolios[i].Path = expandHome(cfg.Portfolios[i].Path)
	}

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// FindPortfolio returns the registered portfolio with the given name, or nil.
func (c Config) FindPortfolio(name string) *Portfolio {
	for i := range c.Portfolios {
		if strings.EqualFold(c.Portfolios[i].Name, name) {
			return &c.Portfolios[i]
		}
	}
	return nil
}

// ResolvedPath returns the portfolio path with ~ expanded.
func (p Portfolio) ResolvedPath() string {
	return expandHome(p.Path)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
