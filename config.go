package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// uiConfig persists viewer preferences and per-screen column layouts
// across runs.
type uiConfig struct {
	Theme     string                     `yaml:"theme,omitempty"`
	Lang      string                     `yaml:"lang,omitempty"`
	Direction string                     `yaml:"direction,omitempty"`
	Columns   map[string]map[string]bool `yaml:"columns,omitempty"`
}

func loadUIConfig() (*uiConfig, string) {
	configDir := resolveConfigDir()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return &uiConfig{}, filepath.Join(configDir, "ui.yaml")
	}
	path := filepath.Join(configDir, "ui.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return &uiConfig{}, path
	}
	var cfg uiConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &uiConfig{}, path
	}
	return &cfg, path
}

func saveUIConfig(cfg *uiConfig, path string) error {
	if cfg == nil {
		cfg = &uiConfig{}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *uiConfig) screenColumns(key string) map[string]bool {
	if c == nil || c.Columns == nil {
		return nil
	}
	return c.Columns[key]
}

func (c *uiConfig) setScreenColumns(key string, visibility map[string]bool) {
	if c.Columns == nil {
		c.Columns = make(map[string]map[string]bool)
	}
	copied := make(map[string]bool, len(visibility))
	for k, v := range visibility {
		copied[k] = v
	}
	c.Columns[key] = copied
}

func resolveConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "bringus-admin")
}
