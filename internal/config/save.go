package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes the settings to the user's config directory.
// Only settings are written; generated terrain never touches disk.
func (c *Config) Save() error {
	return c.SaveTo(filepath.Join(ConfigDir(), UserConfigFile))
}

// SaveTo writes the settings to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
