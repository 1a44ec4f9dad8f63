package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the user config directory
const EnvConfigDir = "VI_SPRITES_CONFIG_DIR"

// FilePath returns the user config file location, which may not exist
func FilePath() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "vi-sprites", "config.toml")
	}
	return ""
}

// Load builds the effective config: embedded defaults, then the user file if present,
// then explicitPath if non-empty. The result is validated
func Load(explicitPath string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if userPath := FilePath(); userPath != "" {
		if err := c.loadFile(userPath, true); err != nil {
			return nil, err
		}
	}
	if explicitPath != "" {
		if err := c.loadFile(explicitPath, false); err != nil {
			return nil, err
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func (c *Config) loadFile(path string, optional bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := c.Load(string(data)); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
