// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global monocloud configuration.
// It uses $XDG_CONFIG_HOME/monocloud if set, otherwise ~/.config/monocloud.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "monocloud")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "monocloud")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	cfg, err := LoadFile(GlobalConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}
