// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads the project config from dir, preferring FileName over
// TOMLFileName. If neither exists, it returns a zero-value Config and nil
// error.
func Load(dir string) (*Config, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		cfg, err := LoadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}
	return &Config{}, nil
}

// LoadFile reads one config file, choosing the decoder by extension.
// A missing file is reported as an error wrapping fs.ErrNotExist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data, strings.EqualFold(filepath.Ext(path), ".toml"))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes data as TOML when isTOML is set, otherwise as YAML.
func Parse(data []byte, isTOML bool) (*Config, error) {
	var cfg Config
	if isTOML {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
