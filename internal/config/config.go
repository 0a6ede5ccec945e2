// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package config handles project (.monocloud.yaml, .monocloud.toml) and
// global default files.
package config

// Config represents the contents of a project or global config file.
type Config struct {
	Framework  string   `yaml:"framework,omitempty" toml:"framework"`
	Issuer     string   `yaml:"issuer,omitempty" toml:"issuer"`
	ClientID   string   `yaml:"client_id,omitempty" toml:"client_id"`
	Scopes     []string `yaml:"scopes,omitempty" toml:"scopes"`
	AppURL     string   `yaml:"app_url,omitempty" toml:"app_url"`
	SDKVersion string   `yaml:"sdk_version,omitempty" toml:"sdk_version"`

	// Decoded only so Validate can reject them; never merged.
	ClientSecret string `yaml:"client_secret,omitempty" toml:"client_secret"`
	CookieSecret string `yaml:"cookie_secret,omitempty" toml:"cookie_secret"`

	// Source is the file this config was read from, empty if none.
	Source string `yaml:"-" toml:"-"`
}

// Project config file names, in lookup order.
const (
	FileName     = ".monocloud.yaml"
	TOMLFileName = ".monocloud.toml"
)
