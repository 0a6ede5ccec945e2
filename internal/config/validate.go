// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/monocloud/monocloud-cli/internal/options"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Framework != "" && !slices.Contains(options.Frameworks(), options.Framework(cfg.Framework)) {
		errs = append(errs, fmt.Sprintf("framework: unsupported value %q", cfg.Framework))
	}

	o := options.Options{
		Issuer:   strings.TrimSpace(cfg.Issuer),
		ClientID: strings.TrimSpace(cfg.ClientID),
		Scopes:   strings.Join(cfg.Scopes, " "),
		AppURL:   strings.TrimSpace(cfg.AppURL),
	}
	checks := []struct {
		key   string
		field options.Field
		set   bool
	}{
		{"issuer", options.FieldIssuer, cfg.Issuer != ""},
		{"client_id", options.FieldClientID, cfg.ClientID != ""},
		{"scopes", options.FieldScopes, len(cfg.Scopes) > 0},
		{"app_url", options.FieldAppURL, cfg.AppURL != ""},
	}
	for _, c := range checks {
		if !c.set {
			continue
		}
		if err := options.ValidateField(c.field, o); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", c.key, err))
		}
	}

	if cfg.ClientSecret != "" {
		errs = append(errs, "client_secret: secrets are not read from config files, use --clientSecret")
	}
	if cfg.CookieSecret != "" {
		errs = append(errs, "cookie_secret: secrets are not read from config files, use --cookieSecret")
	}

	if len(errs) > 0 {
		src := cfg.Source
		if src == "" {
			src = "config"
		}
		return fmt.Errorf("%s: validation failed:\n  %s", src, strings.Join(errs, "\n  "))
	}
	return nil
}
