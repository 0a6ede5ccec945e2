// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package config

import (
	"strings"

	"github.com/monocloud/monocloud-cli/internal/options"
)

// Merge fills the blank fields of the CLI input from the project config,
// then from the global config. CLI values always win. Secrets pass through
// from the CLI only.
func Merge(cli options.Input, project, global *Config) options.Input {
	result := cli
	for _, cfg := range []*Config{project, global} {
		if cfg == nil {
			continue
		}
		fill(&result.Framework, cfg.Framework)
		fill(&result.Issuer, cfg.Issuer)
		fill(&result.ClientID, cfg.ClientID)
		fill(&result.Scopes, strings.Join(cfg.Scopes, " "))
		fill(&result.AppURL, cfg.AppURL)
		fill(&result.SDKVersion, cfg.SDKVersion)
	}
	return result
}

func fill(dst *string, v string) {
	if strings.TrimSpace(*dst) == "" && strings.TrimSpace(v) != "" {
		*dst = v
	}
}
