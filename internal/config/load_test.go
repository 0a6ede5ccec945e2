// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Empty(t, cfg.Framework)
	assert.Empty(t, cfg.Source)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	content := `
framework: nextjs
issuer: https://tenant.us.monocloud.com
client_id: abc
scopes:
  - openid
  - profile
app_url: http://localhost:4000
sdk_version: v1.2.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "nextjs", cfg.Framework)
	assert.Equal(t, "https://tenant.us.monocloud.com", cfg.Issuer)
	assert.Equal(t, "abc", cfg.ClientID)
	assert.Equal(t, []string{"openid", "profile"}, cfg.Scopes)
	assert.Equal(t, "http://localhost:4000", cfg.AppURL)
	assert.Equal(t, "v1.2.0", cfg.SDKVersion)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	content := `
framework = "nextjs"
client_id = "abc"
scopes = ["openid", "email"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "nextjs", cfg.Framework)
	assert.Equal(t, "abc", cfg.ClientID)
	assert.Equal(t, []string{"openid", "email"}, cfg.Scopes)
	assert.Equal(t, filepath.Join(dir, TOMLFileName), cfg.Source)
}

func TestLoad_YAMLWinsOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("client_id: from-yaml\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte(`client_id = "from-toml"`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-yaml", cfg.ClientID)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{{invalid yaml"), 0o600))

	cfg, err := Load(dir)
	assert.ErrorContains(t, err, "parsing")
	assert.Nil(t, cfg)
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName), []byte("client_id = "), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(""), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Issuer)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
