// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o600))
	}
}

func TestCandidates(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".env.production", ".env", "env.txt", ".envrc", "package.json")
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env.d"), 0o750))

	got, err := Candidates(testable.DefaultFS, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{".env", ".env.production", ".envrc"}, got)
}

func TestCandidates_ReadDirError(t *testing.T) {
	fsys := &testable.MockFileSystem{
		ReadDirFn: func(string) ([]os.DirEntry, error) { return nil, errors.New("permission denied") },
	}
	_, err := Candidates(fsys, "/project")
	assert.ErrorContains(t, err, "permission denied")
}

func TestDefaultIndex(t *testing.T) {
	assert.Equal(t, 0, DefaultIndex([]string{".env", ".env.production"}))
	assert.Equal(t, 1, DefaultIndex([]string{".env", ".env.development", ".env.local"}))
	assert.Equal(t, 2, DefaultIndex([]string{".env", ".env.prod", ".env.test"}))
	assert.Equal(t, 0, DefaultIndex(nil))
}

func TestSelect_NoCandidatesAsksForName(t *testing.T) {
	dir := t.TempDir()
	p := prompt.NewScripted(prompt.Enter())

	path, err := Select(p, testable.DefaultFS, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), path)
	assert.Len(t, p.Asked, 1)
}

func TestSelect_PicksExistingCandidate(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".env", ".env.local")
	p := prompt.NewScripted(prompt.Enter())

	path, err := Select(p, testable.DefaultFS, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.local"), path)
}

func TestSelect_CreateNewWithDotEnvPresentHasNoDefault(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".env")
	p := prompt.NewScripted(prompt.Choose(1), prompt.Enter(), prompt.Type("  .env.staging  "))

	path, err := Select(p, testable.DefaultFS, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.staging"), path)
	assert.Equal(t, []string{"Env file name should be a non empty string"}, p.Rejections)
}

func TestSelect_CreateNewDefaultsToDotEnv(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".env.local")
	p := prompt.NewScripted(prompt.Choose(1), prompt.Enter())

	path, err := Select(p, testable.DefaultFS, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env"), path)
}

func TestSelect_Cancelled(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".env")

	_, err := Select(prompt.NewScripted(prompt.Cancel()), testable.DefaultFS, dir)
	assert.ErrorIs(t, err, prompt.ErrCancelled)
}
