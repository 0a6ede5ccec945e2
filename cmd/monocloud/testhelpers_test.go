// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/redact"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

// resetFlags resets all package-level flags to their default values.
func resetFlags() {
	verbose, quiet, noColor = false, false, false
	inv = invocation{dir: "."}
	for _, name := range []string{"help", "version"} {
		if f := rootCmd.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
		}
	}
}

// newTestCmd redirects the root command's I/O and replaces its prompter,
// executor and environment for one test.
func newTestCmd(t *testing.T, p prompt.Prompter, ex testable.CommandExecutor) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	resetFlags()
	redact.ResetForTest()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	origPrompter, origExecutor, origGetenv, origEnviron := newPrompter, newExecutor, getenv, environ
	t.Cleanup(func() {
		newPrompter, newExecutor, getenv, environ = origPrompter, origExecutor, origGetenv, origEnviron
		redact.ResetForTest()
	})
	newPrompter = func() prompt.Prompter { return p }
	newExecutor = func() testable.CommandExecutor { return ex }
	getenv = func(string) string { return "" }
	environ = func() []string { return nil }

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

// nextProject creates a minimal NextJS app-router project.
func nextProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "package.json", `{"name":"web","dependencies":{"next":"14.2.0"}}`)
	writeTestFile(t, dir, "package-lock.json", "{}")
	writeTestFile(t, dir, "tsconfig.json", "{}")
	writeTestFile(t, dir, "app/page.tsx", "")
	return dir
}
