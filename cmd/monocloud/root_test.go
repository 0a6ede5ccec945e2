// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

func TestRootHelp(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t, prompt.NewScripted(), &testable.MockCommandExecutor{})
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	out := stdout.String()
	assert.Contains(t, out, "configures MonoCloud authentication")
	assert.Contains(t, out, "--clientSecret")
	assert.Contains(t, out, "--scopes")
}

func TestRootVersion(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t, prompt.NewScripted(), &testable.MockCommandExecutor{})
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "monocloud dev\n", stdout.String())
}

func TestRootRequiresCommand(t *testing.T) {
	cmd, _, _ := newTestCmd(t, prompt.NewScripted(), &testable.MockCommandExecutor{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

func TestFlags(t *testing.T) {
	for _, name := range []string{"framework", "issuer", "clientId", "clientSecret", "scopes", "appUrl", "cookieSecret", "sdkVersion", "dir"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, ".", rootCmd.Flags().Lookup("dir").DefValue)
}

func TestGlobalFlags(t *testing.T) {
	for _, flag := range []string{"--verbose", "--quiet", "--no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(strings.TrimPrefix(flag, "--")), flag)
	}

	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	require.NotNil(t, v)
	assert.Equal(t, "verbose", v.Name)
	q := rootCmd.PersistentFlags().ShorthandLookup("q")
	require.NotNil(t, q)
	assert.Equal(t, "quiet", q.Name)
}
