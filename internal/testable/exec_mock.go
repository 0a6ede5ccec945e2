// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package testable

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MockCommandExecutor is a test double for CommandExecutor.
// It can simulate a missing binary, non-zero exits, and predetermined output.
type MockCommandExecutor struct {
	// LookPathErr, when non-nil, is returned by LookPath for any file.
	LookPathErr error

	// ExitCodes maps a command key (e.g., "npm install left-pad") to the
	// exit status the resulting exec.Cmd should terminate with. The key is
	// built from the command name and all arguments joined by spaces.
	ExitCodes map[string]int

	// Outputs maps a command key to the stdout the command should produce.
	Outputs map[string]string

	// Calls records the command keys that were invoked, for assertion purposes.
	Calls []string
}

// LookPath returns "/usr/bin/<file>" or the configured error.
func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	return "/usr/bin/" + file, nil
}

// CommandContext returns an *exec.Cmd that, when executed, produces the
// pre-configured output and exit status. It uses a "sh -c" script to
// simulate the behaviour without running the real binary.
func (m *MockCommandExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	key := strings.TrimSpace(name + " " + strings.Join(args, " "))
	m.Calls = append(m.Calls, key)

	script := fmt.Sprintf("printf '%%s' %q", m.Outputs[key])
	if code, ok := m.ExitCodes[key]; ok && code != 0 {
		script += fmt.Sprintf("; exit %d", code)
	}
	return exec.CommandContext(ctx, "sh", "-c", script) //nolint:gosec // test helper
}

// Compile-time interface check.
var _ CommandExecutor = (*MockCommandExecutor)(nil)
