// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package prompt

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Environment variable names that disable prompting.
const (
	// EnvNonInteractive forces non-interactive mode when truthy.
	EnvNonInteractive = "MONOCLOUD_NON_INTERACTIVE"

	// EnvCI is the common CI marker. When truthy, implies non-interactive.
	EnvCI = "CI"
)

// NonInteractive answers every question with its default and fails with
// ErrNonInteractive when a question has none. Text defaults still go
// through the validator.
type NonInteractive struct {
	// Hint is appended to failures to tell the user how to supply the value.
	Hint string
}

func (p *NonInteractive) fail(message string) error {
	hint := p.Hint
	if hint == "" {
		hint = "supply the value with a flag or run in a terminal"
	}
	return fmt.Errorf("%w: %s (%s)", ErrNonInteractive, plain(message), hint)
}

// Text returns q.Default, or fails when there is no valid default.
func (p *NonInteractive) Text(q Text) (string, error) {
	if q.Default == "" {
		return "", p.fail(q.Message)
	}
	if q.Validate != nil {
		if err := q.Validate(q.Default); err != nil {
			return "", fmt.Errorf("%w: %s: default %q rejected: %v", ErrNonInteractive, plain(q.Message), q.Default, err)
		}
	}
	return q.Default, nil
}

// Confirm returns q.Default.
func (p *NonInteractive) Confirm(q Confirm) (bool, error) {
	return q.Default, nil
}

// Select returns q.Default.
func (p *NonInteractive) Select(q Select) (int, error) {
	if err := q.check(); err != nil {
		return 0, err
	}
	return q.Default, nil
}

var _ Prompter = (*NonInteractive)(nil)

// isTruthyEnv checks if an environment variable is set to a truthy value.
// Accepts: 1, true, t, yes, y, on (case-insensitive)
func isTruthyEnv(getenv func(string) string, key string) bool {
	switch strings.ToLower(strings.TrimSpace(getenv(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// stdinIsTTY is a variable for testing purposes.
var stdinIsTTY = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec // fd fits in int
}

// IsInteractive reports whether prompting is allowed: stdin is a
// terminal and neither MONOCLOUD_NON_INTERACTIVE nor CI is truthy.
func IsInteractive(getenv func(string) string) bool {
	if isTruthyEnv(getenv, EnvNonInteractive) || isTruthyEnv(getenv, EnvCI) {
		return false
	}
	return stdinIsTTY()
}

// Default returns a Terminal when interactive, otherwise NonInteractive.
func Default(getenv func(string) string) Prompter {
	if IsInteractive(getenv) {
		return NewTerminal()
	}
	return &NonInteractive{}
}
