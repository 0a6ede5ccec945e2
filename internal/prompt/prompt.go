// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package prompt asks the user questions. The Prompter interface has a
// terminal implementation backed by promptui, a non-interactive one for
// CI and pipes, and a scripted one for tests.
package prompt

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrCancelled is returned when the user aborts a prompt (Ctrl+C or
// Ctrl+D). Callers must stop immediately.
var ErrCancelled = errors.New("prompt cancelled")

// ErrNonInteractive is returned when a question with no default is asked
// while prompting is disabled.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// Text asks for a free-form value.
type Text struct {
	Message string
	// Default is returned when the user submits an empty line.
	Default string
	// Validate returns a non-nil error to reject a value; the error text is
	// shown and the question is asked again.
	Validate func(string) error
}

// Confirm asks a yes/no question.
type Confirm struct {
	Message string
	// Yes and No label the two answers; they default to "Yes" and "No".
	Yes, No string
	Default bool
}

// Select asks the user to pick one of Choices.
type Select struct {
	Message string
	Choices []string
	// Default is the index initially highlighted.
	Default int
}

// Prompter asks questions one at a time.
type Prompter interface {
	Text(q Text) (string, error)
	Confirm(q Confirm) (bool, error)
	Select(q Select) (int, error)
}

func (q Confirm) labels() (yes, no string) {
	yes, no = q.Yes, q.No
	if yes == "" {
		yes = "Yes"
	}
	if no == "" {
		no = "No"
	}
	return yes, no
}

func (q Select) check() error {
	if len(q.Choices) == 0 {
		return fmt.Errorf("prompt: %q has no choices", q.Message)
	}
	if q.Default < 0 || q.Default >= len(q.Choices) {
		return fmt.Errorf("prompt: %q default %d out of range", q.Message, q.Default)
	}
	return nil
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// plain strips color escape sequences from a prompt message.
func plain(s string) string { return ansi.ReplaceAllString(s, "") }
