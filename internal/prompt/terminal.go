// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package prompt

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(p promptui.Prompt) (string, error) {
	return p.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(s promptui.Select) (int, string, error) {
	return s.Run()
}

// Terminal is the promptui-backed Prompter.
type Terminal struct {
	// Stdin and Stdout override the process streams when non-nil.
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewTerminal returns a Prompter reading from the process terminal.
func NewTerminal() *Terminal { return &Terminal{} }

// Text runs a promptui.Prompt. An empty submission yields q.Default.
func (t *Terminal) Text(q Text) (string, error) {
	p := promptui.Prompt{
		Label:    q.Message,
		Default:  q.Default,
		Validate: promptui.ValidateFunc(q.Validate),
		Stdin:    t.Stdin,
		Stdout:   t.Stdout,
	}
	v, err := promptUIRunner(p)
	if err != nil {
		return "", translate(err)
	}
	return v, nil
}

// Confirm is rendered as a two-item select, which lets both answers carry
// their own label and avoids promptui's ErrAbort on "n".
func (t *Terminal) Confirm(q Confirm) (bool, error) {
	yes, no := q.labels()
	cursor := 1
	if q.Default {
		cursor = 0
	}
	idx, _, err := promptUISelectRunner(promptui.Select{
		Label:     q.Message,
		Items:     []string{yes, no},
		CursorPos: cursor,
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	})
	if err != nil {
		return false, translate(err)
	}
	return idx == 0, nil
}

// Select runs a promptui.Select and returns the chosen index.
func (t *Terminal) Select(q Select) (int, error) {
	if err := q.check(); err != nil {
		return 0, err
	}
	idx, _, err := promptUISelectRunner(promptui.Select{
		Label:     q.Message,
		Items:     q.Choices,
		CursorPos: q.Default,
		Size:      max(len(q.Choices), 5),
		Stdin:     t.Stdin,
		Stdout:    t.Stdout,
	})
	if err != nil {
		return 0, translate(err)
	}
	return idx, nil
}

func translate(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCancelled
	}
	return err
}

var _ Prompter = (*Terminal)(nil)
