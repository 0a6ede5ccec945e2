// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/monocloud/monocloud-cli/internal/prompt"
)

// Exit codes for the monocloud CLI.
const (
	ExitOK      = 0 // Setup finished.
	ExitFailure = 1 // Any error, including a cancelled prompt.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError wraps err with an exit code and the message shown to the user.
func exitError(code int, err error) *exitCodeError {
	msg := "monocloud: failed"
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		msg = "monocloud: cancelled"
	case err != nil:
		msg = err.Error()
	}
	return &exitCodeError{code: code, msg: msg, err: err}
}
