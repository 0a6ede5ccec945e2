// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package options

// PreconditionError reports a problem that must be fixed before any
// prompting can start: an unsupported command or framework, or a project
// that is missing a required marker file.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// ValidationError reports a value that violates its field rule.
type ValidationError struct {
	Field Field
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }
