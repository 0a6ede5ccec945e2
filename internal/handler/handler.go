// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package handler writes the MonoCloud authentication route handler into
// a NextJS project.
package handler

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/monocloud/monocloud-cli/internal/project"
	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

const (
	appRouterStub = `import { monoCloudAuth } from '@monocloud/nextjs-auth';

export const GET = monoCloudAuth();`

	pagesRouterStub = `import { monoCloudAuth } from '@monocloud/nextjs-auth';

export default monoCloudAuth();`
)

// Stub is a planned handler file.
type Stub struct {
	Dir     string // slash-separated, relative to the project root
	File    string
	Content string
}

// Path returns the stub's path relative to the project root.
func (s Stub) Path() string {
	return filepath.Join(filepath.FromSlash(s.Dir), s.File)
}

// Plan decides which handler to generate for l. It returns false when
// the project uses neither routing convention. When both are detected the
// app router wins.
func Plan(l project.Layout) (Stub, bool) {
	var s Stub
	switch l.Router {
	case project.RouterApp, project.RouterBoth:
		if l.Router == project.RouterBoth {
			slog.Debug("both routers detected, using app router")
		}
		s = Stub{Dir: "app/api/auth/[...monocloud]", File: "route", Content: appRouterStub}
	case project.RouterPages:
		s = Stub{Dir: "pages/api/auth", File: "[...monocloud]", Content: pagesRouterStub}
	default:
		return Stub{}, false
	}

	if l.TypeScript {
		s.File += ".ts"
	} else {
		s.File += ".js"
	}
	if l.HasSrc {
		s.Dir = project.SrcDir + "/" + s.Dir
	}
	return s, true
}

// Outcome reports what Emit did.
type Outcome int

const (
	// NotApplicable means no routing convention was detected.
	NotApplicable Outcome = iota
	// Exists means the handler file was already present.
	Exists
	// Declined means the user chose not to create the handler.
	Declined
	// Created means the handler file was written.
	Created
)

// Result is the outcome of Emit plus the planned file, if any.
type Result struct {
	Outcome Outcome
	Stub    Stub
}

var blue = color.New(color.FgBlue).SprintFunc()

// Emit writes the handler planned for layout into dir after confirming
// with the user. It never overwrites an existing file and asks nothing
// when there is nothing to write.
func Emit(p prompt.Prompter, fsys testable.FileSystem, dir string, layout project.Layout) (Result, error) {
	stub, ok := Plan(layout)
	if !ok {
		slog.Debug("no routing convention detected, skipping handler")
		return Result{Outcome: NotApplicable}, nil
	}

	full := filepath.Join(dir, stub.Path())
	if testable.Exists(fsys, full) {
		slog.Debug("handler already exists", "path", stub.Path())
		return Result{Outcome: Exists, Stub: stub}, nil
	}

	create, err := p.Confirm(prompt.Confirm{
		Message: "Create " + blue("MonoCloud Authentication Handler") + "?",
		Default: true,
	})
	if err != nil {
		return Result{}, err
	}
	if !create {
		return Result{Outcome: Declined, Stub: stub}, nil
	}

	if err := fsys.MkdirAll(filepath.Join(dir, filepath.FromSlash(stub.Dir)), 0o750); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", stub.Dir, err)
	}
	if err := fsys.WriteFile(full, []byte(stub.Content), 0o644); err != nil { //nolint:gosec // source file, not a secret
		return Result{}, fmt.Errorf("writing %s: %w", stub.Path(), err)
	}
	return Result{Outcome: Created, Stub: stub}, nil
}
