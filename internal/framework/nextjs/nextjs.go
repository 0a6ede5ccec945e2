// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package nextjs configures MonoCloud authentication for NextJS projects.
package nextjs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/monocloud/monocloud-cli/internal/envfile"
	"github.com/monocloud/monocloud-cli/internal/framework"
	"github.com/monocloud/monocloud-cli/internal/handler"
	"github.com/monocloud/monocloud-cli/internal/install"
	"github.com/monocloud/monocloud-cli/internal/options"
	"github.com/monocloud/monocloud-cli/internal/project"
	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/wizard"
)

// PackageName is the SDK package added to the project.
const PackageName = "@monocloud/nextjs-auth"

// missingPackageJSON is the precondition failure for a directory that is
// not a node project.
const missingPackageJSON = `Invalid NextJS repository. No "package.json" found.`

func init() {
	framework.Register(options.FrameworkNextJS, New)
}

var blue = color.New(color.FgBlue).SprintFunc()

// NextJS is the framework.Framework for NextJS projects.
type NextJS struct {
	opts    options.Options
	deps    framework.Deps
	actions []framework.Action
}

// New returns the NextJS integration for the project in d.Dir.
func New(o options.Options, d framework.Deps) (framework.Framework, error) {
	if !project.HasPackageJSON(d.FS, d.Dir) {
		return nil, &options.PreconditionError{Msg: missingPackageJSON}
	}
	return &NextJS{opts: o, deps: d}, nil
}

// Command implements framework.Framework.
func (n *NextJS) Command() options.Command { return n.opts.Command }

// Options returns the configuration, completed once CreateEnvironment has
// run.
func (n *NextJS) Options() options.Options { return n.opts }

// Actions implements framework.Framework.
func (n *NextJS) Actions() []framework.Action {
	out := make([]framework.Action, len(n.actions))
	copy(out, n.actions)
	return out
}

func (n *NextJS) record(file string, op framework.Operation, desc string) {
	n.actions = append(n.actions, framework.Action{File: file, Operation: op, Description: desc})
}

func (n *NextJS) rel(path string) string {
	if r, err := filepath.Rel(n.deps.Dir, path); err == nil {
		return r
	}
	return path
}

// CreateEnvironment asks for missing values, saves them to an env file and
// writes the authentication handler.
func (n *NextJS) CreateEnvironment(ctx context.Context) error {
	o, err := wizard.Collect(n.deps.Prompter, n.opts)
	if err != nil {
		return err
	}
	n.opts = o

	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := envfile.Select(n.deps.Prompter, n.deps.FS, n.deps.Dir)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	res, err := envfile.Apply(n.deps.FS, path, n.opts.Entries())
	if err != nil {
		return err
	}
	n.recordEnv(res)
	n.warnIfExposed(path)

	layout := project.DetectLayout(n.deps.FS, n.deps.Dir)
	slog.Debug("project layout", "router", layout.Router, "src", layout.HasSrc, "typescript", layout.TypeScript)

	if err := ctx.Err(); err != nil {
		return err
	}
	hr, err := handler.Emit(n.deps.Prompter, n.deps.FS, n.deps.Dir, layout)
	if err != nil {
		return err
	}
	switch hr.Outcome {
	case handler.Created:
		n.record(hr.Stub.Path(), framework.OpCreated, "authentication handler")
	case handler.Exists:
		n.record(hr.Stub.Path(), framework.OpSkipped, "handler already exists")
	case handler.Declined:
		n.record(hr.Stub.Path(), framework.OpSkipped, "handler declined")
	case handler.NotApplicable:
		n.record("", framework.OpSkipped, "no pages or app router found")
	}
	return nil
}

func (n *NextJS) recordEnv(res envfile.Result) {
	file := n.rel(res.Path)
	if res.Created {
		n.record(file, framework.OpCreated, fmt.Sprintf("%d variables", len(res.Changes)))
		return
	}

	var parts []string
	if u := res.Updated(); len(u) > 0 {
		parts = append(parts, "updated "+strings.Join(u, ", "))
	}
	if a := res.Appended(); len(a) > 0 {
		parts = append(parts, "added "+strings.Join(a, ", "))
	}
	if len(parts) == 0 {
		n.record(file, framework.OpSkipped, "nothing to write")
		return
	}
	n.record(file, framework.OpUpdated, strings.Join(parts, "; "))
}

func (n *NextJS) warnIfExposed(path string) {
	cov, err := envfile.CheckIgnored(path)
	if err != nil {
		slog.Debug("gitignore check failed", "error", err)
		return
	}
	if cov.Exposed() {
		slog.Warn("env file holds secrets but is not ignored by git", "file", n.rel(path))
	}
}

// InstallDependencies adds the SDK package with the project's package
// manager unless it is already declared.
func (n *NextJS) InstallDependencies(ctx context.Context) error {
	pkg, err := project.ReadPackageJSON(n.deps.FS, n.deps.Dir)
	if err != nil {
		slog.Debug("skipping install", "error", err)
		return nil
	}
	if pkg.HasDependency(PackageName) {
		slog.Debug("sdk already declared", "package", PackageName)
		n.record(PackageName, framework.OpSkipped, "already a dependency")
		return nil
	}

	spec := PackageName
	if v := n.opts.SDKVersion; v != "" {
		spec += "@" + v
	}

	ok, err := n.deps.Prompter.Confirm(prompt.Confirm{
		Message: "Install " + blue(spec) + " package?",
		Default: true,
	})
	if err != nil {
		return err
	}
	if !ok {
		n.record(spec, framework.OpSkipped, "install declined")
		return nil
	}

	m, err := install.DetectManager(n.deps.FS, n.deps.Dir, n.deps.Getenv)
	if err != nil {
		return err
	}

	r := &install.Runner{
		Exec:    n.deps.Exec,
		Dir:     n.deps.Dir,
		Environ: n.deps.Environ,
		Stdin:   n.deps.Stdin,
		Stdout:  n.deps.Stdout,
		Stderr:  n.deps.Stderr,
	}
	if err := r.Run(ctx, m.Program, m.Args(spec)...); err != nil {
		return err
	}
	n.record(spec, framework.OpInstalled, "with "+m.Program)
	return nil
}

var _ framework.Framework = (*NextJS)(nil)
