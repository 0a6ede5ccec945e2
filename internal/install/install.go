// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package install detects the project's package manager and runs its
// install command.
package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/monocloud/monocloud-cli/internal/testable"
)

// ErrUnknownManager is returned when no lockfile or user agent identifies
// the package manager.
var ErrUnknownManager = errors.New("unknown package manager")

// Manager is a package manager and the subcommand that adds a dependency.
type Manager struct {
	Program string
	Install string
}

// Args returns the argument list that installs pkg.
func (m Manager) Args(pkg string) []string { return []string{m.Install, pkg} }

var (
	npm  = Manager{"npm", "install"}
	yarn = Manager{"yarn", "add"}
	pnpm = Manager{"pnpm", "add"}
	bun  = Manager{"bun", "install"}
)

// lockfiles is checked in order; first match wins.
var lockfiles = []struct {
	file    string
	manager Manager
}{
	{"package-lock.json", npm},
	{"yarn.lock", yarn},
	{"pnpm-lock.yaml", pnpm},
	{"bun.lockb", bun},
	{"bun.lock", bun},
}

// DetectManager picks the package manager from the lockfile in dir, then
// from the npm_config_user_agent set by the package manager that launched
// us.
func DetectManager(fsys testable.FileSystem, dir string, getenv func(string) string) (Manager, error) {
	for _, lf := range lockfiles {
		if testable.Exists(fsys, filepath.Join(dir, lf.file)) {
			slog.Debug("package manager from lockfile", "lockfile", lf.file, "manager", lf.manager.Program)
			return lf.manager, nil
		}
	}

	ua := getenv("npm_config_user_agent")
	for _, m := range []Manager{npm, yarn, pnpm, bun} {
		if strings.HasPrefix(ua, m.Program) {
			slog.Debug("package manager from user agent", "manager", m.Program)
			return m, nil
		}
	}
	return Manager{}, ErrUnknownManager
}

// SubprocessError reports a command that exited unsuccessfully.
type SubprocessError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *SubprocessError) Error() string {
	return fmt.Sprintf("command failed: %s", e.Command)
}

func (e *SubprocessError) Unwrap() error { return e.Err }

// envOverrides silence ad, funding and telemetry banners printed by
// postinstall scripts.
var envOverrides = []string{
	"ADBLOCK=1",
	"NODE_ENV=development",
	"DISABLE_OPENCOLLECTIVE=1",
}

// Runner runs package manager commands in a project directory.
type Runner struct {
	Exec    testable.CommandExecutor
	Dir     string
	Environ []string // parent environment; overrides are appended
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run executes program with args and waits for it. A non-zero exit is
// returned as a *SubprocessError carrying the command line.
func (r *Runner) Run(ctx context.Context, program string, args ...string) error {
	line := strings.Join(append([]string{program}, args...), " ")

	if _, err := r.Exec.LookPath(program); err != nil {
		return &SubprocessError{Command: line, ExitCode: -1, Err: err}
	}

	cmd := r.Exec.CommandContext(ctx, program, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(append([]string{}, r.Environ...), envOverrides...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	slog.Debug("running", "command", line, "dir", r.Dir)
	if err := cmd.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &SubprocessError{Command: line, ExitCode: code, Err: err}
	}
	return nil
}
