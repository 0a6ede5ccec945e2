// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/monocloud/monocloud-cli/internal/config"
	"github.com/monocloud/monocloud-cli/internal/framework"
	_ "github.com/monocloud/monocloud-cli/internal/framework/nextjs"
	"github.com/monocloud/monocloud-cli/internal/options"
	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/redact"
	"github.com/monocloud/monocloud-cli/internal/testable"
	"github.com/monocloud/monocloud-cli/internal/wizard"
)

// Seams replaced in tests.
var (
	newPrompter = func() prompt.Prompter { return prompt.Default(os.Getenv) }
	newExecutor = testable.DefaultExecutor
	getenv      = os.Getenv
	environ     = os.Environ
)

func runRoot(cmd *cobra.Command, args []string) error {
	// Command and flag values are checked before any file is read.
	if _, err := options.NewPartial(inv.input(args[0])); err != nil {
		return exitError(ExitFailure, err)
	}

	dir, err := resolveDir(inv.dir)
	if err != nil {
		return exitError(ExitFailure, err)
	}

	in, err := loadInput(dir, inv.input(args[0]))
	if err != nil {
		return exitError(ExitFailure, err)
	}
	redact.Register(in.ClientSecret)
	redact.Register(in.CookieSecret)

	o, err := options.NewPartial(in)
	if err != nil {
		return exitError(ExitFailure, err)
	}

	p := newPrompter()
	if o.Framework == "" {
		fw, err := wizard.ChooseFramework(p, framework.List())
		if err != nil {
			return exitError(ExitFailure, err)
		}
		if o, err = o.WithFramework(fw); err != nil {
			return exitError(ExitFailure, err)
		}
	}

	slog.Debug("configuring", "command", o.Command, "framework", o.Framework, "dir", dir)

	fw, err := framework.New(o, framework.Deps{
		Dir:      dir,
		FS:       testable.DefaultFS,
		Exec:     newExecutor(),
		Prompter: p,
		Getenv:   getenv,
		Environ:  environ(),
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return exitError(ExitFailure, err)
	}

	switch fw.Command() {
	case options.CommandInit:
		if err := fw.CreateEnvironment(cmd.Context()); err != nil {
			return exitError(ExitFailure, err)
		}
		if err := fw.InstallDependencies(cmd.Context()); err != nil {
			return exitError(ExitFailure, err)
		}
	default:
		return exitError(ExitFailure, fmt.Errorf("monocloud: unknown command %q", fw.Command()))
	}

	printSummary(cmd.OutOrStdout(), fw.Actions())
	return nil
}

// resolveDir returns the absolute, symlink-free project directory.
func resolveDir(path string) (string, error) {
	absPath, err := testable.DefaultFS.Abs(path)
	if err != nil {
		return "", fmt.Errorf("monocloud: cannot resolve path %q (%v)", path, err)
	}
	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("monocloud: cannot resolve path %q (%v)", path, err)
	}
	if !testable.IsDir(testable.DefaultFS, absPath) {
		return "", fmt.Errorf("monocloud: %q is not a directory", path)
	}
	return absPath, nil
}

// loadInput fills blank CLI values from the project config in dir and then
// the global config.
func loadInput(dir string, cli options.Input) (options.Input, error) {
	project, err := config.Load(dir)
	if err != nil {
		return options.Input{}, fmt.Errorf("monocloud: loading project config (%w)", err)
	}
	if err := config.Validate(project); err != nil {
		return options.Input{}, err
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return options.Input{}, fmt.Errorf("monocloud: loading global config (%w)", err)
	}
	if err := config.Validate(global); err != nil {
		return options.Input{}, err
	}

	if project.Source != "" {
		slog.Debug("loaded project config", "path", project.Source)
	}
	if global.Source != "" {
		slog.Debug("loaded global config", "path", global.Source)
	}
	return config.Merge(cli, project, global), nil
}
