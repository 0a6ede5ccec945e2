// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package framework defines the Framework interface and a registry of the
// integrations that can be configured.
package framework

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/monocloud/monocloud-cli/internal/options"
	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

// Framework configures MonoCloud authentication for one kind of project.
type Framework interface {
	// Command returns the command this instance was created for.
	Command() options.Command

	// CreateEnvironment collects missing values, writes them to an env
	// file and emits integration files.
	CreateEnvironment(ctx context.Context) error

	// InstallDependencies adds the SDK package to the project.
	InstallDependencies(ctx context.Context) error

	// Actions returns what the previous calls did, in order.
	Actions() []Action
}

// Operation is the kind of change an Action records.
type Operation string

// Operations reported in the run summary.
const (
	OpCreated   Operation = "created"
	OpUpdated   Operation = "updated"
	OpSkipped   Operation = "skipped"
	OpInstalled Operation = "installed"
)

// Action records one change made to the project.
type Action struct {
	File        string // project-relative path, or package name for installs
	Operation   Operation
	Description string
}

// Deps carries everything an integration touches outside its own state.
type Deps struct {
	Dir      string
	FS       testable.FileSystem
	Exec     testable.CommandExecutor
	Prompter prompt.Prompter
	Getenv   func(string) string
	Environ  []string
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
}

// Factory builds a Framework for validated options. It returns a
// *options.PreconditionError when the project cannot host the framework.
type Factory func(o options.Options, d Deps) (Framework, error)

var (
	mu       sync.RWMutex
	registry = make(map[options.Framework]Factory)
)

// Register makes a framework available to New.
// It panics if the framework is already registered.
func Register(name options.Framework, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("framework already registered: %s", name))
	}
	registry[name] = f
}

// List returns the registered framework names, sorted.
func List() []options.Framework {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]options.Framework, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// New builds the Framework named by o.Framework.
func New(o options.Options, d Deps) (Framework, error) {
	mu.RLock()
	f, ok := registry[o.Framework]
	mu.RUnlock()
	if !ok {
		return nil, &options.PreconditionError{Msg: fmt.Sprintf("framework %q is not available", o.Framework)}
	}
	return f(o, d.withDefaults())
}

func (d Deps) withDefaults() Deps {
	if d.Dir == "" {
		d.Dir = "."
	}
	if d.FS == nil {
		d.FS = testable.DefaultFS
	}
	if d.Exec == nil {
		d.Exec = testable.DefaultExecutor()
	}
	if d.Getenv == nil {
		d.Getenv = func(string) string { return "" }
	}
	if d.Stdout == nil {
		d.Stdout = io.Discard
	}
	if d.Stderr == nil {
		d.Stderr = io.Discard
	}
	return d
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[options.Framework]Factory)
}
