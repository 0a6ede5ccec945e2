// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package envfile

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

// Prefix is the name prefix shared by env files.
const Prefix = ".env"

// DefaultName is the suggested name for a new env file.
const DefaultName = ".env"

// CreateNewChoice is the sentinel entry appended to the candidate list.
const CreateNewChoice = "Create new File"

var preferredMarkers = []string{"dev", "local", "test"}

var blue = color.New(color.FgBlue).SprintFunc()

// Candidates lists the files in dir whose name starts with Prefix,
// sorted by name. Directories are not candidates.
func Candidates(fsys testable.FileSystem, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), Prefix) {
			continue
		}
		out = append(out, e.Name())
	}
	slices.Sort(out)
	return out, nil
}

// DefaultIndex returns the index of the first candidate whose name
// mentions a development, local or test environment, or 0.
func DefaultIndex(candidates []string) int {
	for i, c := range candidates {
		for _, m := range preferredMarkers {
			if strings.Contains(c, m) {
				return i
			}
		}
	}
	return 0
}

// Select asks which env file to write and returns its path inside dir.
// With existing candidates the user picks one or asks for a new file;
// otherwise the user types a file name.
func Select(p prompt.Prompter, fsys testable.FileSystem, dir string) (string, error) {
	candidates, err := Candidates(fsys, dir)
	if err != nil {
		return "", err
	}

	if len(candidates) > 0 {
		choices := append(slices.Clone(candidates), CreateNewChoice)
		idx, err := p.Select(prompt.Select{
			Message: "Select the " + blue(".env") + " file where you want to save the environment variables",
			Choices: choices,
			Default: DefaultIndex(candidates),
		})
		if err != nil {
			return "", err
		}
		if idx < len(candidates) {
			slog.Debug("selected env file", "file", candidates[idx])
			return filepath.Join(dir, candidates[idx]), nil
		}
	}

	def := DefaultName
	if slices.Contains(candidates, DefaultName) {
		def = ""
	}
	name, err := p.Text(prompt.Text{
		Message:  "Specify the " + blue("name of the Env file") + " where the environment variables will be stored.",
		Default:  def,
		Validate: validateName,
	})
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	slog.Debug("new env file", "file", name)
	return filepath.Join(dir, name), nil
}

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("Env file name should be a non empty string") //nolint:staticcheck // shown verbatim to the user
	}
	return nil
}
