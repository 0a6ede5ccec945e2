// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/monocloud/monocloud-cli/internal/options"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

// filePerm is used for env files this tool creates; they hold secrets.
const filePerm os.FileMode = 0o600

// Result describes one Apply call.
type Result struct {
	Path    string
	Created bool
	Changes []Change
}

// Updated returns the keys rewritten in place.
func (r Result) Updated() []string { return r.keys(false) }

// Appended returns the keys added at the end of the file.
func (r Result) Appended() []string { return r.keys(true) }

func (r Result) keys(appended bool) []string {
	var out []string
	for _, c := range r.Changes {
		if c.Appended == appended {
			out = append(out, c.Key)
		}
	}
	return out
}

// Ensure creates path as an empty file when it does not exist and
// reports whether it did.
func Ensure(fsys testable.FileSystem, path string) (bool, error) {
	if _, err := fsys.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if err := fsys.WriteFile(path, nil, filePerm); err != nil {
		return false, fmt.Errorf("creating %s: %w", path, err)
	}
	return true, nil
}

// Apply merges entries into the env file at path, creating it first when
// needed, and replaces the file's content with the result.
func Apply(fsys testable.FileSystem, path string, entries []options.Entry) (Result, error) {
	created, err := Ensure(fsys, path)
	if err != nil {
		return Result{}, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}

	content, changes := merge(string(data), entries)

	perm := filePerm
	if info, err := fsys.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := fsys.WriteFile(path, []byte(content), perm); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", path, err)
	}
	return Result{Path: path, Created: created, Changes: changes}, nil
}
