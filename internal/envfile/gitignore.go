// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package envfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Coverage reports how git sees an env file.
type Coverage struct {
	InRepo  bool // a non-bare git work tree encloses the file
	Ignored bool // the work tree's ignore rules exclude the file
}

// Exposed reports whether the file would be picked up by `git add`.
func (c Coverage) Exposed() bool { return c.InRepo && !c.Ignored }

// CheckIgnored opens the git work tree enclosing path, if any, and matches
// path against its .gitignore files and info/exclude rules. A missing
// repository is not an error.
func CheckIgnored(path string) (Coverage, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Coverage{}, fmt.Errorf("resolving %s: %w", path, err)
	}
	dir := filepath.Dir(abs)
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Coverage{}, nil
	}
	if err != nil {
		return Coverage{}, fmt.Errorf("opening git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return Coverage{}, nil
	}
	if err != nil {
		return Coverage{}, fmt.Errorf("opening work tree: %w", err)
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), filepath.Join(dir, filepath.Base(abs)))
	if err != nil || strings.HasPrefix(rel, "..") {
		return Coverage{}, nil
	}

	patterns, err := gitignore.ReadPatterns(wt.Filesystem, nil)
	if err != nil {
		return Coverage{}, fmt.Errorf("reading ignore rules: %w", err)
	}
	patterns = append(patterns, wt.Excludes...)

	parts := strings.Split(filepath.ToSlash(rel), "/")
	return Coverage{
		InRepo:  true,
		Ignored: gitignore.NewMatcher(patterns).Match(parts, false),
	}, nil
}
