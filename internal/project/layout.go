// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package project inspects a JavaScript project: its routing convention,
// source layout, and package.json.
package project

import (
	"log/slog"
	"path/filepath"

	"github.com/monocloud/monocloud-cli/internal/testable"
)

// Router is the detected routing convention.
type Router int

const (
	RouterNone Router = iota
	RouterPages
	RouterApp
	RouterBoth
)

func (r Router) String() string {
	switch r {
	case RouterPages:
		return "pages"
	case RouterApp:
		return "app"
	case RouterBoth:
		return "both"
	default:
		return "none"
	}
}

// SrcDir is the optional source directory that nests the routing folders.
const SrcDir = "src"

var (
	pagesMarkers = []string{"pages/_app.js", "pages/_app.tsx"}
	appMarkers   = []string{"app/page.js", "app/page.tsx"}
)

// Layout is the result of a single inspection of the project directory.
type Layout struct {
	Router     Router
	HasSrc     bool // a top-level src directory exists
	TypeScript bool // tsconfig.json exists
}

// DetectLayout inspects dir once. Each routing marker is looked up both
// at the top level and under src/.
func DetectLayout(fsys testable.FileSystem, dir string) Layout {
	pages := anyExists(fsys, dir, pagesMarkers)
	app := anyExists(fsys, dir, appMarkers)

	l := Layout{
		HasSrc:     testable.IsDir(fsys, filepath.Join(dir, SrcDir)),
		TypeScript: testable.Exists(fsys, filepath.Join(dir, "tsconfig.json")),
	}
	switch {
	case pages && app:
		l.Router = RouterBoth
	case app:
		l.Router = RouterApp
	case pages:
		l.Router = RouterPages
	}
	slog.Debug("detected project layout", "router", l.Router, "src", l.HasSrc, "typescript", l.TypeScript)
	return l
}

func anyExists(fsys testable.FileSystem, dir string, markers []string) bool {
	for _, m := range markers {
		rel := filepath.FromSlash(m)
		if testable.Exists(fsys, filepath.Join(dir, rel)) || testable.Exists(fsys, filepath.Join(dir, SrcDir, rel)) {
			return true
		}
	}
	return false
}
