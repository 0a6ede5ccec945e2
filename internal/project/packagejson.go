// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package project

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/monocloud/monocloud-cli/internal/testable"
)

// PackageJSONFile is the npm manifest name.
const PackageJSONFile = "package.json"

// PackageJSON is the subset of package.json fields we need.
type PackageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// HasPackageJSON reports whether dir contains a package.json.
func HasPackageJSON(fsys testable.FileSystem, dir string) bool {
	return testable.Exists(fsys, filepath.Join(dir, PackageJSONFile))
}

// ReadPackageJSON parses dir/package.json.
func ReadPackageJSON(fsys testable.FileSystem, dir string) (*PackageJSON, error) {
	data, err := fsys.ReadFile(filepath.Join(dir, PackageJSONFile))
	if err != nil {
		return nil, err
	}
	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", PackageJSONFile, err)
	}
	return &pkg, nil
}

// HasDependency reports whether name is declared as a dependency or
// dev dependency.
func (p *PackageJSON) HasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}
