// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package testable provides interfaces for abstracting OS-level operations,
// enabling mock injection in tests without modifying production behavior.
package testable

import (
	"os"
	"path/filepath"
)

// FileSystem abstracts file system operations to enable mock injection in tests.
// The production implementation (OsFileSystem) delegates to the standard library.
type FileSystem interface {
	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (os.FileInfo, error)

	// ReadDir reads the named directory, returning its entries sorted by name.
	ReadDir(name string) ([]os.DirEntry, error)

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(name string, data []byte, perm os.FileMode) error

	// ReadFile reads the named file and returns the contents.
	ReadFile(name string) ([]byte, error)

	// MkdirAll creates a directory named path, along with any necessary parents.
	MkdirAll(path string, perm os.FileMode) error
}

// OsFileSystem is the production implementation of FileSystem that delegates
// to the standard library os and filepath packages.
type OsFileSystem struct{}

// Abs wraps filepath.Abs.
func (OsFileSystem) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// Stat wraps os.Stat.
func (OsFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadDir wraps os.ReadDir.
func (OsFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// WriteFile wraps os.WriteFile.
func (OsFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm) //nolint:gosec // caller controls path and perms
}

// ReadFile wraps os.ReadFile.
func (OsFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec // caller controls path
}

// MkdirAll wraps os.MkdirAll.
func (OsFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// DefaultFS is the production FileSystem used as the default throughout
// the application. All packages should use this as their default when no
// custom FileSystem is injected.
var DefaultFS FileSystem = OsFileSystem{}

// Exists reports whether name can be stat'ed through fsys. Any error,
// including permission errors, counts as absent.
func Exists(fsys FileSystem, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}

// IsDir reports whether name exists and is a directory.
func IsDir(fsys FileSystem, name string) bool {
	info, err := fsys.Stat(name)
	return err == nil && info.IsDir()
}
