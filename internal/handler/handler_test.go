// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package handler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monocloud/monocloud-cli/internal/project"
	"github.com/monocloud/monocloud-cli/internal/prompt"
	"github.com/monocloud/monocloud-cli/internal/testable"
)

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		layout   project.Layout
		wantPath string
	}{
		{"app js", project.Layout{Router: project.RouterApp}, "app/api/auth/[...monocloud]/route.js"},
		{"app ts src", project.Layout{Router: project.RouterApp, TypeScript: true, HasSrc: true}, "src/app/api/auth/[...monocloud]/route.ts"},
		{"pages js", project.Layout{Router: project.RouterPages}, "pages/api/auth/[...monocloud].js"},
		{"pages ts src", project.Layout{Router: project.RouterPages, TypeScript: true, HasSrc: true}, "src/pages/api/auth/[...monocloud].ts"},
		{"both prefers app", project.Layout{Router: project.RouterBoth, TypeScript: true}, "app/api/auth/[...monocloud]/route.ts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Plan(tt.layout)
			require.True(t, ok)
			assert.Equal(t, filepath.FromSlash(tt.wantPath), s.Path())
		})
	}

	_, ok := Plan(project.Layout{TypeScript: true, HasSrc: true})
	assert.False(t, ok)
}

func TestPlan_StubContent(t *testing.T) {
	g := goldie.New(t)

	app, _ := Plan(project.Layout{Router: project.RouterApp})
	g.Assert(t, "app_route", []byte(app.Content))

	pages, _ := Plan(project.Layout{Router: project.RouterPages})
	g.Assert(t, "pages_route", []byte(pages.Content))
}

func TestEmit_NoRouterAsksNothing(t *testing.T) {
	dir := t.TempDir()
	p := prompt.NewScripted()

	res, err := Emit(p, testable.DefaultFS, dir, project.Layout{HasSrc: true})
	require.NoError(t, err)
	assert.Equal(t, NotApplicable, res.Outcome)
	assert.Empty(t, p.Asked)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEmit_CreatesOnceThenNoop(t *testing.T) {
	dir := t.TempDir()
	layout := project.Layout{Router: project.RouterApp, TypeScript: true}

	p := prompt.NewScripted(prompt.Enter())
	res, err := Emit(p, testable.DefaultFS, dir, layout)
	require.NoError(t, err)
	assert.Equal(t, Created, res.Outcome)

	path := filepath.Join(dir, "app", "api", "auth", "[...monocloud]", "route.ts")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, appRouterStub, string(data))

	p2 := prompt.NewScripted()
	res, err = Emit(p2, testable.DefaultFS, dir, layout)
	require.NoError(t, err)
	assert.Equal(t, Exists, res.Outcome)
	assert.Empty(t, p2.Asked)
}

func TestEmit_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "src", "pages", "api", "auth", "[...monocloud].js")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o750))
	require.NoError(t, os.WriteFile(target, []byte("// custom"), 0o600))

	res, err := Emit(prompt.NewScripted(), testable.DefaultFS, dir, project.Layout{Router: project.RouterPages, HasSrc: true})
	require.NoError(t, err)
	assert.Equal(t, Exists, res.Outcome)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "// custom", string(data))
}

func TestEmit_Declined(t *testing.T) {
	dir := t.TempDir()
	res, err := Emit(prompt.NewScripted(prompt.No()), testable.DefaultFS, dir, project.Layout{Router: project.RouterPages})
	require.NoError(t, err)
	assert.Equal(t, Declined, res.Outcome)
	assert.NoDirExists(t, filepath.Join(dir, "pages"))
}

func TestEmit_Cancelled(t *testing.T) {
	_, err := Emit(prompt.NewScripted(prompt.Cancel()), testable.DefaultFS, t.TempDir(), project.Layout{Router: project.RouterApp})
	assert.ErrorIs(t, err, prompt.ErrCancelled)
}

func TestEmit_MkdirFailure(t *testing.T) {
	fsys := &testable.MockFileSystem{
		StatFn:     func(string) (os.FileInfo, error) { return nil, os.ErrNotExist },
		MkdirAllFn: func(string, os.FileMode) error { return errors.New("read-only file system") },
	}
	_, err := Emit(prompt.NewScripted(prompt.Yes()), fsys, "/project", project.Layout{Router: project.RouterApp})
	assert.ErrorContains(t, err, "read-only file system")
}
