// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/monocloud/monocloud-cli/internal/framework"
)

// printSummary writes the list of actions taken during the run.
func printSummary(w io.Writer, actions []framework.Action) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	_, _ = fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "MonoCloud setup complete")
	_, _ = fmt.Fprintln(w)

	changed := false
	for _, a := range actions {
		var prefix string
		switch a.Operation {
		case framework.OpCreated, framework.OpInstalled:
			prefix = green.Sprint("  + ")
			changed = true
		case framework.OpUpdated:
			prefix = yellow.Sprint("  ~ ")
			changed = true
		default:
			prefix = dim.Sprint("  - ")
		}
		file := a.File
		if file == "" {
			file = "-"
		}
		_, _ = fmt.Fprintf(w, "%s%-40s %s\n", prefix, file, dim.Sprintf("(%s)", a.Description))
	}

	if changed {
		_, _ = fmt.Fprintln(w)
		_, _ = bold.Fprintln(w, "Next steps:")
		_, _ = fmt.Fprintln(w, "  1. Keep your env file out of version control")
		_, _ = fmt.Fprintln(w, "  2. Start your dev server and sign in")
	}

	_, _ = fmt.Fprintln(w)
}
