// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package envfile chooses the dotenv file to write and merges managed
// keys into it without disturbing anything else.
package envfile

import (
	"runtime"
	"strings"

	"github.com/monocloud/monocloud-cli/internal/options"
)

// EOL is the line terminator used to split and join env files.
var EOL = lineEnding(runtime.GOOS)

func lineEnding(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Change records what Merge did to one managed key.
type Change struct {
	Key      string
	Appended bool // false means an existing line was rewritten
}

// Merge writes entries into content and returns the new content.
//
// Blank lines are dropped. A line whose key (the text before the first
// "=") equals an entry key is rewritten in place; later lines with the
// same key are removed. Entries that matched no line are appended in
// order. Entries with an empty value are ignored, so keys the caller did
// not collect are left as they are. Every other line is kept verbatim.
func Merge(content string, entries []options.Entry) string {
	out, _ := merge(content, entries)
	return out
}

func merge(content string, entries []options.Entry) (string, []Change) {
	pending := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.Value != "" {
			pending[e.Key] = e.Value
		}
	}

	var (
		lines   []string
		changes []Change
		written = make(map[string]bool)
	)
	for _, line := range strings.Split(content, EOL) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key := lineKey(line)
		if written[key] {
			continue
		}
		if v, ok := pending[key]; ok {
			line = key + "=" + v
			delete(pending, key)
			written[key] = true
			changes = append(changes, Change{Key: key})
		}
		lines = append(lines, line)
	}

	for _, e := range entries {
		v, ok := pending[e.Key]
		if !ok {
			continue
		}
		lines = append(lines, e.Key+"="+v)
		delete(pending, e.Key)
		changes = append(changes, Change{Key: e.Key, Appended: true})
	}

	return strings.Join(lines, EOL), changes
}

// lineKey returns the text before the first "=", or the whole line.
func lineKey(line string) string {
	key, _, _ := strings.Cut(line, "=")
	return key
}
