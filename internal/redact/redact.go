// Copyright 2026 The MonoCloud CLI Authors
// SPDX-License-Identifier: MIT

// Package redact strips client secrets and cookie secrets from strings
// before they appear in output, logs, or error messages.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"MONOCLOUD_AUTH_CLIENT_SECRET",
	"MONOCLOUD_AUTH_COOKIE_SECRET",
	"NPM_TOKEN",
}

// minSecretLen guards against false-positive redaction of short values.
const minSecretLen = 4

var (
	mu            sync.Mutex
	cachedSecrets []string
	registered    []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if len(val) >= minSecretLen {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// resetCache resets the cached and registered secrets.
func resetCache() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	registered = nil
	cacheOnce = sync.Once{}
}

// ResetForTest resets the cached secrets so tests in other packages can
// verify redaction behavior after setting env vars with t.Setenv.
func ResetForTest() { resetCache() }

// Register adds a secret collected at runtime (flag, prompt or generated)
// to the redaction list.
func Register(secret string) {
	secret = strings.TrimSpace(secret)
	if len(secret) < minSecretLen {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, secret)
}

// String replaces any occurrence of a known secret with "[REDACTED]".
// Returns the original string if no secrets are found.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	mu.Lock()
	defer mu.Unlock()
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	for _, secret := range registered {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
