// Package testutil provides utilities for testing the installer in isolation.
package testutil

import (
	"testing"
)

// SetupTestEnv points every environment variable the installer reads at
// an isolated location, so tests never touch the real home directory or
// pick up the caller's GitHub credentials. It returns the fake home
// directory.
//
// Cleanup is automatically handled by t.TempDir and t.Setenv, so callers
// don't need to undo anything.
func SetupTestEnv(t *testing.T) string {
	t.Helper()

	home := t.TempDir()

	t.Setenv("HOME", home)
	t.Setenv("PATH", "/usr/bin:/bin")
	t.Setenv("SHELL", "/bin/bash")
	t.Setenv("GITHUB_TOKEN", "")

	return home
}
