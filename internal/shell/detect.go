package shell

import (
	"os"
	"path/filepath"
	"strings"
)

// DetectShell identifies the user's shell from the SHELL environment
// variable. An unset or unrecognized value yields ShellUnknown; detection
// never fails the caller.
func DetectShell() ShellType {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return ShellUnknown
	}
	return parseShellFromPath(shell)
}

// parseShellFromPath extracts the shell type from a shell binary path
// Examples:
//   - /bin/bash -> bash
//   - /usr/bin/zsh -> zsh
//   - /usr/local/bin/fish -> fish
func parseShellFromPath(shellPath string) ShellType {
	baseName := strings.ToLower(filepath.Base(shellPath))

	switch baseName {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ShellUnknown
	}
}
