package shell

import (
	"fmt"
	"strings"
)

// RCFileName returns the startup file conventionally read by a shell,
// written with a leading ~ for use in guidance text.
func RCFileName(shell ShellType) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return "your shell's startup file"
	}
}

// Advice renders PATH guidance for a bin directory that is not on PATH.
// It only builds text; nothing on disk is touched.
func Advice(shell ShellType, dir string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s is not on your PATH.\n", dir)

	switch shell {
	case ShellFish:
		b.WriteString("Add it by running:\n\n")
		fmt.Fprintf(&b, "    fish_add_path %s\n", dir)
	default:
		fmt.Fprintf(&b, "Add the following line to %s:\n\n", RCFileName(shell))
		fmt.Fprintf(&b, "    export PATH=\"%s:$PATH\"\n", dir)
	}

	b.WriteString("\nThen restart your shell or open a new terminal.")

	return b.String()
}
