// Package shell detects the user's shell and renders PATH guidance.
//
// The installer never edits shell startup files. When the install
// directory is missing from PATH, this package produces the exact line
// the user should add themselves, tailored to their shell:
//   - bash: export line for ~/.bashrc
//   - zsh: export line for ~/.zshrc
//   - fish: fish_add_path invocation
//
// # Shell Detection
//
// Detection reads the SHELL environment variable and maps the binary's
// base name to a known shell. Anything unrecognized falls back to
// generic POSIX guidance; detection never aborts an install.
package shell
