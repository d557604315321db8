package main

import (
	"fmt"
	"os"
)

func main() {
	// The installer does exactly one thing; arguments are ignored.
	if err := runInstall(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
