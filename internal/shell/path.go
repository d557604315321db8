package shell

import "path/filepath"

// OnPath reports whether dir is listed in the given PATH value.
// Entries are compared as cleaned literal paths; symlinks are not
// resolved.
func OnPath(pathEnv, dir string) bool {
	if dir == "" {
		return false
	}

	target := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(pathEnv) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == target {
			return true
		}
	}

	return false
}
