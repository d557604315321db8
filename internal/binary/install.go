package binary

import (
	"fmt"
	"io"
	"os"
)

// installFile moves a file into place, overwriting any previous
// installation.
func installFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	// Rename may fail across filesystems; try copy.
	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("copy into place: %w", err)
	}
	os.Remove(src)

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
