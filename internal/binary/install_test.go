package binary

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstallFile(t *testing.T) {
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src")
	dst := filepath.Join(tmpDir, "dst")

	if err := os.WriteFile(src, []byte("payload"), 0755); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	if err := installFile(src, dst); err != nil {
		t.Fatalf("installFile failed: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read dest: %v", err)
	}

	if string(content) != "payload" {
		t.Errorf("content mismatch: %q", string(content))
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source should be gone after install")
	}
}

func TestInstallFile_OverwritesDest(t *testing.T) {
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src")
	dst := filepath.Join(tmpDir, "dst")

	if err := os.WriteFile(src, []byte("new"), 0755); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old"), 0755); err != nil {
		t.Fatalf("failed to write dest: %v", err)
	}

	if err := installFile(src, dst); err != nil {
		t.Fatalf("installFile failed: %v", err)
	}

	content, _ := os.ReadFile(dst)
	if string(content) != "new" {
		t.Errorf("dest was not overwritten: %q", string(content))
	}
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()

	src := filepath.Join(tmpDir, "src")
	dst := filepath.Join(tmpDir, "dst")

	if err := os.WriteFile(src, []byte("copy me"), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile failed: %v", err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("failed to read dest: %v", err)
	}

	if string(content) != "copy me" {
		t.Errorf("content mismatch: %q", string(content))
	}

	// Source must remain in place after a copy.
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source should still exist: %v", err)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()

	err := copyFile(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dst"))
	if err == nil {
		t.Error("expected error for missing source")
	}
}
