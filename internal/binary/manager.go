package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Manager orchestrates artifact download, extraction, and installation
type Manager struct {
	installDir   string
	tempBase     string
	downloadBase string
	downloader   *Downloader
	extractor    *Extractor
}

// Config holds configuration for the binary manager
type Config struct {
	// InstallDir is the directory the binary is installed into
	// (typically ~/.local/bin)
	InstallDir string
	// TempBase is the parent of the per-run scratch directory
	// (default: the system temp dir)
	TempBase string
	// DownloadBase is the URL prefix artifacts are fetched from
	// (default: the project's GitHub releases)
	DownloadBase string
}

// NewManager creates a new binary manager
func NewManager(config Config) (*Manager, error) {
	if config.InstallDir == "" {
		return nil, fmt.Errorf("InstallDir is required")
	}

	downloadBase := config.DownloadBase
	if downloadBase == "" {
		downloadBase = DefaultDownloadBase
	}

	manager := &Manager{
		installDir:   config.InstallDir,
		tempBase:     config.TempBase,
		downloadBase: downloadBase,
		downloader:   NewDownloader(),
		extractor:    NewExtractor(),
	}

	return manager, nil
}

// Install downloads the release artifact for the given tag and target
// triple, extracts it, and moves the binary into the install directory.
// An existing installation is overwritten. Returns the installed path.
func (m *Manager) Install(ctx context.Context, tag, triple string) (string, error) {
	info, err := constructDownloadInfo(m.downloadBase, tag, triple)
	if err != nil {
		return "", fmt.Errorf("construct download info: %w", err)
	}

	// Scratch directory lives for exactly one run.
	tmpDir, err := os.MkdirTemp(m.tempBase, "project-dash-install-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	archivePath := filepath.Join(tmpDir, info.Name)
	if err := m.downloader.DownloadToFile(ctx, info.URL, archivePath); err != nil {
		return "", fmt.Errorf("download %s: %w", info.Name, err)
	}

	extractDir := filepath.Join(tmpDir, "extract")
	if err := m.extractor.ExtractTarGz(archivePath, extractDir); err != nil {
		return "", fmt.Errorf("extract archive: %w", err)
	}

	srcPath := filepath.Join(extractDir, Name)
	fi, err := os.Stat(srcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s not found in archive", Name)
		}
		return "", fmt.Errorf("stat extracted binary: %w", err)
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("%s in archive is not a regular file", Name)
	}

	if err := os.MkdirAll(m.installDir, 0755); err != nil {
		return "", fmt.Errorf("create install dir: %w", err)
	}

	destPath := filepath.Join(m.installDir, Name)
	if err := installFile(srcPath, destPath); err != nil {
		return "", fmt.Errorf("install binary: %w", err)
	}

	if err := SetExecutable(destPath); err != nil {
		return "", fmt.Errorf("set executable: %w", err)
	}

	return destPath, nil
}
