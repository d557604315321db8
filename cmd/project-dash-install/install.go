package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/project-dash/installer/internal/binary"
	"github.com/project-dash/installer/internal/platform"
	"github.com/project-dash/installer/internal/release"
	"github.com/project-dash/installer/internal/shell"
)

// installTimeout bounds the whole run, download included.
const installTimeout = 5 * time.Minute

// runInstall performs the full install against the public GitHub API.
func runInstall() error {
	return installFrom(release.DefaultBaseURL, binary.DefaultDownloadBase)
}

// installFrom is runInstall with the two remote endpoints injectable so
// tests can point them at local servers.
func installFrom(apiBase, downloadBase string) error {
	ctx, cancel := context.WithTimeout(context.Background(), installTimeout)
	defer cancel()

	fmt.Println("Installing project-dash...")
	fmt.Println()

	// Step 1: Resolve the install target
	info, triple, err := resolveTarget(ctx)
	if err != nil {
		return err
	}
	if distro := info.GetDistro(); distro != nil {
		fmt.Printf("✓ Detected %s (%s family), target %s\n", distro.ID, distro.Family, triple)
	} else {
		fmt.Printf("✓ Detected %s %s, target %s\n", info.OS, info.Machine, triple)
	}

	// Step 2: Find the latest release
	locator := release.NewLocator(binary.Repo, release.WithBaseURL(apiBase))
	tag, err := locator.LatestTag(ctx)
	if err != nil {
		return fmt.Errorf("locate latest release: %w", err)
	}
	fmt.Printf("✓ Latest release: %s\n", tag)

	// Step 3: Download, unpack, and move into place
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("get home directory: %w", err)
	}
	installDir := filepath.Join(home, ".local", "bin")

	manager, err := binary.NewManager(binary.Config{
		InstallDir:   installDir,
		DownloadBase: downloadBase,
	})
	if err != nil {
		return fmt.Errorf("create binary manager: %w", err)
	}

	destPath, err := manager.Install(ctx, tag, triple)
	if err != nil {
		return fmt.Errorf("install %s: %w", binary.Name, err)
	}
	fmt.Printf("✓ Installed %s\n", destPath)

	// Step 4: PATH advice
	fmt.Println()
	if shell.OnPath(os.Getenv("PATH"), installDir) {
		fmt.Printf("%s %s is ready to use.\n", binary.Name, tag)
	} else {
		fmt.Printf("⚠  %s\n", shell.Advice(shell.DetectShell(), installDir))
	}

	return nil
}

// resolveTarget detects the host platform and maps it to a release triple
func resolveTarget(ctx context.Context) (*platform.Info, string, error) {
	detector := platform.NewDetector()
	info, err := detector.Detect(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("detect platform: %w", err)
	}

	triple, err := platform.ResolveTriple(info.OS, info.Machine)
	if err != nil {
		return nil, "", err
	}

	return info, triple, nil
}
