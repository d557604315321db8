// Package binary downloads, extracts, and installs the project-dash
// release binary.
//
// # Artifact Layout
//
// Every release publishes one tar.gz archive per supported target triple,
// named project-dash-{triple}.tar.gz, containing the project-dash binary
// at the archive root.
//
// # Lifecycle
//
// All intermediate files live in a scratch directory created with
// os.MkdirTemp and removed when the install returns, on success and on
// failure alike. Only the final binary survives, moved into the install
// directory and marked executable. Re-running an install overwrites the
// previous binary in place.
//
// # Usage
//
//	mgr, err := binary.NewManager(binary.Config{
//	    InstallDir: filepath.Join(home, ".local", "bin"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	path, err := mgr.Install(ctx, "v1.4.2", "x86_64-unknown-linux-gnu")
//
// # Architecture
//
// The package is organized into several components:
//   - Manager: High-level orchestration of download, extract, install
//   - Downloader: Single-attempt HTTP download with progress reporting
//   - Extractor: Archive extraction (tar.gz)
//   - DownloadInfo: Per-triple artifact name and URL construction
package binary
