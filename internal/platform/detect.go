package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// The OS comes from runtime.GOOS; the machine string is the kernel's
// (the `uname -m` value, so Linux reports 64-bit ARM as "aarch64" while
// macOS reports "arm64"), and gopsutil supplies Linux distribution details.
//
// If the kernel query fails, the machine string falls back to a mapping
// from runtime.GOARCH. On Linux, if gopsutil fails to detect the
// distribution, the distro fields stay empty and detection continues
// (graceful fallback) since only the progress output reads them.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{OS: runtime.GOOS}

	machine, err := host.KernelArch()
	if err != nil || machine == "" {
		machine = fallbackMachine(runtime.GOOS, runtime.GOARCH)
	}
	info.Machine = machine

	// Detect Linux distribution details using gopsutil (Linux only)
	if runtime.GOOS == "linux" {
		name, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Check if context was cancelled - this is a hard failure
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Graceful fallback: OS and machine are enough to install
			return info, nil
		}

		name = normalizePlatform(name)
		if name != "" {
			info.Platform = name
			info.Family = mapFamily(family)
			info.Version = normalizePlatform(version)
		}
	}

	return info, nil
}

// fallbackMachine approximates the kernel machine string from the Go
// runtime when the kernel query is unavailable.
func fallbackMachine(goos, goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		if goos == "darwin" {
			return "arm64"
		}
		return "aarch64"
	default:
		return goarch
	}
}
