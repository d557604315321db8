package platform

import "fmt"

// ResolveTriple maps an OS name and kernel machine string to the target
// triple naming the release artifact built for that platform. Inputs follow
// uname conventions, so 64-bit ARM is "aarch64" on Linux and "arm64" on
// macOS. Any pair without a published artifact is an error.
func ResolveTriple(osName, machine string) (string, error) {
	switch osName {
	case "linux":
		switch machine {
		case "x86_64":
			return "x86_64-unknown-linux-gnu", nil
		case "aarch64":
			return "aarch64-unknown-linux-gnu", nil
		default:
			return "", fmt.Errorf("unsupported linux architecture: %s", machine)
		}
	case "darwin":
		switch machine {
		case "x86_64":
			return "x86_64-apple-darwin", nil
		case "arm64":
			return "aarch64-apple-darwin", nil
		default:
			return "", fmt.Errorf("unsupported darwin architecture: %s", machine)
		}
	default:
		return "", fmt.Errorf("unsupported operating system: %s", osName)
	}
}
