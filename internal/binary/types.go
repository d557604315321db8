package binary

// Name is the binary installed into the user's bin directory.
const Name = "project-dash"

// Repo is the GitHub repository releases are published under.
const Repo = "project-dash/project-dash"

// DefaultDownloadBase is the URL prefix release artifacts are fetched from.
const DefaultDownloadBase = "https://github.com/" + Repo + "/releases/download"

// DownloadInfo contains metadata needed to download a release artifact.
type DownloadInfo struct {
	Tag    string // release tag, e.g. "v1.4.2"
	Triple string // target triple, e.g. "x86_64-unknown-linux-gnu"
	Name   string // artifact filename
	URL    string // constructed download URL
}
