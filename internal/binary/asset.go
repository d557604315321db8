package binary

import "fmt"

// assetName returns the artifact filename published for a target triple.
// Pattern: project-dash-{triple}.tar.gz
func assetName(triple string) string {
	return fmt.Sprintf("%s-%s.tar.gz", Name, triple)
}

// constructDownloadInfo builds the artifact name and URL for a release tag
// and target triple
func constructDownloadInfo(base, tag, triple string) (*DownloadInfo, error) {
	if tag == "" {
		return nil, fmt.Errorf("release tag is required")
	}
	if triple == "" {
		return nil, fmt.Errorf("target triple is required")
	}

	name := assetName(triple)
	return &DownloadInfo{
		Tag:    tag,
		Triple: triple,
		Name:   name,
		URL:    fmt.Sprintf("%s/%s/%s", base, tag, name),
	}, nil
}
