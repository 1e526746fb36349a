package link

import (
	"net/url"
	"strings"
)

// EncodePath turns a work-tree relative path into the file path used in
// links: a leading "/", forward slashes, every segment escaped so spaces
// become %20. Returns "" for the repository root.
func EncodePath(rel string) string {
	rel = strings.Trim(strings.ReplaceAll(rel, `\`, "/"), "/")
	if rel == "" {
		return ""
	}

	segments := strings.Split(rel, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(segments, "/")
}
