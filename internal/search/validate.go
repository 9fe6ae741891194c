package search

import "regexp"

// A playable link is an optional scheme and optional "www." prefix, followed
// by a recognized video-host token and any non-empty path.
var videoURLRegex = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.?be)/.+$`)

// IsVideoURL reports whether the string looks like a playable video link.
// It gates the plain-search path only; the AI-assisted path accepts any
// non-empty query.
func IsVideoURL(raw string) bool {
	return videoURLRegex.MatchString(raw)
}
