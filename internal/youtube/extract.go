package youtube

import (
	"regexp"
	"strings"
)

// Recognized URL shapes, tried in order:
//   - https://www.youtube.com/watch?v=VIDEO_ID
//   - https://youtu.be/VIDEO_ID
//   - https://www.youtube.com/embed/VIDEO_ID
//   - watch URLs where v= is not the first query parameter
var videoIdPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([A-Za-z0-9_-]+)`),
}

// ExtractVideoId returns the canonical video identifier for a YouTube URL,
// or the empty string when no known shape matches. It never fails on
// malformed input.
func ExtractVideoId(url string) string {
	url = strings.TrimSpace(url)
	for _, pattern := range videoIdPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// WatchURL returns the canonical watch page URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}
