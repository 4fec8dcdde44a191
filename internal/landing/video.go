package landing

import (
	"fmt"
	"regexp"
)

// The two URL shapes listers paste: the full watch URL and the short host.
var (
	watchRe = regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]+)`)
	shortRe = regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]+)`)
)

// ExtractVideoID pulls the platform video identifier out of a pasted URL.
func ExtractVideoID(raw string) (string, bool) {
	if m := watchRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	if m := shortRe.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	return "", false
}

// EmbedURL builds the autoplaying, muted, looping player URL for the
// video-hero background. Looping requires repeating the id as playlist.
func EmbedURL(id string) string {
	return fmt.Sprintf(
		"https://www.youtube.com/embed/%s?autoplay=1&mute=1&loop=1&controls=0&playlist=%s",
		id, id,
	)
}
