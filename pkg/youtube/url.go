// Package youtube resolves video identifiers from YouTube URLs and builds
// deep links back into a video.
package youtube

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidURL is returned when a URL is not a recognized video URL
var ErrInvalidURL = errors.New("invalid YouTube URL")

// InvalidURLError describes why a URL was rejected
type InvalidURLError struct {
	URL    string
	Reason string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid YouTube URL %q: %s", e.URL, e.Reason)
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

const (
	shortHost     = "youtu.be"
	canonicalHost = "youtube.com"
	watchPath     = "/watch"
	videoParam    = "v"
	timeParam     = "t"
)

// ExtractVideoID returns the video identifier for a short-link
// (https://youtu.be/<id>) or canonical (https://www.youtube.com/watch?v=<id>)
// URL. Any other shape is rejected.
func ExtractVideoID(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", &InvalidURLError{URL: rawURL, Reason: "empty URL"}
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", &InvalidURLError{URL: rawURL, Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &InvalidURLError{URL: rawURL, Reason: "scheme must be http or https"}
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == shortHost:
		id := strings.Trim(u.Path, "/")
		if i := strings.LastIndex(id, "/"); i >= 0 {
			id = id[i+1:]
		}
		if !validID(id) {
			return "", &InvalidURLError{URL: rawURL, Reason: "missing video id in path"}
		}
		return id, nil

	case isCanonicalHost(host):
		if strings.TrimSuffix(u.Path, "/") != watchPath {
			return "", &InvalidURLError{URL: rawURL, Reason: "expected /watch path"}
		}
		id := u.Query().Get(videoParam)
		if !validID(id) {
			return "", &InvalidURLError{URL: rawURL, Reason: "missing v parameter"}
		}
		return id, nil
	}

	return "", &InvalidURLError{URL: rawURL, Reason: "unrecognized host " + host}
}

// WatchURL returns the canonical watch URL for a video id
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
}

// TimestampURL returns videoURL with its time offset set to seconds.
// If videoURL cannot be parsed it is returned unchanged.
func TimestampURL(videoURL string, seconds int) string {
	u, err := url.Parse(strings.TrimSpace(videoURL))
	if err != nil || u.Host == "" {
		return videoURL
	}
	if seconds < 0 {
		seconds = 0
	}
	q := u.Query()
	q.Set(timeParam, strconv.Itoa(seconds)+"s")
	u.RawQuery = q.Encode()
	return u.String()
}

func isCanonicalHost(host string) bool {
	return host == canonicalHost || host == "www."+canonicalHost || host == "m."+canonicalHost
}

func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
