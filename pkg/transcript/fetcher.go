package transcript

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoTranscript is returned when a video has no caption track for any of
// the requested languages
var ErrNoTranscript = errors.New("no transcript available")

// FetchOptions configures transcript fetching behavior
type FetchOptions struct {
	BaseURL   string // timed-text endpoint
	Languages []string
	Timeout   time.Duration
	UserAgent string
	MaxSize   int64 // Maximum transcript size in bytes
}

// DefaultFetchOptions returns default fetch options
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		BaseURL:   "https://www.youtube.com/api/timedtext",
		Languages: []string{"en"},
		Timeout:   30 * time.Second,
		UserAgent: "VideoMindAPI/1.0",
		MaxSize:   10 * 1024 * 1024, // 10MB max for transcripts
	}
}

// Fetcher downloads caption tracks for a video id
type Fetcher struct {
	client  *http.Client
	parser  *Parser
	options FetchOptions
}

// NewFetcher creates a new transcript fetcher
func NewFetcher(options FetchOptions) *Fetcher {
	if len(options.Languages) == 0 {
		options.Languages = []string{"en"}
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        5,
				IdleConnTimeout:     30 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		parser:  NewParser(),
		options: options,
	}
}

// TranscriptResult contains the fetched transcript and metadata
type TranscriptResult struct {
	Transcript  *Transcript
	Language    string
	ContentType string
	Size        int64
}

// Fetch downloads and parses the first caption track available in the
// configured languages. ErrNoTranscript is returned when none exists.
func (f *Fetcher) Fetch(ctx context.Context, videoID string) (*TranscriptResult, error) {
	if videoID == "" {
		return nil, fmt.Errorf("empty video id")
	}

	var lastErr error
	for _, lang := range f.options.Languages {
		result, err := f.fetchLanguage(ctx, videoID, lang)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
	}

	if errors.Is(lastErr, ErrNoTranscript) {
		return nil, ErrNoTranscript
	}
	return nil, lastErr
}

func (f *Fetcher) fetchLanguage(ctx context.Context, videoID, lang string) (*TranscriptResult, error) {
	endpoint, err := url.Parse(f.options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid transcript base URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("v", videoID)
	q.Set("lang", lang)
	q.Set("fmt", "vtt")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.options.UserAgent)
	req.Header.Set("Accept", "text/vtt,application/x-subrip,application/json,*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoTranscript
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcript server returned status %d", resp.StatusCode)
	}

	if resp.ContentLength > f.options.MaxSize {
		return nil, fmt.Errorf("transcript too large: %d bytes (max: %d)", resp.ContentLength, f.options.MaxSize)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.options.MaxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	content := string(body)
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoTranscript
	}

	contentType := resp.Header.Get("Content-Type")
	parsed, err := f.parser.Parse(content, detectFormat(contentType, content))
	if err != nil {
		return nil, err
	}
	if len(parsed.Entries) == 0 {
		return nil, ErrNoTranscript
	}

	return &TranscriptResult{
		Transcript:  parsed,
		Language:    lang,
		ContentType: contentType,
		Size:        int64(len(body)),
	}, nil
}

// detectFormat determines the caption format from content type and content
func detectFormat(contentType, content string) TranscriptFormat {
	start := strings.TrimSpace(content)
	if len(start) > 1000 {
		start = start[:1000]
	}

	switch {
	case strings.HasPrefix(start, "WEBVTT"):
		return FormatVTT
	case strings.HasPrefix(start, "{") && strings.Contains(start, `"events"`):
		return FormatJSON3
	case strings.HasPrefix(start, "{") || strings.HasPrefix(start, "["):
		return FormatJSON
	case strings.Contains(start, "-->"):
		if srtCueRegex.MatchString(start) {
			return FormatSRT
		}
		return FormatVTT
	}

	contentType = strings.ToLower(contentType)
	switch {
	case strings.Contains(contentType, "vtt"):
		return FormatVTT
	case strings.Contains(contentType, "subrip") || strings.Contains(contentType, "srt"):
		return FormatSRT
	case strings.Contains(contentType, "json"):
		return FormatJSON
	}

	return FormatText
}
