package transcripts

import (
	"context"
	"errors"
	"time"

	"github.com/killallgit/videomind-api/internal/services/cache"
	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/pkg/transcript"
	"github.com/phuslu/log"
)

// Fetcher retrieves a caption track for a video
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (*transcript.TranscriptResult, error)
}

// Service fetches transcripts and keeps them in a cache. A video without
// captions is cached as an empty entry list so it is not fetched again
// until the ttl expires.
type Service struct {
	fetcher Fetcher
	cache   cache.Cache[[]transcript.Entry]
	ttl     time.Duration
}

// NewService creates a transcript service. A nil cache disables caching.
func NewService(fetcher Fetcher, c cache.Cache[[]transcript.Entry], ttl time.Duration) *Service {
	return &Service{fetcher: fetcher, cache: c, ttl: ttl}
}

// Get returns the time-coded transcript of videoID. A missing transcript is
// nil with a nil error; fetch failures are logged and treated the same way.
// Only a cancelled or expired context is returned as an error.
func (s *Service) Get(ctx context.Context, videoID string) ([]transcript.Entry, error) {
	if s.cache != nil {
		if entries, ok := s.cache.Get(ctx, videoID); ok {
			log.Debug().Str("video_id", videoID).Int("entries", len(entries)).Msg("Transcript cache hit")
			return nilIfEmpty(entries), nil
		}
	}

	start := time.Now()
	result, err := s.fetcher.Fetch(ctx, videoID)
	switch {
	case err == nil:
	case errors.Is(err, transcript.ErrNoTranscript):
		log.Info().Str("video_id", videoID).Msg("No transcript available")
		s.store(ctx, videoID, []transcript.Entry{})
		return nil, nil
	case ctx.Err() != nil:
		return nil, llm.NewUpstreamError("transcript", "fetch "+videoID, ctx.Err())
	default:
		log.Warn().Err(err).Str("video_id", videoID).Msg("Transcript fetch failed, continuing without transcript")
		return nil, nil
	}

	entries := result.Transcript.Entries
	log.Info().
		Str("video_id", videoID).
		Str("language", result.Language).
		Str("format", string(result.Transcript.Format)).
		Int("entries", len(entries)).
		Dur("duration", time.Since(start)).
		Msg("Fetched transcript")

	s.store(ctx, videoID, entries)
	return nilIfEmpty(entries), nil
}

func (s *Service) store(ctx context.Context, videoID string, entries []transcript.Entry) {
	if s.cache != nil {
		s.cache.Set(ctx, videoID, entries, s.ttl)
	}
}

func nilIfEmpty(entries []transcript.Entry) []transcript.Entry {
	if len(entries) == 0 {
		return nil
	}
	return entries
}
