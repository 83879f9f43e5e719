package videos

import (
	"context"

	"github.com/killallgit/videomind-api/internal/models"
	"github.com/killallgit/videomind-api/internal/services/qa"
	"github.com/killallgit/videomind-api/internal/services/timestamps"
	"github.com/killallgit/videomind-api/pkg/transcript"
)

// TranscriptProvider returns the time-coded transcript of a video, or nil
// when it has none
type TranscriptProvider interface {
	Get(ctx context.Context, videoID string) ([]transcript.Entry, error)
}

// TimestampExtractor derives navigable timestamps
type TimestampExtractor interface {
	FromTranscript(ctx context.Context, entries []transcript.Entry) (*timestamps.Result, error)
	FromVideo(ctx context.Context, videoURL string) (*timestamps.Result, error)
}

// QuestionAnswerer answers questions over a transcript
type QuestionAnswerer interface {
	Ask(ctx context.Context, entries []transcript.Entry, question, videoURL string) (*qa.Answer, error)
}

// VisualIndex stores and searches embedded scene descriptions
type VisualIndex interface {
	Index(videoID string, descriptions []models.VideoDescription)
	Has(videoID string) bool
	Search(videoID string, query []float32, topK int) ([]models.VisualSearchResult, error)
}
