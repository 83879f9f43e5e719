package types

import (
	"context"
	"time"

	"github.com/killallgit/videomind-api/internal/services/videos"
)

// VideoService is the video analysis surface the handlers depend on
type VideoService interface {
	Analyze(ctx context.Context, videoURL string) (*videos.Analysis, error)
	Chat(ctx context.Context, videoURL, query string) (string, error)
	Timestamps(ctx context.Context, videoURL string) (*videos.TimestampList, error)
	AskQuestion(ctx context.Context, videoURL, question string) (*videos.QuestionAnswer, error)
	GenerateEmbeddings(ctx context.Context, videoURL string) (*videos.Embeddings, error)
	VisualSearch(ctx context.Context, videoURL, query string, topK int) (*videos.SearchResults, error)
}

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	VideoService VideoService

	// APIKeyConfigured reports whether a model API key was supplied
	APIKeyConfigured bool

	// RequestTimeout bounds each analysis request; zero disables it
	RequestTimeout time.Duration

	Build BuildInfo
}

// RequestContext derives the context for a handler call
func (d *Dependencies) RequestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if d == nil || d.RequestTimeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, d.RequestTimeout)
}
