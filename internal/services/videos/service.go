package videos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/killallgit/videomind-api/internal/models"
	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/killallgit/videomind-api/internal/services/qa"
	"github.com/killallgit/videomind-api/internal/services/timestamps"
	"github.com/killallgit/videomind-api/internal/services/visualsearch"
	"github.com/killallgit/videomind-api/pkg/transcript"
	"github.com/killallgit/videomind-api/pkg/youtube"
	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultEmbeddingConcurrency = 4
	DefaultMaxScenes            = 30

	SourceTranscript = "transcript"
	SourceVideo      = "video"
)

// Service runs the video analysis operations behind the HTTP endpoints
type Service struct {
	generator   llm.Generator
	embedder    llm.Embedder
	transcripts TranscriptProvider
	extractor   TimestampExtractor
	answerer    QuestionAnswerer
	index       VisualIndex

	maxDuration          int
	descriptionMaxLength int
	embeddingConcurrency int
	maxScenes            int
}

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithMaxDuration sets the timestamp ceiling in seconds
func WithMaxDuration(seconds int) ServiceOption {
	return func(s *Service) {
		if seconds > 0 {
			s.maxDuration = seconds
		}
	}
}

// WithDescriptionMaxLength caps summary timestamp and scene descriptions
func WithDescriptionMaxLength(runes int) ServiceOption {
	return func(s *Service) {
		if runes > 0 {
			s.descriptionMaxLength = runes
		}
	}
}

// WithEmbeddingConcurrency bounds concurrent embedding calls
func WithEmbeddingConcurrency(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.embeddingConcurrency = n
		}
	}
}

// WithMaxScenes caps how many scene descriptions are embedded per video
func WithMaxScenes(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxScenes = n
		}
	}
}

// Analysis is a video summary with the timestamps tagged inside it
type Analysis struct {
	VideoURL          string
	VideoID           string
	Summary           string
	SummaryTimestamps []models.SummaryTimestamp
	HasTranscript     bool
}

// TimestampList is the outcome of timestamp extraction for a video
type TimestampList struct {
	VideoID string
	// Source is SourceTranscript or SourceVideo
	Source string
	*timestamps.Result
}

// QuestionAnswer is an answer to a question about a video
type QuestionAnswer struct {
	VideoID       string
	Answer        *qa.Answer
	HasTranscript bool
}

// Embeddings is the set of scene descriptions indexed for a video
type Embeddings struct {
	VideoID      string
	Descriptions []models.VideoDescription
}

// SearchResults is a ranked visual search
type SearchResults struct {
	VideoID string
	Query   string
	Results []models.VisualSearchResult
}

// NewService creates a video analysis service
func NewService(
	generator llm.Generator,
	embedder llm.Embedder,
	transcripts TranscriptProvider,
	extractor TimestampExtractor,
	answerer QuestionAnswerer,
	index VisualIndex,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		generator:            generator,
		embedder:             embedder,
		transcripts:          transcripts,
		extractor:            extractor,
		answerer:             answerer,
		index:                index,
		maxDuration:          timestamps.DefaultMaxDuration,
		descriptionMaxLength: timestamps.DefaultDescriptionMaxLength,
		embeddingConcurrency: DefaultEmbeddingConcurrency,
		maxScenes:            DefaultMaxScenes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Analyze summarizes a video. With a transcript the summary is grounded in
// it and tagged with [MM:SS] markers; without one the model watches the
// video.
func (s *Service) Analyze(ctx context.Context, videoURL string) (*Analysis, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	entries, err := s.transcripts.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}

	req := llm.Request{Prompt: videoSummaryPrompt, VideoURL: videoURL}
	if len(entries) > 0 {
		req = llm.Request{Prompt: buildTranscriptSummaryPrompt(entries)}
	}

	start := time.Now()
	summary, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("summarizing video %s: %w", videoID, err)
	}

	tags := timestamps.ScanSummary(summary, s.maxDuration, s.descriptionMaxLength)

	log.Info().
		Str("video_id", videoID).
		Bool("has_transcript", len(entries) > 0).
		Int("summary_timestamps", len(tags)).
		Dur("duration", time.Since(start)).
		Msg("Analyzed video")

	return &Analysis{
		VideoURL:          videoURL,
		VideoID:           videoID,
		Summary:           summary,
		SummaryTimestamps: tags,
		HasTranscript:     len(entries) > 0,
	}, nil
}

// Chat answers a free-form query about the video by letting the model watch it
func (s *Service) Chat(ctx context.Context, videoURL, query string) (string, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return "", err
	}

	answer, err := s.generator.Generate(ctx, llm.Request{
		Prompt:   buildChatPrompt(query),
		VideoURL: videoURL,
	})
	if err != nil {
		return "", fmt.Errorf("answering chat query for %s: %w", videoID, err)
	}
	return answer, nil
}

// Timestamps extracts navigable timestamps, from the transcript when there
// is one and from the video otherwise
func (s *Service) Timestamps(ctx context.Context, videoURL string) (*TimestampList, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	entries, err := s.transcripts.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}

	list := &TimestampList{VideoID: videoID, Source: SourceTranscript}
	if len(entries) > 0 {
		list.Result, err = s.extractor.FromTranscript(ctx, entries)
	} else {
		list.Source = SourceVideo
		list.Result, err = s.extractor.FromVideo(ctx, videoURL)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("video_id", videoID).
		Str("source", list.Source).
		Str("strategy", string(list.Strategy)).
		Int("timestamps", len(list.Timestamps)).
		Msg("Extracted timestamps")

	return list, nil
}

// AskQuestion answers a question from the transcript with time mentions
// linked back into the video
func (s *Service) AskQuestion(ctx context.Context, videoURL, question string) (*QuestionAnswer, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	entries, err := s.transcripts.Get(ctx, videoID)
	if err != nil {
		return nil, err
	}

	answer, err := s.answerer.Ask(ctx, entries, question, videoURL)
	if err != nil {
		return nil, err
	}

	return &QuestionAnswer{VideoID: videoID, Answer: answer, HasTranscript: len(entries) > 0}, nil
}

// GenerateEmbeddings asks the model to describe the video scene by scene,
// embeds every description and replaces the video's entry in the index
func (s *Service) GenerateEmbeddings(ctx context.Context, videoURL string) (*Embeddings, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.Generate(ctx, llm.Request{
		Prompt:   buildScenePrompt(s.maxScenes),
		VideoURL: videoURL,
		Schema:   sceneSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("describing scenes of %s: %w", videoID, err)
	}

	scenes := parseScenes(raw, s.maxDuration, s.descriptionMaxLength)
	if len(scenes) == 0 {
		return nil, llm.NewUpstreamError("gemini", "describe scenes", fmt.Errorf("model returned no usable scene descriptions"))
	}
	if len(scenes) > s.maxScenes {
		scenes = scenes[:s.maxScenes]
	}

	descriptions := make([]models.VideoDescription, len(scenes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.embeddingConcurrency)
	for i, scene := range scenes {
		g.Go(func() error {
			embedding, err := s.embedder.Embed(gctx, scene.Description)
			if err != nil {
				return fmt.Errorf("embedding scene at %ds: %w", scene.Timestamp, err)
			}
			descriptions[i] = models.VideoDescription{
				Timestamp:   scene.Timestamp,
				Description: scene.Description,
				Embedding:   embedding,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.index.Index(videoID, descriptions)

	log.Info().Str("video_id", videoID).Int("descriptions", len(descriptions)).Msg("Indexed video scenes")

	return &Embeddings{VideoID: videoID, Descriptions: descriptions}, nil
}

// VisualSearch ranks the indexed scenes of a video against query
func (s *Service) VisualSearch(ctx context.Context, videoURL, query string, topK int) (*SearchResults, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	if !s.index.Has(videoID) {
		return nil, fmt.Errorf("%w: %s", visualsearch.ErrNotIndexed, videoID)
	}

	embedding, err := s.embedder.Embed(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("embedding search query: %w", err)
	}

	results, err := s.index.Search(videoID, embedding, topK)
	if err != nil {
		return nil, err
	}

	return &SearchResults{VideoID: videoID, Query: query, Results: results}, nil
}

const videoSummaryPrompt = "Please summarize this video in 3 sentences and identify any key objects or actions visible. " +
	"After each sentence that refers to a specific moment, add its time in square brackets, for example [01:30], or [1:05:30] from one hour on."

func buildTranscriptSummaryPrompt(entries []transcript.Entry) string {
	var b strings.Builder
	b.WriteString("Summarize the video below from its transcript in one or two short paragraphs.\n")
	b.WriteString("After each sentence that refers to a specific moment, add the time of that moment in square brackets, for example [01:30], or [1:05:30] from one hour on.\n")
	b.WriteString("Only use times that appear in the transcript.\n\n")
	b.WriteString("Transcript:\n")
	for _, entry := range entries {
		b.WriteString(entry.Line())
		b.WriteByte('\n')
	}
	return b.String()
}

func buildChatPrompt(query string) string {
	return "Answer the following question about this video. Be concise and cite times as MM:SS when relevant.\n\nQuestion: " + query
}
