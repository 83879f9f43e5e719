package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/phuslu/log"
	"google.golang.org/genai"
)

const geminiService = "gemini"

// GeminiConfig configures the Gemini client
type GeminiConfig struct {
	APIKey             string
	Model              string
	EmbeddingModel     string
	EmbeddingDimension int
	Temperature        float32
	Timeout            time.Duration
	RetryAttempts      int
	RetryDelay         time.Duration
}

// GeminiService implements Generator and Embedder on top of the genai SDK
type GeminiService struct {
	config GeminiConfig
	client *genai.Client
}

// NewGeminiService creates a Gemini client. The API key is required.
func NewGeminiService(ctx context.Context, cfg GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY or gemini.api_key)")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = "gemini-embedding-001"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	log.Info().
		Str("model", cfg.Model).
		Str("embedding_model", cfg.EmbeddingModel).
		Dur("timeout", cfg.Timeout).
		Msg("Gemini service initialized")

	return &GeminiService{config: cfg, client: client}, nil
}

// Generate sends the request to the generative model and returns its text
func (s *GeminiService) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(s.config.Temperature),
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
	}

	contents := buildContents(req)
	start := time.Now()

	var text string
	err := withRetry(ctx, s.config.RetryAttempts, s.config.RetryDelay, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()

		resp, err := s.client.Models.GenerateContent(callCtx, s.config.Model, contents, config)
		if err != nil {
			return err
		}
		text, err = extractText(resp)
		return err
	})
	if err != nil {
		log.Error().Err(err).Str("model", s.config.Model).Bool("video", req.VideoURL != "").Msg("Gemini generation failed")
		return "", NewUpstreamError(geminiService, "generate", err)
	}

	log.Debug().
		Str("model", s.config.Model).
		Int("prompt_length", len(req.Prompt)).
		Int("response_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("Gemini generation completed")

	return text, nil
}

// Embed generates an embedding vector for text
func (s *GeminiService) Embed(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty for embedding generation")
	}

	var embedConfig *genai.EmbedContentConfig
	if s.config.EmbeddingDimension > 0 {
		dim := int32(s.config.EmbeddingDimension)
		embedConfig = &genai.EmbedContentConfig{OutputDimensionality: &dim}
	}

	var values []float32
	err := withRetry(ctx, s.config.RetryAttempts, s.config.RetryDelay, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()

		result, err := s.client.Models.EmbedContent(callCtx, s.config.EmbeddingModel,
			[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}, embedConfig)
		if err != nil {
			return err
		}
		if result == nil || len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
			return fmt.Errorf("no embedding returned from API")
		}
		values = result.Embeddings[0].Values
		return nil
	})
	if err != nil {
		return nil, NewUpstreamError(geminiService, "embed", err)
	}

	return values, nil
}

// buildContents puts the video part, if any, ahead of the text instruction
func buildContents(req Request) []*genai.Content {
	parts := make([]*genai.Part, 0, 2)
	if req.VideoURL != "" {
		parts = append(parts, genai.NewPartFromURI(req.VideoURL, "video/mp4"))
	}
	parts = append(parts, genai.NewPartFromText(req.Prompt))

	return []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
}

// extractText returns the text of the first candidate that has any
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response from model")
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" {
				b.WriteString(part.Text)
			}
		}
		if b.Len() > 0 {
			return b.String(), nil
		}
	}
	return "", fmt.Errorf("no text generated by model")
}

// withRetry runs fn up to attempts+1 times with linear backoff
func withRetry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error) error {
	if attempts < 0 {
		attempts = 0
	}

	var err error
	for attempt := 0; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt == attempts || ctx.Err() != nil {
			break
		}

		backoff := time.Duration(attempt+1) * delay
		log.Warn().Int("attempt", attempt+1).Dur("backoff", backoff).Err(err).Msg("Retrying model call")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return err
}
