package llm

import (
	"context"

	"google.golang.org/genai"
)

// Request is a single prompt to the generative model
type Request struct {
	// Prompt is the text instruction sent to the model
	Prompt string

	// VideoURL, when set, is attached as a video file part so the model can
	// watch the video itself
	VideoURL string

	// Schema, when set, asks the model for JSON matching the schema
	Schema *genai.Schema
}

// Generator produces text from a prompt
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Embedder turns text into an embedding vector
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}
