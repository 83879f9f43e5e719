package llm

import "context"

// Unavailable stands in for a model client that could not be created, for
// example when no API key is configured. Every call fails with an
// UpstreamError wrapping Reason.
type Unavailable struct {
	Service string
	Reason  error
}

func (u Unavailable) Generate(ctx context.Context, req Request) (string, error) {
	return "", NewUpstreamError(u.Service, "generate", u.Reason)
}

func (u Unavailable) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, NewUpstreamError(u.Service, "embed", u.Reason)
}
