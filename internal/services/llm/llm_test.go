package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestWithRetry(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), 3, time.Millisecond, func(ctx context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after attempts", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), 2, time.Millisecond, func(ctx context.Context) error {
			calls++
			return errors.New("permanent")
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops when context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := withRetry(ctx, 5, time.Millisecond, func(ctx context.Context) error {
			calls++
			cancel()
			return context.Canceled
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestExtractText(t *testing.T) {
	t.Run("joins parts of first candidate with text", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: ""}}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "hello "}, {Text: "world"}}}},
			},
		}
		text, err := extractText(resp)
		require.NoError(t, err)
		assert.Equal(t, "hello world", text)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := extractText(nil)
		assert.Error(t, err)
	})

	t.Run("no text", func(t *testing.T) {
		_, err := extractText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}})
		assert.Error(t, err)
	})
}

func TestBuildContents(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		contents := buildContents(Request{Prompt: "summarize"})
		require.Len(t, contents, 1)
		require.Len(t, contents[0].Parts, 1)
		assert.Equal(t, "summarize", contents[0].Parts[0].Text)
		assert.Equal(t, genai.RoleUser, contents[0].Role)
	})

	t.Run("video part comes first", func(t *testing.T) {
		contents := buildContents(Request{Prompt: "summarize", VideoURL: "https://youtu.be/abc123"})
		require.Len(t, contents[0].Parts, 2)
		require.NotNil(t, contents[0].Parts[0].FileData)
		assert.Equal(t, "https://youtu.be/abc123", contents[0].Parts[0].FileData.FileURI)
		assert.Equal(t, "summarize", contents[0].Parts[1].Text)
	})
}

func TestUpstreamError(t *testing.T) {
	t.Run("deadline is retryable", func(t *testing.T) {
		err := NewUpstreamError("gemini", "generate", fmt.Errorf("call: %w", context.DeadlineExceeded))
		assert.ErrorIs(t, err, ErrUpstream)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, IsRetryable(err))
		assert.Contains(t, err.Error(), "retryable")
	})

	t.Run("other errors are not retryable", func(t *testing.T) {
		err := NewUpstreamError("gemini", "generate", errors.New("bad request"))
		assert.ErrorIs(t, err, ErrUpstream)
		assert.False(t, IsRetryable(err))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewUpstreamError("gemini", "generate", nil))
	})

	t.Run("does not double wrap", func(t *testing.T) {
		inner := NewUpstreamError("openai", "embed", errors.New("boom"))
		outer := NewUpstreamError("gemini", "generate", inner)
		var upstream *UpstreamError
		require.ErrorAs(t, outer, &upstream)
		assert.Equal(t, "openai", upstream.Service)
	})
}

func TestNewGeminiServiceRequiresKey(t *testing.T) {
	_, err := NewGeminiService(context.Background(), GeminiConfig{})
	assert.Error(t, err)
}

func TestOpenAIEmbedder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"object":"embedding","index":0,"embedding":[0.5,0.25,1]}],"model":"text-embedding-3-small","usage":{"prompt_tokens":2,"total_tokens":2}}`))
	}))
	defer server.Close()

	embedder, err := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	vector, err := embedder.Embed(context.Background(), "a cat on a sofa")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.25, 1}, vector)

	_, err = embedder.Embed(context.Background(), "   ")
	assert.Error(t, err)
}

func TestOpenAIEmbedderUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	embedder, err := NewOpenAIEmbedder(OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)

	_, err = embedder.Embed(context.Background(), "text")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestNewOpenAIEmbedderRequiresKey(t *testing.T) {
	_, err := NewOpenAIEmbedder(OpenAIConfig{})
	assert.Error(t, err)
}

func TestUnavailable(t *testing.T) {
	u := Unavailable{Service: "gemini", Reason: errors.New("no API key configured")}

	_, err := u.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "no API key configured")
	assert.False(t, IsRetryable(err))

	_, err = u.Embed(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrUpstream)
}
