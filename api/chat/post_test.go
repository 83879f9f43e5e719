package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/services/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVideoService struct {
	types.VideoService
	chatFunc func(ctx context.Context, videoURL, query string) (string, error)
}

func (m *mockVideoService) Chat(ctx context.Context, videoURL, query string) (string, error) {
	return m.chatFunc(ctx, videoURL, query)
}

func TestPost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		chatFunc       func(ctx context.Context, videoURL, query string) (string, error)
		expectedStatus int
		expectedReply  string
	}{
		{
			name: "successful chat",
			body: `{"video_url":"https://youtu.be/abc123","query":"what is shown?"}`,
			chatFunc: func(ctx context.Context, videoURL, query string) (string, error) {
				return "A kitchen. You asked: " + query, nil
			},
			expectedStatus: http.StatusOK,
			expectedReply:  "A kitchen. You asked: what is shown?",
		},
		{
			name:           "missing query",
			body:           `{"video_url":"https://youtu.be/abc123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "upstream failure",
			body: `{"video_url":"https://youtu.be/abc123","query":"q"}`,
			chatFunc: func(ctx context.Context, videoURL, query string) (string, error) {
				return "", llm.NewUpstreamError("gemini", "generate", errors.New("unavailable"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := &types.Dependencies{VideoService: &mockVideoService{chatFunc: tt.chatFunc}}

			router := gin.New()
			RegisterRoutes(&router.RouterGroup, deps)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp types.ChatResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedReply, resp.Response)
			}
		})
	}
}
