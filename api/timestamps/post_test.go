package timestamps

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/models"
	tsvc "github.com/killallgit/videomind-api/internal/services/timestamps"
	"github.com/killallgit/videomind-api/internal/services/videos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVideoService struct {
	types.VideoService
	timestampsFunc func(ctx context.Context, videoURL string) (*videos.TimestampList, error)
}

func (m *mockVideoService) Timestamps(ctx context.Context, videoURL string) (*videos.TimestampList, error) {
	return m.timestampsFunc(ctx, videoURL)
}

func TestPost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		body            string
		list            *videos.TimestampList
		expectedStatus  int
		expectedCount   int
		expectedMessage string
	}{
		{
			name: "transcript timestamps",
			body: `{"video_url":"https://youtu.be/abc123"}`,
			list: &videos.TimestampList{
				VideoID: "abc123",
				Source:  videos.SourceTranscript,
				Result: &tsvc.Result{
					Strategy: tsvc.StrategyStructured,
					Timestamps: []models.Timestamp{
						{Time: "00:00", Description: "Intro", Seconds: 0},
						{Time: "01:30", Description: "Demo", Seconds: 90},
					},
				},
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "video timestamps carry a message",
			body: `{"video_url":"https://youtu.be/abc123"}`,
			list: &videos.TimestampList{
				VideoID: "abc123",
				Source:  videos.SourceVideo,
				Result: &tsvc.Result{
					Strategy:   tsvc.StrategyFallback,
					Timestamps: []models.Timestamp{{Time: "00:10", Description: "Title", Seconds: 10}},
				},
			},
			expectedStatus:  http.StatusOK,
			expectedCount:   1,
			expectedMessage: videoSourceMessage,
		},
		{
			name: "empty extraction is still a success",
			body: `{"video_url":"https://youtu.be/abc123"}`,
			list: &videos.TimestampList{
				VideoID: "abc123",
				Source:  videos.SourceTranscript,
				Result:  &tsvc.Result{Strategy: tsvc.StrategyEmpty},
			},
			expectedStatus:  http.StatusOK,
			expectedCount:   0,
			expectedMessage: emptyMessage,
		},
		{
			name:           "wrong field name",
			body:           `{"youtube_url":"https://youtu.be/abc123"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVideoService{timestampsFunc: func(ctx context.Context, videoURL string) (*videos.TimestampList, error) {
				return tt.list, nil
			}}
			deps := &types.Dependencies{VideoService: svc}

			router := gin.New()
			RegisterRoutes(&router.RouterGroup, deps)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/timestamps", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp types.TimestampsResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.NotNil(t, resp.Timestamps)
			assert.Len(t, resp.Timestamps, tt.expectedCount)
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}
