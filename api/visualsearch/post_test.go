package visualsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/videomind-api/api/types"
	"github.com/killallgit/videomind-api/internal/models"
	searchsvc "github.com/killallgit/videomind-api/internal/services/visualsearch"
	"github.com/killallgit/videomind-api/internal/services/videos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVideoService struct {
	types.VideoService
	gotTopK int
	result  *videos.SearchResults
	err     error
}

func (m *mockVideoService) VisualSearch(ctx context.Context, videoURL, query string, topK int) (*videos.SearchResults, error) {
	m.gotTopK = topK
	return m.result, m.err
}

func TestPost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		svc            *mockVideoService
		expectedStatus int
		expectedTopK   int
	}{
		{
			name: "ranked results",
			body: `{"youtube_url":"https://youtu.be/abc123","search_query":"red car","top_k":2}`,
			svc: &mockVideoService{result: &videos.SearchResults{
				VideoID: "abc123",
				Query:   "red car",
				Results: []models.VisualSearchResult{
					{Timestamp: 30, Description: "A red car", SimilarityScore: 0.91},
					{Timestamp: 5, Description: "A road", SimilarityScore: 0.42},
				},
			}},
			expectedStatus: http.StatusOK,
			expectedTopK:   2,
		},
		{
			name:           "default top k is passed as zero",
			body:           `{"youtube_url":"https://youtu.be/abc123","search_query":"red car"}`,
			svc:            &mockVideoService{result: &videos.SearchResults{VideoID: "abc123", Query: "red car"}},
			expectedStatus: http.StatusOK,
			expectedTopK:   0,
		},
		{
			name:           "not indexed",
			body:           `{"youtube_url":"https://youtu.be/abc123","search_query":"red car"}`,
			svc:            &mockVideoService{err: fmt.Errorf("%w: abc123", searchsvc.ErrNotIndexed)},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "top k out of range",
			body:           `{"youtube_url":"https://youtu.be/abc123","search_query":"red car","top_k":500}`,
			svc:            &mockVideoService{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing query",
			body:           `{"youtube_url":"https://youtu.be/abc123"}`,
			svc:            &mockVideoService{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			RegisterRoutes(&router.RouterGroup, &types.Dependencies{VideoService: tt.svc})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/perform_visual_search", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp types.VisualSearchResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, "red car", resp.SearchQuery)
			assert.NotNil(t, resp.Results)
			assert.Equal(t, tt.expectedTopK, tt.svc.gotTopK)
		})
	}
}
