package types

import "github.com/killallgit/videomind-api/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// VideoAnalysisResponse for the analyze endpoint
type VideoAnalysisResponse struct {
	Success           bool                      `json:"success"`
	VideoURL          string                    `json:"video_url"`
	VideoID           string                    `json:"video_id"`
	VideoSummary      string                    `json:"video_summary"`
	SummaryTimestamps []models.SummaryTimestamp `json:"summary_timestamps"`
	HasTranscripts    bool                      `json:"has_transcripts"`
	Message           string                    `json:"message,omitempty"`
}

// ChatResponse for the chat endpoint
type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// TimestampsResponse for the timestamps endpoint
type TimestampsResponse struct {
	Success    bool               `json:"success"`
	Timestamps []models.Timestamp `json:"timestamps"`
	// Source is "transcript" or "video"
	Source   string `json:"source,omitempty" example:"transcript"`
	Strategy string `json:"strategy,omitempty" example:"structured"`
	Message  string `json:"message,omitempty"`
}

// QuestionResponse for the ask_question endpoint
type QuestionResponse struct {
	Success        bool   `json:"success"`
	Answer         string `json:"answer"`
	HasTranscripts bool   `json:"has_transcripts"`
	Message        string `json:"message,omitempty"`
}

// SceneDescription is an indexed scene without its embedding vector
type SceneDescription struct {
	Timestamp   int    `json:"timestamp" example:"42"`
	Time        string `json:"time" example:"00:42"`
	Description string `json:"description" example:"A man opens a laptop"`
}

// VideoEmbeddingResponse for the generate_embeddings endpoint
type VideoEmbeddingResponse struct {
	Success      bool               `json:"success"`
	VideoID      string             `json:"video_id"`
	Descriptions []SceneDescription `json:"descriptions"`
}

// VisualSearchResponse for the perform_visual_search endpoint
type VisualSearchResponse struct {
	Success     bool                        `json:"success"`
	VideoID     string                      `json:"video_id"`
	SearchQuery string                      `json:"search_query"`
	Results     []models.VisualSearchResult `json:"results"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Detail  string      `json:"detail,omitempty"`  // Human-readable diagnostic
	Details interface{} `json:"details,omitempty"` // Additional error details
	// Retryable is set for upstream failures that may succeed on retry
	Retryable bool `json:"retryable,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status           string `json:"status" example:"healthy"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// VersionResponse for the version endpoint
type VersionResponse struct {
	Name      string `json:"name" example:"VideoMind API"`
	Version   string `json:"version" example:"1.0.0"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
}

// BannerResponse for the root endpoint
type BannerResponse struct {
	Message string `json:"message" example:"VIDEOMIND-AI backend is running!"`
}
