package types

// AnalyzeVideoRequest asks for a summary of a video
type AnalyzeVideoRequest struct {
	YoutubeURL string `json:"youtube_url" binding:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// ChatRequest is a free-form query about a video
type ChatRequest struct {
	VideoURL string `json:"video_url" binding:"required" example:"https://youtu.be/dQw4w9WgXcQ"`
	Query    string `json:"query" binding:"required" example:"What is the main topic?"`
}

// TimestampsRequest asks for navigable timestamps of a video
type TimestampsRequest struct {
	VideoURL string `json:"video_url" binding:"required" example:"https://youtu.be/dQw4w9WgXcQ"`
}

// AskQuestionRequest is a question answered from the transcript
type AskQuestionRequest struct {
	VideoURL string `json:"video_url" binding:"required" example:"https://youtu.be/dQw4w9WgXcQ"`
	Question string `json:"question" binding:"required" example:"When does the demo start?"`
}

// GenerateEmbeddingsRequest asks for a video's scenes to be described and indexed
type GenerateEmbeddingsRequest struct {
	YoutubeURL string `json:"youtube_url" binding:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// VisualSearchRequest searches the indexed scenes of a video
type VisualSearchRequest struct {
	YoutubeURL  string `json:"youtube_url" binding:"required" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	SearchQuery string `json:"search_query" binding:"required" example:"a red car"`
	TopK        int    `json:"top_k,omitempty" binding:"omitempty,min=1,max=50" example:"3"`
}
