package models

// VideoDescription is a described scene of a video with its embedding
type VideoDescription struct {
	Timestamp   int       `json:"timestamp" example:"42"`
	Description string    `json:"description" example:"A person writes code on a whiteboard"`
	Embedding   []float32 `json:"embedding"`
}

// VisualSearchResult is a ranked match from the visual similarity index
type VisualSearchResult struct {
	Timestamp       int     `json:"timestamp" example:"42"`
	Description     string  `json:"description" example:"A person writes code on a whiteboard"`
	SimilarityScore float64 `json:"similarity_score" example:"0.87"`
}
