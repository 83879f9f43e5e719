package models

// Timestamp is a navigable moment in a video
type Timestamp struct {
	Time        string `json:"time" example:"01:30"`
	Description string `json:"description" example:"Main topic introduced"`
	Seconds     int    `json:"seconds" example:"90"`
}

// SummaryTimestamp is a timestamp tag found inside a generated summary.
// TextPosition is the byte offset of the tag in the summary text.
type SummaryTimestamp struct {
	Time         string `json:"time" example:"02:15"`
	Description  string `json:"description" example:"The speaker compares both approaches"`
	Seconds      int    `json:"seconds" example:"135"`
	TextPosition int    `json:"text_position" example:"412"`
}
