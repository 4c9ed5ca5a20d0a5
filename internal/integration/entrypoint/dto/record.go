package dto

// CompleteTrackerRequest represents the request body for marking a
// tracker complete on a day. Date uses the "2006-01-02" layout.
type CompleteTrackerRequest struct {
	Date string `json:"date" binding:"required"`
}

// StatisticsResponse represents the statistics view payload.
type StatisticsResponse struct {
	CompletedTrackers int `json:"completed_trackers"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
