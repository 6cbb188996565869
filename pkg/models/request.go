package models

// SaveJobRequest represents the request payload for bookmarking a job
type SaveJobRequest struct {
	JobID string `json:"job_id" validate:"required,max=64"`
}

// MatchRequest represents the request payload for skill based matching
type MatchRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required,max=100"`
}
