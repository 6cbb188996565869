package models

import "time"

// JobsResponse represents a list of jobs returned by search endpoints
type JobsResponse struct {
	Jobs      []Job  `json:"jobs"`
	Total     int    `json:"total"`
	RequestID string `json:"request_id"`
}

// FilterOptionsResponse lists the labels and bounds a search form can offer
type FilterOptionsResponse struct {
	ExperienceLevels []string       `json:"experience_levels"`
	JobTypes         []string       `json:"job_types"`
	SalaryRange      []int          `json:"salary_range"`
	Defaults         FilterCriteria `json:"defaults"`
}

// MatchResponse represents the result of matching skills against the catalog
type MatchResponse struct {
	Jobs      []Job  `json:"jobs"`
	Total     int    `json:"total"`
	RequestID string `json:"request_id"`
}

// AsyncResponse is returned when work is handed to the background task manager
type AsyncResponse struct {
	ProcessID string    `json:"process_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SavedJobsResponse lists the jobs a user has saved
type SavedJobsResponse struct {
	UserID string     `json:"user_id"`
	Jobs   []SavedJob `json:"jobs"`
	Total  int        `json:"total"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
