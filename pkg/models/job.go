package models

import "time"

// Job represents a single job posting as served to clients
type Job struct {
	ID              string   `json:"id" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Company         string   `json:"company" validate:"required"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"`
	Experience      string   `json:"experience"`
	Skills          []string `json:"skills"`
	Description     string   `json:"description"`
	PostedDate      string   `json:"posted_date"`
	MatchPercentage *int     `json:"match_percentage,omitempty"`
	Source          string   `json:"source,omitempty"`
	LogoURL         string   `json:"logo_url,omitempty"`
}

// WithMatch returns a copy of the job carrying the given match percentage
func (j Job) WithMatch(percentage int) Job {
	p := percentage
	j.MatchPercentage = &p
	j.Skills = append([]string(nil), j.Skills...)
	return j
}

// Match returns the match percentage or zero when it is not set
func (j Job) Match() int {
	if j.MatchPercentage == nil {
		return 0
	}
	return *j.MatchPercentage
}

// SavedJob is a job bookmarked by a user
type SavedJob struct {
	Job     Job       `json:"job"`
	SavedAt time.Time `json:"saved_at"`
}
