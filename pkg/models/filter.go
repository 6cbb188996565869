package models

// Sentinel values meaning "no constraint" for the corresponding filter field
const (
	AllLevels = "All Levels"
	AllTypes  = "All Types"

	SalaryRangeFloor   = 0
	SalaryRangeCeiling = 200
)

// ExperienceLevels lists the experience labels offered to clients
var ExperienceLevels = []string{
	AllLevels,
	"Entry Level",
	"Internship",
	"Associate",
	"Mid-Level",
	"Senior",
	"Director",
	"Executive",
}

// JobTypes lists the job type labels offered to clients
var JobTypes = []string{
	AllTypes,
	"Full-time",
	"Part-time",
	"Contract",
	"Temporary",
	"Internship",
	"Remote",
}

// FilterCriteria is the set of constraints applied by the filter engine.
// SalaryRange holds lower and upper bounds in thousands; any length other
// than two leaves the salary stage inactive.
type FilterCriteria struct {
	Keyword         string   `json:"keyword"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experience_level"`
	JobType         string   `json:"job_type"`
	SalaryRange     []int    `json:"salary_range" validate:"omitempty,salary_range"`
	Skills          []string `json:"skills" validate:"omitempty,dive,max=100"`
}

// ListingFilter is the looser filter used by the listing endpoint
type ListingFilter struct {
	Location   string   `json:"location" query:"location"`
	Experience string   `json:"experience" query:"experience"`
	Salary     string   `json:"salary" query:"salary"`
	Skills     []string `json:"skills" query:"skills"`
}
