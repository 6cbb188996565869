package feed

import (
	"fmt"
	"strconv"
	"time"

	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

const (
	descriptionLimit = 200
	remotiveSource   = "Remotive"
	defaultSource    = "JobRight"
)

// remotiveResponse is the payload returned by the remote jobs API
type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	ID                        int64    `json:"id"`
	URL                       string   `json:"url"`
	Title                     string   `json:"title"`
	CompanyName               string   `json:"company_name"`
	CompanyLogo               string   `json:"company_logo"`
	CompanyLogoURL            string   `json:"company_logo_url"`
	Category                  string   `json:"category"`
	Tags                      []string `json:"tags"`
	JobType                   string   `json:"job_type"`
	PublicationDate           string   `json:"publication_date"`
	CandidateRequiredLocation string   `json:"candidate_required_location"`
	Salary                    string   `json:"salary"`
	Description               string   `json:"description"`
}

var publicationLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (r remotiveJob) toJob() models.Job {
	skills := r.Tags
	if skills == nil {
		skills = []string{"Not specified"}
	}

	return models.Job{
		ID:          strconv.FormatInt(r.ID, 10),
		Title:       r.Title,
		Company:     r.CompanyName,
		Location:    utils.GetStringOrDefault(r.CandidateRequiredLocation, "Remote"),
		Salary:      "Competitive",
		Experience:  "Not specified",
		Skills:      skills,
		Description: utils.Truncate(StripHTML(r.Description), descriptionLimit) + "...",
		PostedDate:  formatPublicationDate(r.PublicationDate),
		LogoURL:     utils.GetStringOrDefault(r.CompanyLogoURL, r.CompanyLogo),
		Source:      remotiveSource,
	}
}

func formatPublicationDate(raw string) string {
	for _, layout := range publicationLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return utils.GetStringOrDefault(raw, "Recently")
}

// MapListing converts a loosely shaped job object, as found in third party
// exports, into a Job. Alternative key names are tried in order and missing
// fields get placeholder values.
func MapListing(raw map[string]interface{}) models.Job {
	id := stringField(raw, "", "id")
	if id == "" {
		id = utils.GenerateJobID()
	}

	return models.Job{
		ID:          id,
		Title:       stringField(raw, "Unknown Position", "title", "position_title"),
		Company:     stringField(raw, "Unknown Company", "company_name", "company"),
		Location:    stringField(raw, "Remote", "location", "job_location", "job_city"),
		Salary:      stringField(raw, "$40,000 - $80,000", "salary", "salary_range"),
		Experience:  stringField(raw, "Not specified", "experience", "experience_level"),
		Description: stringField(raw, "No description provided", "description"),
		PostedDate:  stringField(raw, "Recently", "posted_date", "date_posted"),
		Skills:      stringListField(raw, []string{"Not specified"}, "skills", "required_skills"),
		LogoURL:     stringField(raw, "", "company_logo_url", "logo_url"),
		Source:      stringField(raw, defaultSource, "source"),
	}
}

// MapListings maps every entry with MapListing
func MapListings(raw []map[string]interface{}) []models.Job {
	jobs := make([]models.Job, 0, len(raw))
	for _, r := range raw {
		jobs = append(jobs, MapListing(r))
	}
	return jobs
}

// stringField returns the first non-empty value found under keys, or def
func stringField(raw map[string]interface{}, def string, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			if v != 0 {
				return strconv.FormatFloat(v, 'f', -1, 64)
			}
		case int:
			if v != 0 {
				return strconv.Itoa(v)
			}
		case int64:
			if v != 0 {
				return strconv.FormatInt(v, 10)
			}
		case nil:
		default:
			return fmt.Sprint(v)
		}
	}
	return def
}

func stringListField(raw map[string]interface{}, def []string, keys ...string) []string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case []string:
			return append([]string(nil), v...)
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return append([]string(nil), def...)
}
