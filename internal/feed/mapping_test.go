package feed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapListing_Defaults(t *testing.T) {
	job := MapListing(map[string]interface{}{})

	assert.True(t, strings.HasPrefix(job.ID, "job-"))
	assert.Equal(t, "Unknown Position", job.Title)
	assert.Equal(t, "Unknown Company", job.Company)
	assert.Equal(t, "Remote", job.Location)
	assert.Equal(t, "$40,000 - $80,000", job.Salary)
	assert.Equal(t, "Not specified", job.Experience)
	assert.Equal(t, "No description provided", job.Description)
	assert.Equal(t, "Recently", job.PostedDate)
	assert.Equal(t, []string{"Not specified"}, job.Skills)
	assert.Equal(t, "JobRight", job.Source)
	assert.Empty(t, job.LogoURL)
}

func TestMapListing_AlternativeKeys(t *testing.T) {
	job := MapListing(map[string]interface{}{
		"id":               float64(42),
		"position_title":   "Platform Engineer",
		"company":          "Acme",
		"job_city":         "Berlin",
		"salary_range":     "$90k - $110k",
		"experience_level": "Senior",
		"date_posted":      "yesterday",
		"required_skills":  []interface{}{"Go", 7, "Terraform"},
		"logo_url":         "https://acme.example/logo.svg",
		"source":           "Indeed",
	})

	assert.Equal(t, "42", job.ID)
	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Berlin", job.Location)
	assert.Equal(t, "$90k - $110k", job.Salary)
	assert.Equal(t, "Senior", job.Experience)
	assert.Equal(t, "yesterday", job.PostedDate)
	assert.Equal(t, []string{"Go", "Terraform"}, job.Skills)
	assert.Equal(t, "https://acme.example/logo.svg", job.LogoURL)
	assert.Equal(t, "Indeed", job.Source)
}

func TestMapListing_PrimaryKeyWins(t *testing.T) {
	job := MapListing(map[string]interface{}{
		"title":          "Primary",
		"position_title": "Secondary",
		"skills":         []interface{}{},
	})
	assert.Equal(t, "Primary", job.Title)
	assert.Equal(t, []string{}, job.Skills)
}

func TestMapListings(t *testing.T) {
	jobs := MapListings([]map[string]interface{}{{"id": "a"}, {"id": "b"}})
	assert.Len(t, jobs, 2)
	assert.Equal(t, "b", jobs[1].ID)
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Hello world", StripHTML("<div>Hello</div><div>world</div>"))
	assert.Equal(t, "plain text", StripHTML("  plain \n\n text "))
	assert.Equal(t, "kept", StripHTML("<style>p{}</style><p>kept</p>"))
}

func TestFormatPublicationDate(t *testing.T) {
	assert.Equal(t, "2024-05-01", formatPublicationDate("2024-05-01T10:00:00"))
	assert.Equal(t, "2024-05-01", formatPublicationDate("2024-05-01T10:00:00Z"))
	assert.Equal(t, "Recently", formatPublicationDate(""))
	assert.Equal(t, "someday", formatPublicationDate("someday"))
}
