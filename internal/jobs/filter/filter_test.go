package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobright-api/pkg/models"
)

func sampleJobs() []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Frontend Developer",
			Company:     "Tech Solutions Inc.",
			Location:    "San Francisco, CA",
			Salary:      "$80k - $120k",
			Experience:  "3-5 years",
			Skills:      []string{"React", "TypeScript"},
			Description: "Build user interfaces for enterprise applications.",
		},
		{
			ID:          "2",
			Title:       "Data Engineer",
			Company:     "Analytics Inc.",
			Location:    "Remote",
			Salary:      "$90k - $130k",
			Experience:  "2-4 years",
			Skills:      []string{"Python"},
			Description: "Pipelines and warehousing.",
		},
		{
			ID:          "3",
			Title:       "Support Specialist",
			Company:     "Helpdesk Co",
			Location:    "Austin, TX",
			Salary:      "Competitive",
			Experience:  "Entry",
			Skills:      []string{"ReactNative", "Zendesk"},
			Description: "Join a fully remote team helping customers. Part-time friendly.",
		},
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestFilterByQuery_BlankIsIdentity(t *testing.T) {
	jobs := sampleJobs()
	for _, q := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, jobs, FilterByQuery(jobs, q), "query %q", q)
	}
}

func TestFilterByQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "location or description", query: "remote", want: []string{"2", "3"}},
		{name: "title case insensitive", query: "FRONTEND", want: []string{"1"}},
		{name: "company", query: "analytics", want: []string{"2"}},
		{name: "skill substring", query: "react", want: []string{"1", "3"}},
		{name: "no match", query: "kubernetes", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByQuery(sampleJobs(), tt.query)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterByQuery_DoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	before := sampleJobs()
	_ = FilterByQuery(jobs, "developer")
	_ = ApplyFilters(jobs, models.FilterCriteria{Keyword: "data", Skills: []string{"python"}})
	assert.Equal(t, before, jobs)
}

func TestApplyFilters_AllSentinelsIsNoop(t *testing.T) {
	jobs := sampleJobs()
	c := DefaultCriteria()
	require.True(t, IsNoop(c))
	assert.Equal(t, jobs, ApplyFilters(jobs, c))
}

func TestApplyFilters_ZeroCriteriaIsNoop(t *testing.T) {
	jobs := sampleJobs()
	assert.True(t, IsNoop(models.FilterCriteria{}))
	assert.Equal(t, jobs, ApplyFilters(jobs, models.FilterCriteria{}))
}

func TestApplyFilters_Stages(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *models.FilterCriteria)
		want   []string
	}{
		{
			name:   "keyword matches skill substring",
			modify: func(c *models.FilterCriteria) { c.Keyword = "react" },
			want:   []string{"1", "3"},
		},
		{
			name:   "keyword ignores location",
			modify: func(c *models.FilterCriteria) { c.Keyword = "austin" },
			want:   []string{},
		},
		{
			name:   "location",
			modify: func(c *models.FilterCriteria) { c.Location = "CA" },
			want:   []string{"1"},
		},
		{
			name:   "associate maps to 2-4 years",
			modify: func(c *models.FilterCriteria) { c.ExperienceLevel = "Associate" },
			want:   []string{"2"},
		},
		{
			name:   "entry level strips Level",
			modify: func(c *models.FilterCriteria) { c.ExperienceLevel = "Entry Level" },
			want:   []string{"3"},
		},
		{
			name:   "experience is case sensitive",
			modify: func(c *models.FilterCriteria) { c.ExperienceLevel = "entry" },
			want:   []string{},
		},
		{
			name:   "job type in description",
			modify: func(c *models.FilterCriteria) { c.JobType = "Part-time" },
			want:   []string{"3"},
		},
		{
			name:   "job type in title",
			modify: func(c *models.FilterCriteria) { c.JobType = "developer" },
			want:   []string{"1"},
		},
		{
			name:   "skills exact case insensitive",
			modify: func(c *models.FilterCriteria) { c.Skills = []string{"react"} },
			want:   []string{"1"},
		},
		{
			name:   "skills any of",
			modify: func(c *models.FilterCriteria) { c.Skills = []string{"python", "zendesk"} },
			want:   []string{"2", "3"},
		},
		{
			name:   "salary overlap keeps unparsable",
			modify: func(c *models.FilterCriteria) { c.SalaryRange = []int{125, 200} },
			want:   []string{"2", "3"},
		},
		{
			name:   "salary range wrong length is inactive",
			modify: func(c *models.FilterCriteria) { c.SalaryRange = []int{500} },
			want:   []string{"1", "2", "3"},
		},
		{
			name: "conjunction",
			modify: func(c *models.FilterCriteria) {
				c.Keyword = "inc"
				c.Location = "remote"
			},
			want: []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCriteria()
			tt.modify(&c)
			assert.Equal(t, tt.want, ids(ApplyFilters(sampleJobs(), c)))
		})
	}
}

func TestApplyFilters_SalaryOverlap(t *testing.T) {
	job := []models.Job{{ID: "x", Salary: "$90k - $130k"}}

	tests := []struct {
		rng  []int
		keep bool
	}{
		{rng: []int{100, 120}, keep: true},
		{rng: []int{0, 90}, keep: true},
		{rng: []int{130, 200}, keep: true},
		{rng: []int{0, 80}, keep: false},
		{rng: []int{140, 200}, keep: false},
	}

	for _, tt := range tests {
		c := DefaultCriteria()
		c.SalaryRange = tt.rng
		got := ApplyFilters(job, c)
		if tt.keep {
			assert.Len(t, got, 1, "range %v", tt.rng)
		} else {
			assert.Empty(t, got, "range %v", tt.rng)
		}
	}
}

func TestApplyFilters_SalaryFailOpen(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Salary: "Competitive"},
		{ID: "b", Salary: "$120,000 - $150,000"},
		{ID: "c", Salary: ""},
	}
	for _, rng := range [][]int{{0, 1}, {199, 200}, {50, 60}} {
		c := DefaultCriteria()
		c.SalaryRange = rng
		assert.Equal(t, []string{"a", "b", "c"}, ids(ApplyFilters(jobs, c)))
	}
}

func TestApplyFilters_SkillsNoSubstring(t *testing.T) {
	jobs := []models.Job{
		{ID: "a", Skills: []string{"react", "Node.js"}},
		{ID: "b", Skills: []string{"ReactNative"}},
		{ID: "c"},
	}
	c := DefaultCriteria()
	c.Skills = []string{"React"}
	assert.Equal(t, []string{"a"}, ids(ApplyFilters(jobs, c)))
}

func TestApplyFilters_EndToEnd(t *testing.T) {
	jobs := []models.Job{
		{ID: "1", Skills: []string{"React", "TypeScript"}, Salary: "$80k - $120k", Location: "San Francisco, CA"},
		{ID: "2", Skills: []string{"Python"}, Salary: "$90k - $130k", Location: "Remote"},
	}
	c := models.FilterCriteria{
		ExperienceLevel: models.AllLevels,
		JobType:         models.AllTypes,
		SalaryRange:     []int{100, 150},
		Skills:          []string{"React"},
	}

	got := ApplyFilters(jobs, c)
	require.Len(t, got, 1)
	assert.Equal(t, jobs[0], got[0])
}

func TestApplyFilters_Subsequence(t *testing.T) {
	jobs := sampleJobs()
	criteria := []models.FilterCriteria{
		{Keyword: "e"},
		{Location: "a"},
		{Skills: []string{"python", "react"}},
		{SalaryRange: []int{85, 125}},
	}

	for _, c := range criteria {
		got := ApplyFilters(jobs, c)
		i := 0
		for _, j := range jobs {
			if i < len(got) && got[i].ID == j.ID {
				i++
			}
		}
		assert.Equal(t, len(got), i, "result is not an ordered subsequence for %+v", c)
	}
}

func TestNormalizeExperienceLevel(t *testing.T) {
	assert.Equal(t, "Entry", NormalizeExperienceLevel("Entry Level"))
	assert.Equal(t, "2-4 years", NormalizeExperienceLevel("Associate"))
	assert.Equal(t, "Mid-Level", NormalizeExperienceLevel("Mid-Level"))
	assert.Equal(t, "Senior", NormalizeExperienceLevel("Senior"))
}

func TestIsNoop(t *testing.T) {
	c := DefaultCriteria()
	c.Skills = []string{"Go"}
	assert.False(t, IsNoop(c))

	c = DefaultCriteria()
	c.SalaryRange = []int{0, 150}
	assert.False(t, IsNoop(c))
}
