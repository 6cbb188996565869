// Package filter narrows job lists by free-text query or by a set of
// filter criteria. Every function is pure: inputs are never modified and
// results preserve the relative order of the input.
package filter

import (
	"strings"

	"jobright-api/pkg/models"
)

// Stage is a single predicate applied by ApplyFilters. Active reports
// whether the stage constrains anything for the given criteria.
type Stage struct {
	Name   string
	Active func(c models.FilterCriteria) bool
	Keep   func(job models.Job, c models.FilterCriteria) bool
}

// Stages lists the filter stages in the order ApplyFilters runs them.
var Stages = []Stage{
	{Name: "keyword", Active: keywordActive, Keep: matchKeyword},
	{Name: "location", Active: locationActive, Keep: matchLocation},
	{Name: "experience", Active: experienceActive, Keep: matchExperience},
	{Name: "job_type", Active: jobTypeActive, Keep: matchJobType},
	{Name: "skills", Active: skillsActive, Keep: matchSkills},
	{Name: "salary", Active: salaryActive, Keep: matchSalary},
}

// DefaultCriteria returns criteria with every field at its "no constraint" value
func DefaultCriteria() models.FilterCriteria {
	return models.FilterCriteria{
		ExperienceLevel: models.AllLevels,
		JobType:         models.AllTypes,
		SalaryRange:     []int{models.SalaryRangeFloor, models.SalaryRangeCeiling},
		Skills:          []string{},
	}
}

// IsNoop reports whether no stage would constrain the result
func IsNoop(c models.FilterCriteria) bool {
	for _, s := range Stages {
		if s.Active(c) {
			return false
		}
	}
	return true
}

// FilterByQuery keeps jobs where the query is a case-insensitive substring of
// the title, company, location, description or any skill. A blank query
// returns the input unchanged.
func FilterByQuery(jobs []models.Job, query string) []models.Job {
	if strings.TrimSpace(query) == "" {
		return jobs
	}

	q := strings.ToLower(query)
	return keep(jobs, func(job models.Job) bool {
		return containsFold(job.Title, q) ||
			containsFold(job.Company, q) ||
			containsFold(job.Location, q) ||
			containsFold(job.Description, q) ||
			anySkillContains(job.Skills, q)
	})
}

// ApplyFilters runs every active stage in order, each narrowing the
// candidates left by the previous one.
func ApplyFilters(jobs []models.Job, c models.FilterCriteria) []models.Job {
	result := keep(jobs, func(models.Job) bool { return true })

	for _, s := range Stages {
		if !s.Active(c) {
			continue
		}
		result = keep(result, func(job models.Job) bool {
			return s.Keep(job, c)
		})
	}

	return result
}

func keywordActive(c models.FilterCriteria) bool { return c.Keyword != "" }

func matchKeyword(job models.Job, c models.FilterCriteria) bool {
	k := strings.ToLower(c.Keyword)
	return containsFold(job.Title, k) ||
		containsFold(job.Company, k) ||
		containsFold(job.Description, k) ||
		anySkillContains(job.Skills, k)
}

func locationActive(c models.FilterCriteria) bool { return c.Location != "" }

func matchLocation(job models.Job, c models.FilterCriteria) bool {
	return containsFold(job.Location, strings.ToLower(c.Location))
}

func experienceActive(c models.FilterCriteria) bool {
	return c.ExperienceLevel != "" && c.ExperienceLevel != models.AllLevels
}

// matchExperience maps the UI label onto the free-text experience field.
// The comparison is case-sensitive.
func matchExperience(job models.Job, c models.FilterCriteria) bool {
	return strings.Contains(job.Experience, NormalizeExperienceLevel(c.ExperienceLevel))
}

// NormalizeExperienceLevel turns an experience label into the substring
// looked for in a job's experience text.
func NormalizeExperienceLevel(label string) string {
	label = strings.Replace(label, " Level", "", 1)
	return strings.Replace(label, "Associate", "2-4 years", 1)
}

func jobTypeActive(c models.FilterCriteria) bool {
	return c.JobType != "" && c.JobType != models.AllTypes
}

func matchJobType(job models.Job, c models.FilterCriteria) bool {
	t := strings.ToLower(c.JobType)
	return containsFold(job.Title, t) || containsFold(job.Description, t)
}

func skillsActive(c models.FilterCriteria) bool { return len(c.Skills) > 0 }

// matchSkills keeps a job when any required skill equals any of its tags,
// ignoring case. Substrings do not count.
func matchSkills(job models.Job, c models.FilterCriteria) bool {
	for _, required := range c.Skills {
		for _, have := range job.Skills {
			if strings.EqualFold(have, required) {
				return true
			}
		}
	}
	return false
}

func salaryActive(c models.FilterCriteria) bool {
	if len(c.SalaryRange) != 2 {
		return false
	}
	return !(c.SalaryRange[0] == models.SalaryRangeFloor && c.SalaryRange[1] == models.SalaryRangeCeiling)
}

func matchSalary(job models.Job, c models.FilterCriteria) bool {
	jobMin, jobMax, ok := ParseSalaryRange(job.Salary)
	if !ok {
		return true
	}
	return jobMin <= c.SalaryRange[1] && jobMax >= c.SalaryRange[0]
}

func keep(jobs []models.Job, pred func(models.Job) bool) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if pred(job) {
			out = append(out, job)
		}
	}
	return out
}

// containsFold reports whether lowerNeedle occurs in s ignoring case.
// lowerNeedle must already be lower-cased.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func anySkillContains(skills []string, lowerNeedle string) bool {
	for _, skill := range skills {
		if containsFold(skill, lowerNeedle) {
			return true
		}
	}
	return false
}
