package filter

import (
	"strings"

	"jobright-api/pkg/models"
)

// FilterListings applies the listing filter: location and experience are
// case-insensitive substrings, salary is a plain substring and skills match
// when any required skill is contained in any job skill.
func FilterListings(jobs []models.Job, f models.ListingFilter) []models.Job {
	return keep(jobs, func(job models.Job) bool {
		if f.Location != "" && !containsFold(job.Location, strings.ToLower(f.Location)) {
			return false
		}

		if f.Experience != "" && !containsFold(job.Experience, strings.ToLower(f.Experience)) {
			return false
		}

		if f.Salary != "" && !strings.Contains(job.Salary, f.Salary) {
			return false
		}

		if len(f.Skills) > 0 {
			hasSkill := false
			for _, skill := range f.Skills {
				if anySkillContains(job.Skills, strings.ToLower(skill)) {
					hasSkill = true
					break
				}
			}
			if !hasSkill {
				return false
			}
		}

		return true
	})
}
