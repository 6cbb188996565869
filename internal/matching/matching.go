// Package matching scores jobs against a candidate's skills.
package matching

import (
	"math"
	"sort"
	"strings"

	"jobright-api/pkg/models"
)

// KeywordMatch reports how many jobs mention one resume skill
type KeywordMatch struct {
	Keyword   string `json:"keyword"`
	Count     int    `json:"count"`
	Important bool   `json:"important"`
}

// Score returns the rounded percentage of jobSkills present in resumeSkills.
// Comparison is case-insensitive on whole names. A job without skills scores 0.
func Score(resumeSkills, jobSkills []string) int {
	if len(jobSkills) == 0 {
		return 0
	}

	have := skillSet(resumeSkills)
	hits := 0
	for _, s := range jobSkills {
		if _, ok := have[normalize(s)]; ok {
			hits++
		}
	}

	return int(math.Round(float64(hits) * 100 / float64(len(jobSkills))))
}

// Annotate returns copies of jobs with their match percentage against resume.
// A nil resume scores every job 0.
func Annotate(jobs []models.Job, resume *models.ParsedResume) []models.Job {
	skills := resume.SkillNames()
	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.WithMatch(Score(skills, j.Skills)))
	}
	return out
}

// Rank sorts jobs in place by match percentage, highest first, keeping the
// relative order of equal scores
func Rank(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, k int) bool {
		return jobs[i].Match() > jobs[k].Match()
	})
}

// MatchJobs returns annotated copies of the jobs that share at least one skill
// with skills, ranked by score
func MatchJobs(skills []string, jobs []models.Job) []models.Job {
	have := skillSet(skills)
	out := make([]models.Job, 0)
	for _, j := range jobs {
		for _, s := range j.Skills {
			if _, ok := have[normalize(s)]; ok {
				out = append(out, j.WithMatch(Score(skills, j.Skills)))
				break
			}
		}
	}
	Rank(out)
	return out
}

// KeywordMatches counts, for each resume skill, the jobs whose skills mention it.
// A keyword is important when at least half of the jobs mention it.
func KeywordMatches(resume *models.ParsedResume, jobs []models.Job) []KeywordMatch {
	names := resume.SkillNames()
	out := make([]KeywordMatch, 0, len(names))
	for _, name := range names {
		count := 0
		for _, j := range jobs {
			if mentions(j.Skills, name) {
				count++
			}
		}
		out = append(out, KeywordMatch{
			Keyword:   name,
			Count:     count,
			Important: len(jobs) > 0 && count*2 >= len(jobs),
		})
	}
	return out
}

// ScoreLabel describes a match score in words
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Average"
	default:
		return "Needs Improvement"
	}
}

func mentions(jobSkills []string, skill string) bool {
	want := normalize(skill)
	for _, s := range jobSkills {
		if normalize(s) == want {
			return true
		}
	}
	return false
}

func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[normalize(s)] = struct{}{}
	}
	return set
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
