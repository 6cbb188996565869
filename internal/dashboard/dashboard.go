// Package dashboard assembles the per-user overview.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/matching"
	"jobright-api/internal/storage"
	"jobright-api/pkg/models"
)

// RecommendationCount is how many catalog jobs the dashboard recommends
const RecommendationCount = 3

// CategoryCount is the number of resume skills in one category
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Summary is the dashboard payload
type Summary struct {
	UserID          string                  `json:"user_id"`
	CatalogJobs     int                     `json:"catalog_jobs"`
	MatchingJobs    int                     `json:"matching_jobs"`
	SavedJobs       int                     `json:"saved_jobs"`
	HasResume       bool                    `json:"has_resume"`
	ResumeSkills    int                     `json:"resume_skills"`
	AverageMatch    int                     `json:"average_match"`
	ScoreLabel      string                  `json:"score_label"`
	Recommended     []models.Job            `json:"recommended"`
	SkillCategories []CategoryCount         `json:"skill_categories"`
	KeywordMatches  []matching.KeywordMatch `json:"keyword_matches"`
	GeneratedAt     time.Time               `json:"generated_at"`
}

// Service builds summaries from the store and the catalog
type Service struct {
	store   storage.Store
	catalog *catalog.Catalog
}

func New(store storage.Store, cat *catalog.Catalog) *Service {
	return &Service{store: store, catalog: cat}
}

// Build returns the dashboard for userID. A user without a resume gets zero
// match figures and the first catalog jobs as recommendations.
func (s *Service) Build(ctx context.Context, userID string) (*Summary, error) {
	saved, err := s.store.ListSavedJobs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved jobs: %w", err)
	}

	resume, err := s.store.GetResume(ctx, userID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	jobs := s.catalog.List()
	summary := &Summary{
		UserID:          userID,
		CatalogJobs:     len(jobs),
		SavedJobs:       len(saved),
		SkillCategories: make([]CategoryCount, 0),
		KeywordMatches:  make([]matching.KeywordMatch, 0),
		GeneratedAt:     time.Now().UTC(),
	}

	if resume == nil {
		summary.Recommended = head(jobs, RecommendationCount)
		summary.ScoreLabel = matching.ScoreLabel(0)
		return summary, nil
	}

	skills := resume.SkillNames()
	summary.HasResume = true
	summary.ResumeSkills = len(skills)
	summary.SkillCategories = categories(resume.Skills)
	summary.KeywordMatches = matching.KeywordMatches(resume, jobs)

	annotated := matching.Annotate(jobs, resume)
	for _, j := range annotated {
		if j.Match() > 0 {
			summary.MatchingJobs++
		}
	}
	matching.Rank(annotated)
	summary.Recommended = head(annotated, RecommendationCount)

	if len(saved) > 0 {
		total := 0
		for _, sj := range saved {
			total += matching.Score(skills, sj.Job.Skills)
		}
		summary.AverageMatch = int(math.Round(float64(total) / float64(len(saved))))
	}
	summary.ScoreLabel = matching.ScoreLabel(summary.AverageMatch)

	return summary, nil
}

func head(jobs []models.Job, n int) []models.Job {
	if len(jobs) < n {
		n = len(jobs)
	}
	out := make([]models.Job, n)
	copy(out, jobs[:n])
	return out
}

// categories counts skills per category, largest first, ties by name
func categories(skills []models.Skill) []CategoryCount {
	counts := make(map[string]int)
	for _, s := range skills {
		counts[s.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}
