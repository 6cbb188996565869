// Package storage persists saved jobs and parsed resumes per user.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobright-api/internal/config"
	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// ErrNotFound is returned for missing saved jobs and resumes
var ErrNotFound = errors.New("not found")

var errClosed = errors.New("store is closed")

// Store is the persistence contract shared by the memory and Redis backends
type Store interface {
	// SaveJob bookmarks a job and reports whether it was newly saved.
	// Saving twice returns the first entry unchanged.
	SaveJob(ctx context.Context, userID string, job models.Job) (models.SavedJob, bool, error)
	RemoveJob(ctx context.Context, userID, jobID string) error
	// ListSavedJobs returns saved jobs in the order they were saved
	ListSavedJobs(ctx context.Context, userID string) ([]models.SavedJob, error)
	IsSaved(ctx context.Context, userID, jobID string) (bool, error)

	PutResume(ctx context.Context, userID string, resume *models.ParsedResume) error
	GetResume(ctx context.Context, userID string) (*models.ParsedResume, error)

	Ping(ctx context.Context) error
	Close() error
}

// New builds the store selected by storage.backend
func New(cfg *config.Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "", BackendMemory:
		return NewMemoryStore(cfg.Storage.ResumeTTL), nil
	case BackendRedis:
		client := utils.NewRedisClient(cfg)
		return NewRedisStore(client, cfg.Storage.ResumeTTL), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}

func cloneResume(r *models.ParsedResume) *models.ParsedResume {
	if r == nil {
		return nil
	}
	c := *r
	c.Skills = append([]models.Skill(nil), r.Skills...)
	c.Experience = append([]models.Experience(nil), r.Experience...)
	c.Education = append([]models.Education(nil), r.Education...)
	if r.PersonalInfo != nil {
		info := *r.PersonalInfo
		c.PersonalInfo = &info
	}
	return &c
}

func cloneSaved(s models.SavedJob) models.SavedJob {
	s.Job.Skills = append([]string(nil), s.Job.Skills...)
	if s.Job.MatchPercentage != nil {
		p := *s.Job.MatchPercentage
		s.Job.MatchPercentage = &p
	}
	return s
}
