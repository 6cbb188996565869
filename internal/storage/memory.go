package storage

import (
	"context"
	"sync"
	"time"

	"jobright-api/pkg/models"
)

type savedList struct {
	order []string
	jobs  map[string]models.SavedJob
}

type storedResume struct {
	resume    *models.ParsedResume
	expiresAt time.Time
}

// MemoryStore keeps everything in process memory
type MemoryStore struct {
	mu        sync.RWMutex
	saved     map[string]*savedList
	resumes   map[string]storedResume
	resumeTTL time.Duration
	now       func() time.Time
	closed    bool
}

// NewMemoryStore creates an empty store; a zero ttl keeps resumes forever
func NewMemoryStore(resumeTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		saved:     make(map[string]*savedList),
		resumes:   make(map[string]storedResume),
		resumeTTL: resumeTTL,
		now:       time.Now,
	}
}

func (s *MemoryStore) SaveJob(ctx context.Context, userID string, job models.Job) (models.SavedJob, bool, error) {
	if err := ctx.Err(); err != nil {
		return models.SavedJob{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.saved[userID]
	if !ok {
		list = &savedList{jobs: make(map[string]models.SavedJob)}
		s.saved[userID] = list
	}

	if existing, ok := list.jobs[job.ID]; ok {
		return cloneSaved(existing), false, nil
	}

	saved := cloneSaved(models.SavedJob{Job: job, SavedAt: s.now().UTC()})
	list.jobs[job.ID] = saved
	list.order = append(list.order, job.ID)

	return cloneSaved(saved), true, nil
}

func (s *MemoryStore) RemoveJob(ctx context.Context, userID, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.saved[userID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := list.jobs[jobID]; !ok {
		return ErrNotFound
	}

	delete(list.jobs, jobID)
	for i, id := range list.order {
		if id == jobID {
			list.order = append(list.order[:i], list.order[i+1:]...)
			break
		}
	}
	if len(list.jobs) == 0 {
		delete(s.saved, userID)
	}

	return nil
}

func (s *MemoryStore) ListSavedJobs(ctx context.Context, userID string) ([]models.SavedJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SavedJob, 0)
	list, ok := s.saved[userID]
	if !ok {
		return out, nil
	}
	for _, id := range list.order {
		out = append(out, cloneSaved(list.jobs[id]))
	}
	return out, nil
}

func (s *MemoryStore) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.saved[userID]
	if !ok {
		return false, nil
	}
	_, ok = list.jobs[jobID]
	return ok, nil
}

func (s *MemoryStore) PutResume(ctx context.Context, userID string, resume *models.ParsedResume) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := storedResume{resume: cloneResume(resume)}
	if s.resumeTTL > 0 {
		entry.expiresAt = s.now().Add(s.resumeTTL)
	}
	s.resumes[userID] = entry
	return nil
}

func (s *MemoryStore) GetResume(ctx context.Context, userID string) (*models.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entry, ok := s.resumes[userID]
	s.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt)) {
		return nil, ErrNotFound
	}
	return cloneResume(entry.resume), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errClosed
	}
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
