package background

import (
	"context"
	"sort"
	"sync"
	"time"

	"jobright-api/pkg/models"
)

// TaskStatus represents the status of a background task
type TaskStatus string

const (
	TaskStatusAccepted   TaskStatus = "ACCEPTED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusSuccess    TaskStatus = "SUCCESS"
	TaskStatusFailure    TaskStatus = "FAILURE"
)

// TaskType represents the type of background task
type TaskType string

const (
	TaskTypeParseResume TaskType = "parse_resume"
	TaskTypeRefreshFeed TaskType = "refresh_feed"
)

// TaskResult represents the result of a background task
type TaskResult struct {
	ProcessID      string                 `json:"process_id"`
	Type           TaskType               `json:"type"`
	Status         TaskStatus             `json:"status"`
	Data           interface{}            `json:"data,omitempty"`
	Error          string                 `json:"error,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	CompletedAt    *time.Time             `json:"completed_at,omitempty"`
	ProcessingTime *time.Duration         `json:"processing_time,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// IsTerminal reports whether the task has finished
func (r *TaskResult) IsTerminal() bool {
	return r.Status == TaskStatusSuccess || r.Status == TaskStatusFailure
}

func (r *TaskResult) clone() *TaskResult {
	c := *r
	if r.Metadata != nil {
		c.Metadata = make(map[string]interface{}, len(r.Metadata))
		for k, v := range r.Metadata {
			c.Metadata[k] = v
		}
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		c.CompletedAt = &t
	}
	if r.ProcessingTime != nil {
		d := *r.ProcessingTime
		c.ProcessingTime = &d
	}
	return &c
}

// ParseResumeTaskData is the payload of a finished resume parse
type ParseResumeTaskData struct {
	UserID string               `json:"user_id"`
	Resume *models.ParsedResume `json:"resume"`
}

// RefreshFeedTaskData is the payload of a finished feed refresh
type RefreshFeedTaskData struct {
	JobCount     int       `json:"job_count"`
	FromFallback bool      `json:"from_fallback"`
	RefreshedAt  time.Time `json:"refreshed_at"`
}

// TaskStore defines the interface for storing and retrieving task results
type TaskStore interface {
	Store(ctx context.Context, result *TaskResult) error
	Get(ctx context.Context, processID string) (*TaskResult, error)
	Update(ctx context.Context, result *TaskResult) error
	Delete(ctx context.Context, processID string) error
	// Cleanup removes results created more than maxAge ago and returns how many went
	Cleanup(ctx context.Context, maxAge time.Duration) (int, error)
	// List returns all task results, newest first
	List(ctx context.Context) ([]*TaskResult, error)
}

// InMemoryTaskStore implements TaskStore using in-memory storage. Results are
// copied on the way in and out so callers never share state with the store.
type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*TaskResult
	now   func() time.Time
}

// NewInMemoryTaskStore creates a new in-memory task store
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		tasks: make(map[string]*TaskResult),
		now:   time.Now,
	}
}

func (s *InMemoryTaskStore) Store(ctx context.Context, result *TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks[result.ProcessID] = result.clone()
	return nil
}

func (s *InMemoryTaskStore) Get(ctx context.Context, processID string) (*TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, exists := s.tasks[processID]
	if !exists {
		return nil, ErrTaskNotFound
	}
	return result.clone(), nil
}

func (s *InMemoryTaskStore) Update(ctx context.Context, result *TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[result.ProcessID]; !exists {
		return ErrTaskNotFound
	}
	s.tasks[result.ProcessID] = result.clone()
	return nil
}

func (s *InMemoryTaskStore) Delete(ctx context.Context, processID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[processID]; !exists {
		return ErrTaskNotFound
	}
	delete(s.tasks, processID)
	return nil
}

func (s *InMemoryTaskStore) Cleanup(ctx context.Context, maxAge time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxAge)
	removed := 0
	for processID, result := range s.tasks {
		if result.CreatedAt.Before(cutoff) {
			delete(s.tasks, processID)
			removed++
		}
	}
	return removed, nil
}

func (s *InMemoryTaskStore) List(ctx context.Context) ([]*TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*TaskResult, 0, len(s.tasks))
	for _, result := range s.tasks {
		results = append(results, result.clone())
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

// Common errors
var (
	ErrTaskNotFound = NewTaskError("TASK_NOT_FOUND", "task not found")
	ErrQueueFull    = NewTaskError("QUEUE_FULL", "task queue is full")
	ErrNotRunning   = NewTaskError("NOT_RUNNING", "task manager is not running")
)

// TaskError represents a background task error
type TaskError struct {
	Message string
	Code    string
}

func NewTaskError(code, message string) *TaskError {
	return &TaskError{
		Message: message,
		Code:    code,
	}
}

func (e *TaskError) Error() string {
	return e.Message
}
