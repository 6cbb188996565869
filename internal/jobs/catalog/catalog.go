// Package catalog holds the job listings served by the API.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"jobright-api/pkg/models"
)

//go:embed sample_jobs.json
var sampleJobsJSON []byte

var (
	ErrJobNotFound = errors.New("job not found")
	ErrDuplicateID = errors.New("duplicate job id")
)

// Catalog is a concurrency-safe, replaceable list of jobs
type Catalog struct {
	mu            sync.RWMutex
	jobs          []models.Job
	index         map[string]int
	lastRefreshed time.Time
}

// New creates a catalog holding the given jobs
func New(jobs []models.Job) (*Catalog, error) {
	c := &Catalog{}
	if err := c.Replace(jobs); err != nil {
		return nil, err
	}
	return c, nil
}

// NewWithSampleJobs creates a catalog seeded with the bundled sample postings
func NewWithSampleJobs() (*Catalog, error) {
	jobs, err := SampleJobs()
	if err != nil {
		return nil, err
	}
	return New(jobs)
}

// SampleJobs decodes the bundled sample postings
func SampleJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := json.Unmarshal(sampleJobsJSON, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode sample jobs: %w", err)
	}
	return jobs, nil
}

// List returns a copy of all jobs in catalog order
func (c *Catalog) List() []models.Job {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Job, len(c.jobs))
	copy(out, c.jobs)
	return out
}

// Get returns the job with the given ID
func (c *Catalog) Get(id string) (models.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return c.jobs[i], nil
}

// Replace swaps the entire job list. The catalog is left untouched when
// the new list contains duplicate IDs.
func (c *Catalog) Replace(jobs []models.Job) error {
	index := make(map[string]int, len(jobs))
	for i, job := range jobs {
		if _, dup := index[job.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, job.ID)
		}
		index[job.ID] = i
	}

	stored := make([]models.Job, len(jobs))
	copy(stored, jobs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = stored
	c.index = index
	c.lastRefreshed = time.Now()
	return nil
}

// Merge adds jobs whose IDs are not yet in the catalog and returns how many
// were added. With replace set the current list is discarded first. The
// read and the swap happen under one write lock.
func (c *Catalog) Merge(jobs []models.Job, replace bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var merged []models.Job
	index := make(map[string]int, len(jobs))
	if !replace {
		merged = make([]models.Job, len(c.jobs), len(c.jobs)+len(jobs))
		copy(merged, c.jobs)
		for id, i := range c.index {
			index[id] = i
		}
	}

	added := 0
	for _, job := range jobs {
		if _, dup := index[job.ID]; dup {
			continue
		}
		index[job.ID] = len(merged)
		merged = append(merged, job)
		added++
	}

	c.jobs = merged
	c.index = index
	c.lastRefreshed = time.Now()
	return added
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.jobs)
}

// LastRefreshed returns when the job list was last replaced
func (c *Catalog) LastRefreshed() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefreshed
}
