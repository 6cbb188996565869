// Package feed pulls job listings from the public remote jobs API.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"jobright-api/internal/config"
	"jobright-api/internal/logging"
	"jobright-api/internal/logging/types"
	"jobright-api/pkg/models"
)

// maxBodySize caps how much of the feed response is read
const maxBodySize = 10 << 20

// Result is the outcome of a feed fetch
type Result struct {
	Jobs         []models.Job `json:"jobs"`
	FromFallback bool         `json:"from_fallback"`
	FetchedAt    time.Time    `json:"fetched_at"`
	Reason       string       `json:"reason,omitempty"`
}

// Client fetches jobs from the remote feed, falling back to bundled jobs on failure
type Client struct {
	url        string
	userAgent  string
	maxJobs    int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     types.Logger
}

// NewClient creates a feed client from configuration
func NewClient(cfg *config.Config) *Client {
	limit := rate.Inf
	if cfg.Feed.RateLimit > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.Feed.RateLimit))
	}

	maxJobs := cfg.Feed.MaxJobs
	if maxJobs <= 0 {
		maxJobs = 20
	}

	return &Client{
		url:        cfg.Feed.URL,
		userAgent:  cfg.Feed.UserAgent,
		maxJobs:    maxJobs,
		httpClient: &http.Client{Timeout: cfg.Feed.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logging.GetGlobalLogger().WithField("component", "feed"),
	}
}

// Fetch retrieves the latest listings. Remote failures never surface as
// errors: the fallback jobs are returned instead and the result is flagged.
// Only cancellation of ctx while waiting for the rate limiter is returned.
func (c *Client) Fetch(ctx context.Context) (*Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("feed rate limiter: %w", err)
	}

	start := time.Now()
	jobs, err := c.fetchRemote(ctx)
	if err != nil {
		c.logger.Warn("Feed fetch failed, serving fallback jobs", map[string]interface{}{
			"url":   c.url,
			"error": err.Error(),
		})
		return &Result{Jobs: FallbackJobs(), FromFallback: true, FetchedAt: time.Now(), Reason: err.Error()}, nil
	}

	c.logger.Info("Feed fetched", map[string]interface{}{
		"url":      c.url,
		"jobs":     len(jobs),
		"duration": time.Since(start).String(),
	})

	return &Result{Jobs: jobs, FetchedAt: time.Now()}, nil
}

func (c *Client) fetchRemote(ctx context.Context) ([]models.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload remotiveResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}

	if len(payload.Jobs) == 0 {
		return nil, fmt.Errorf("feed returned no jobs")
	}

	n := len(payload.Jobs)
	if n > c.maxJobs {
		n = c.maxJobs
	}

	jobs := make([]models.Job, 0, n)
	seen := make(map[string]struct{}, n)
	for _, rj := range payload.Jobs[:n] {
		job := rj.toJob()
		if _, dup := seen[job.ID]; dup {
			continue
		}
		seen[job.ID] = struct{}{}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
