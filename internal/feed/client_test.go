package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobright-api/internal/config"
)

func testConfig(url string) *config.Config {
	cfg := config.Default()
	cfg.Feed.URL = url
	cfg.Feed.RateLimit = 0
	cfg.Feed.Timeout = 2 * time.Second
	cfg.Feed.MaxJobs = 2
	return cfg
}

const feedBody = `{
  "jobs": [
    {
      "id": 101,
      "title": "Go Engineer",
      "company_name": "Gophers Ltd",
      "company_logo": "https://img.example/logo.png",
      "tags": ["go", "kubernetes"],
      "publication_date": "2024-05-01T10:00:00",
      "candidate_required_location": "Europe",
      "description": "<p>Build <b>services</b></p><script>alert(1)</script><ul><li>Go</li><li>gRPC</li></ul>"
    },
    {
      "id": 102,
      "title": "Support Engineer",
      "company_name": "Help Inc",
      "publication_date": "2024-05-02T08:00:00",
      "candidate_required_location": "",
      "description": "Help people"
    },
    {
      "id": 103,
      "title": "Third",
      "company_name": "Cut Off",
      "description": "Beyond max jobs"
    }
  ]
}`

func TestClient_FetchMapsRemoteJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	res, err := NewClient(testConfig(srv.URL)).Fetch(context.Background())
	require.NoError(t, err)
	require.False(t, res.FromFallback)
	require.Len(t, res.Jobs, 2)

	first := res.Jobs[0]
	assert.Equal(t, "101", first.ID)
	assert.Equal(t, "Gophers Ltd", first.Company)
	assert.Equal(t, "Europe", first.Location)
	assert.Equal(t, "Competitive", first.Salary)
	assert.Equal(t, "Not specified", first.Experience)
	assert.Equal(t, []string{"go", "kubernetes"}, first.Skills)
	assert.Equal(t, "2024-05-01", first.PostedDate)
	assert.Equal(t, "https://img.example/logo.png", first.LogoURL)
	assert.Equal(t, "Remotive", first.Source)
	assert.Equal(t, "Build services Go gRPC...", first.Description)

	second := res.Jobs[1]
	assert.Equal(t, "Remote", second.Location)
	assert.Equal(t, []string{"Not specified"}, second.Skills)
}

func TestClient_FetchTruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 300)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jobs":[{"id":1,"title":"x","company_name":"y","description":"` + long + `"}]}`))
	}))
	defer srv.Close()

	res, err := NewClient(testConfig(srv.URL)).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, strings.Repeat("a", 200)+"...", res.Jobs[0].Description)
}

func TestClient_FetchFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name:    "server error",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) },
		},
		{
			name:    "bad json",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("<html>")) },
		},
		{
			name:    "empty list",
			handler: func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"jobs":[]}`)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res, err := NewClient(testConfig(srv.URL)).Fetch(context.Background())
			require.NoError(t, err)
			assert.True(t, res.FromFallback)
			assert.NotEmpty(t, res.Reason)
			assert.Equal(t, FallbackJobs(), res.Jobs)
		})
	}
}

func TestClient_FetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res, err := NewClient(testConfig(url)).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, res.FromFallback)
}

func TestClient_FetchCancelledWhileRateLimited(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Feed.RateLimit = 1
	c := NewClient(cfg)

	_, err := c.Fetch(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Fetch(ctx)
	assert.Error(t, err)
}
