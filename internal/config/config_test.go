package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 2*time.Second, cfg.Simulation.ResumeParseDelay)
	assert.Equal(t, int64(5*1024*1024), cfg.Resume.MaxFileSize)
	assert.Equal(t, 20, cfg.Feed.MaxJobs)
}

func TestLoadConfig_FileMissingIsIgnored(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadConfig_YAMLWithEnvExpansion(t *testing.T) {
	t.Setenv("TEST_JOBRIGHT_REDIS", "redis://cache:6379/2")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
storage:
  backend: redis
redis:
  url: ${TEST_JOBRIGHT_REDIS}
simulation:
  resume_parse_delay: 0s
logging:
  level: debug
  adapters:
    - name: console
      type: stdout
      enabled: true
      options:
        format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, time.Duration(0), cfg.Simulation.ResumeParseDelay)
	require.Len(t, cfg.Logging.Adapters, 1)
	assert.Equal(t, "text", cfg.Logging.Adapters[0].Options["format"])
	// untouched sections keep their defaults
	assert.Equal(t, 100, cfg.Workers.QueueSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("RESUME_PARSE_DELAY", "150ms")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("FEED_RATE_LIMIT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 150*time.Millisecond, cfg.Simulation.ResumeParseDelay)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 6, cfg.Feed.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_JOBRIGHT_HOST", "example.org")
	assert.Equal(t, "http://example.org/x", expandEnvVars("http://${TEST_JOBRIGHT_HOST}/x"))
	assert.Equal(t, "example.org", expandEnvVars("$TEST_JOBRIGHT_HOST"))
	assert.Equal(t, "${TEST_JOBRIGHT_UNSET}", expandEnvVars("${TEST_JOBRIGHT_UNSET}"))
}
