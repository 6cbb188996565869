package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"jobright-api/internal/logging/types"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
		BodyLimit    string        `yaml:"body_limit"`
		// AllowedOrigins is the CORS allow list; empty allows any origin
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Workers struct {
		PoolSize  int `yaml:"pool_size"`
		QueueSize int `yaml:"queue_size"`
	} `yaml:"workers"`

	BackgroundTasks struct {
		TaskTimeout     time.Duration `yaml:"task_timeout"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
		MaxTaskAge      time.Duration `yaml:"max_task_age"`
	} `yaml:"background_tasks"`

	// Simulation holds the artificial latencies applied by background tasks
	Simulation struct {
		ResumeParseDelay time.Duration `yaml:"resume_parse_delay"`
		FeedRefreshDelay time.Duration `yaml:"feed_refresh_delay"`
	} `yaml:"simulation"`

	Feed struct {
		URL       string        `yaml:"url"`
		Timeout   time.Duration `yaml:"timeout"`
		MaxJobs   int           `yaml:"max_jobs"`
		RateLimit int           `yaml:"rate_limit"` // requests per minute
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"feed"`

	Resume struct {
		MaxFileSize int64 `yaml:"max_file_size"`
	} `yaml:"resume"`

	Storage struct {
		Backend   string        `yaml:"backend"` // memory or redis
		ResumeTTL time.Duration `yaml:"resume_ttl"`
	} `yaml:"storage"`

	Logging struct {
		Level    string                `yaml:"level"`
		Format   string                `yaml:"format"`
		Adapters []types.AdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"redis"`
}

var (
	bracedEnvVar = regexp.MustCompile(`\$\{([^}]+)\}`)
	bareEnvVar   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars expands ${VAR} and $VAR references, leaving unknown variables untouched
func expandEnvVars(s string) string {
	s = bracedEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		if val := os.Getenv(match[2 : len(match)-1]); val != "" {
			return val
		}
		return match
	})

	return bareEnvVar.ReplaceAllStringFunc(s, func(match string) string {
		if val := os.Getenv(match[1:]); val != "" {
			return val
		}
		return match
	})
}

// Default returns the configuration used when no file or environment overrides are present
func Default() *Config {
	config := &Config{}

	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.BodyLimit = "6M"

	config.Workers.PoolSize = 4
	config.Workers.QueueSize = 100

	config.BackgroundTasks.TaskTimeout = 60 * time.Second
	config.BackgroundTasks.CleanupInterval = 1 * time.Hour
	config.BackgroundTasks.MaxTaskAge = 24 * time.Hour

	config.Simulation.ResumeParseDelay = 2 * time.Second
	config.Simulation.FeedRefreshDelay = 800 * time.Millisecond

	config.Feed.URL = "https://remotive.io/api/remote-jobs"
	config.Feed.Timeout = 15 * time.Second
	config.Feed.MaxJobs = 20
	config.Feed.RateLimit = 6
	config.Feed.UserAgent = "jobright-api/1.0"

	config.Resume.MaxFileSize = 5 * 1024 * 1024

	config.Storage.Backend = "memory"
	config.Storage.ResumeTTL = 30 * 24 * time.Hour

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.Timeout = 5 * time.Second

	return config
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	config := Default()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), config); err != nil {
				return nil, err
			}
		}
	}

	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.Server.AllowedOrigins = nil
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, o)
			}
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if poolSize := os.Getenv("WORKERS_POOL_SIZE"); poolSize != "" {
		if size, err := strconv.Atoi(poolSize); err == nil {
			c.Workers.PoolSize = size
		}
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if feedURL := os.Getenv("FEED_URL"); feedURL != "" {
		c.Feed.URL = feedURL
	}

	if feedRate := os.Getenv("FEED_RATE_LIMIT"); feedRate != "" {
		if rate, err := strconv.Atoi(feedRate); err == nil {
			c.Feed.RateLimit = rate
		}
	}

	if delay := os.Getenv("RESUME_PARSE_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Simulation.ResumeParseDelay = d
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}
}
