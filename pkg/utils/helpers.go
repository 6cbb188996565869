package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Process ID prefixes for background tasks
const (
	ParseResumeProcessPrefix = "prs"
	FeedRefreshProcessPrefix = "rfr"
)

// GenerateRequestID generates a unique request ID for tracking
func GenerateRequestID() string {
	return uuid.New().String()
}

// GenerateProcessID returns a background task ID such as "prs_<uuid>"
func GenerateProcessID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}

// GenerateJobID returns an identifier for jobs that arrive without one
func GenerateJobID() string {
	return "job-" + uuid.New().String()[:9]
}

// FormatDuration formats a duration to a human-readable string
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}

// ContainsFold checks if a string slice contains item, ignoring case
func ContainsFold(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// GetStringOrDefault returns the value if not blank, otherwise returns the default
func GetStringOrDefault(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
