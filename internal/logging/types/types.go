package types

import (
	"context"
	"strings"
	"time"
)

// LogLevel is the severity of an entry. Higher is more severe.
type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

var levelNames = [...]string{
	DebugLevel: "debug",
	InfoLevel:  "info",
	WarnLevel:  "warn",
	ErrorLevel: "error",
	FatalLevel: "fatal",
}

// String returns the lower-case level name; unknown levels render as info
func (l LogLevel) String() string {
	if l < DebugLevel || l > FatalLevel {
		return levelNames[InfoLevel]
	}
	return levelNames[l]
}

// MarshalText lets levels appear by name in JSON and YAML
func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts any name ParseLevel accepts
func (l *LogLevel) UnmarshalText(text []byte) error {
	*l = ParseLevel(string(text))
	return nil
}

// ParseLevel maps a level name to a LogLevel. "warning" is accepted as an
// alias and anything unrecognised is treated as info.
func ParseLevel(name string) LogLevel {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return WarnLevel
	}
	for lvl, n := range levelNames {
		if n == name {
			return LogLevel(lvl)
		}
	}
	return InfoLevel
}

// LogEntry is one record handed to every adapter
type LogEntry struct {
	Level     LogLevel
	Message   string
	Timestamp time.Time
	Fields    map[string]interface{}
	Context   context.Context
}

// LogAdapter is an output destination for entries
type LogAdapter interface {
	Write(entry *LogEntry) error
	Close() error
	// Health reports whether the destination can still accept writes
	Health() error
	Name() string
}

// Logger is the structured logger used across the service
type Logger interface {
	Debug(message string, fields ...map[string]interface{})
	Info(message string, fields ...map[string]interface{})
	Warn(message string, fields ...map[string]interface{})
	Error(message string, fields ...map[string]interface{})
	Fatal(message string, fields ...map[string]interface{})

	WithContext(ctx context.Context) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	Log(level LogLevel, message string, fields ...map[string]interface{})

	SetLevel(level LogLevel)
	GetLevel() LogLevel

	AddAdapter(adapter LogAdapter) error
	RemoveAdapter(adapterName string) error

	Close() error
}

// AdapterConfig selects and configures one adapter from the logging section
type AdapterConfig struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}
