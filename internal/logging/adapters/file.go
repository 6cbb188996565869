package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"jobright-api/internal/logging/types"
)

// FileAdapter appends log entries to a file, rotating it once it grows past MaxSize
type FileAdapter struct {
	name   string
	config FileConfig
	file   *os.File
	size   int64
	mu     sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string      `yaml:"file_path"`
	Format     string      `yaml:"format"`
	MaxSize    int64       `yaml:"max_size"` // bytes, 0 disables rotation
	MaxBackups int         `yaml:"max_backups"`
	CreateDirs bool        `yaml:"create_dirs"`
	FileMode   os.FileMode `yaml:"file_mode"`
}

// NewFileAdapter opens (or creates) the log file
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}
	if config.FileMode == 0 {
		config.FileMode = 0644
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	a := &FileAdapter{name: name, config: config}
	if err := a.openFile(); err != nil {
		return nil, err
	}
	return a, nil
}

// Write appends a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return fmt.Errorf("file adapter %s is closed", a.name)
	}

	var (
		line string
		err  error
	)
	if strings.ToLower(a.config.Format) == "text" {
		line = formatText(entry, false)
	} else if line, err = formatJSON(entry); err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	if a.config.MaxSize > 0 && a.size+int64(len(line)+1) > a.config.MaxSize {
		if err := a.rotate(); err != nil {
			return err
		}
	}

	n, err := a.file.WriteString(line + "\n")
	a.size += int64(n)
	return err
}

// Close flushes and closes the file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return nil
	}
	err := a.file.Close()
	a.file = nil
	return err
}

// Health reports whether the file is open and still present on disk
func (a *FileAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.file == nil {
		return fmt.Errorf("file adapter %s is closed", a.name)
	}
	if _, err := os.Stat(a.config.FilePath); err != nil {
		return fmt.Errorf("log file unavailable: %w", err)
	}
	return nil
}

func (a *FileAdapter) Name() string { return a.name }

func (a *FileAdapter) openFile() error {
	f, err := os.OpenFile(a.config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, a.config.FileMode)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	a.file = f
	a.size = info.Size()
	return nil
}

// rotate renames the current file with a timestamp suffix and drops the
// oldest backups beyond MaxBackups
func (a *FileAdapter) rotate() error {
	if err := a.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file for rotation: %w", err)
	}

	backup := fmt.Sprintf("%s.%s", a.config.FilePath, time.Now().Format("20060102T150405.000000000"))
	if err := os.Rename(a.config.FilePath, backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if a.config.MaxBackups > 0 {
		matches, _ := filepath.Glob(a.config.FilePath + ".*")
		// timestamp suffixes sort chronologically
		for len(matches) > a.config.MaxBackups {
			os.Remove(matches[0])
			matches = matches[1:]
		}
	}

	return a.openFile()
}
