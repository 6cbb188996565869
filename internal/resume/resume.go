// Package resume validates uploaded resumes and extracts their skills.
package resume

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"jobright-api/pkg/models"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// DefaultMaxFileSize is 5 MB
	DefaultMaxFileSize int64 = 5 * 1024 * 1024
)

var (
	ErrEmptyFile     = errors.New("uploaded file is empty")
	ErrFileTooLarge  = errors.New("file size exceeds 5MB limit")
	ErrInvalidFormat = errors.New("invalid file format, please upload a PDF or DOCX file")
)

// Upload is a resume file as received from a client
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     []byte
}

// Parser turns uploads into structured resumes
type Parser struct {
	maxSize int64
	now     func() time.Time
}

// NewParser creates a parser enforcing maxSize; non-positive values use the default
func NewParser(maxSize int64) *Parser {
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &Parser{maxSize: maxSize, now: time.Now}
}

// MaxSize returns the upload size limit in bytes
func (p *Parser) MaxSize() int64 {
	return p.maxSize
}

// Validate checks size and format without extracting anything
func (p *Parser) Validate(u Upload) error {
	size := u.Size
	if size < int64(len(u.Content)) {
		size = int64(len(u.Content))
	}
	if size == 0 {
		return ErrEmptyFile
	}
	if size > p.maxSize {
		return ErrFileTooLarge
	}
	if DetectFormat(u) == "" {
		return ErrInvalidFormat
	}
	return nil
}

// Parse validates the upload and extracts the resume
func (p *Parser) Parse(ctx context.Context, u Upload) (*models.ParsedResume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.Validate(u); err != nil {
		return nil, err
	}

	return &models.ParsedResume{
		FileName: u.FileName,
		Skills:   skillsFor(u.FileName),
		ParsedAt: p.now().UTC(),
	}, nil
}

// DetectFormat returns MimePDF or MimeDOCX for acceptable uploads and "" otherwise.
// Content sniffing wins when it is conclusive; generic containers (zip, raw
// bytes) defer to the declared type and then to the file extension.
func DetectFormat(u Upload) string {
	if len(u.Content) > 0 {
		m := mimetype.Detect(u.Content)
		switch {
		case m.Is(MimePDF):
			return MimePDF
		case m.Is(MimeDOCX):
			return MimeDOCX
		case !m.Is("application/zip") && !m.Is("application/octet-stream"):
			return ""
		}
	}

	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(u.ContentType, ";", 2)[0]))
	switch declared {
	case MimePDF, MimeDOCX:
		return declared
	}

	switch strings.ToLower(filepath.Ext(u.FileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	}
	return ""
}
