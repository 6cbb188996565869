package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/background"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/matching"
	"jobright-api/internal/resume"
	"jobright-api/internal/storage"
	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

// ResumeResponse is a stored resume with its keyword matches against the catalog
type ResumeResponse struct {
	UserID         string                  `json:"user_id"`
	Resume         *models.ParsedResume    `json:"resume"`
	KeywordMatches []matching.KeywordMatch `json:"keyword_matches"`
	RequestID      string                  `json:"request_id"`
}

// UploadResumeHandler handles POST /api/v1/users/:userId/resume. The file is
// validated up front and parsed in the background.
func UploadResumeHandler(parser *resume.Parser, taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		userID, cerr := validUserID(c)
		if cerr != nil {
			return respondError(c, requestID, cerr)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("Resume upload without file")
			return respondError(c, requestID, utils.NewBadRequestError("A resume file is required in the 'file' field"))
		}

		if fh.Size > parser.MaxSize() {
			return respondError(c, requestID, toCustomError(resume.ErrFileTooLarge))
		}

		f, err := fh.Open()
		if err != nil {
			logger.WithError(err).Error("Failed to open uploaded file")
			return respondError(c, requestID, utils.NewBadRequestError("Could not read uploaded file"))
		}
		defer f.Close()

		content, err := io.ReadAll(io.LimitReader(f, parser.MaxSize()+1))
		if err != nil {
			logger.WithError(err).Error("Failed to read uploaded file")
			return respondError(c, requestID, utils.NewBadRequestError("Could not read uploaded file"))
		}

		upload := resume.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Content:     content,
		}

		if err := parser.Validate(upload); err != nil {
			logger.WithFields(map[string]interface{}{
				"file_name": fh.Filename,
				"file_size": fh.Size,
				"error":     err.Error(),
			}).Warn("Resume rejected")
			return respondError(c, requestID, toCustomError(err))
		}

		processID := utils.GenerateProcessID(utils.ParseResumeProcessPrefix)
		if err := taskManager.SubmitParseResume(c.Request().Context(), processID, userID, upload); err != nil {
			logger.WithError(err).Error("Failed to submit resume parse")
			return respondError(c, requestID, toCustomError(err))
		}

		logger.WithFields(map[string]interface{}{
			"process_id": processID,
			"user_id":    userID,
			"file_name":  fh.Filename,
			"file_size":  fh.Size,
		}).Info("Resume submitted for parsing")

		return c.JSON(http.StatusAccepted, acceptedResponse(processID, fmt.Sprintf("Resume %q accepted for parsing", fh.Filename)))
	}
}

// GetResumeHandler handles GET /api/v1/users/:userId/resume
func GetResumeHandler(store storage.Store, cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		userID, cerr := validUserID(c)
		if cerr != nil {
			return respondError(c, requestID, cerr)
		}

		parsed, err := store.GetResume(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return respondError(c, requestID, utils.NewNotFoundError("No resume uploaded for this user"))
			}
			logger.WithError(err).Error("Failed to load resume")
			return respondError(c, requestID, toCustomError(err))
		}

		return c.JSON(http.StatusOK, ResumeResponse{
			UserID:         userID,
			Resume:         parsed,
			KeywordMatches: matching.KeywordMatches(parsed, cat.List()),
			RequestID:      requestID,
		})
	}
}
