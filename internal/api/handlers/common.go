package handlers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobright-api/internal/api/middleware"
	"jobright-api/internal/api/validation"
	"jobright-api/internal/background"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/logging"
	"jobright-api/internal/logging/types"
	"jobright-api/internal/resume"
	"jobright-api/internal/storage"
	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

var validate = validation.New()

// requestLogger returns the request ID and a logger carrying it
func requestLogger(c echo.Context) (string, types.Logger) {
	requestID := middleware.GetRequestID(c)
	return requestID, logging.LogWithRequestID(requestID).WithFields(map[string]interface{}{
		"method": c.Request().Method,
		"path":   c.Path(),
	})
}

// respondError writes err as an ErrorResponse
func respondError(c echo.Context, requestID string, err *utils.CustomError) error {
	message := err.Message
	if err.Detail != "" {
		message = err.Error()
	}
	return c.JSON(err.Code, models.ErrorResponse{
		Error:     err.Kind,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// toCustomError maps domain errors onto HTTP errors
func toCustomError(err error) *utils.CustomError {
	var custom *utils.CustomError
	var verrs validator.ValidationErrors

	switch {
	case errors.As(err, &custom):
		return custom
	case errors.As(err, &verrs):
		return utils.NewValidationError(verrs.Error())
	case errors.Is(err, catalog.ErrJobNotFound):
		return utils.NewNotFoundError("Job not found")
	case errors.Is(err, storage.ErrNotFound):
		return utils.NewNotFoundError("Resource not found")
	case errors.Is(err, background.ErrTaskNotFound):
		return utils.NewNotFoundError("Task not found")
	case errors.Is(err, background.ErrQueueFull), errors.Is(err, background.ErrNotRunning):
		return utils.NewServiceUnavailableError(err.Error())
	case errors.Is(err, resume.ErrFileTooLarge):
		return utils.NewFileTooLargeError(err.Error())
	case errors.Is(err, resume.ErrEmptyFile), errors.Is(err, resume.ErrInvalidFormat):
		return utils.NewResumeError(err.Error())
	default:
		return utils.NewInternalServerError("Internal server error")
	}
}

// validUserID reads and validates the :userId path parameter
func validUserID(c echo.Context) (string, *utils.CustomError) {
	userID := c.Param("userId")
	if err := validate.Var(userID, "required,user_id"); err != nil {
		return "", utils.NewBadRequestError("Invalid user ID")
	}
	return userID, nil
}

func acceptedResponse(processID, message string) models.AsyncResponse {
	return models.AsyncResponse{
		ProcessID: processID,
		Status:    string(background.TaskStatusAccepted),
		Message:   message,
		Timestamp: time.Now(),
	}
}
