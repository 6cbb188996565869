package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents an application error that maps onto an HTTP status
type CustomError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func NewBadRequestError(message string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Kind: "invalid_request", Message: message}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{Code: http.StatusInternalServerError, Kind: "internal_error", Message: message}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{Code: http.StatusBadRequest, Kind: "validation_failed", Message: "Validation failed", Detail: detail}
}

func NewNotFoundError(message string) *CustomError {
	return &CustomError{Code: http.StatusNotFound, Kind: "not_found", Message: message}
}

func NewServiceUnavailableError(message string) *CustomError {
	return &CustomError{Code: http.StatusServiceUnavailable, Kind: "service_unavailable", Message: message}
}

// NewResumeError is returned when an uploaded resume is rejected
func NewResumeError(detail string) *CustomError {
	return &CustomError{Code: http.StatusUnprocessableEntity, Kind: "resume_rejected", Message: "Resume could not be processed", Detail: detail}
}

// NewFileTooLargeError is returned when an upload exceeds the size limit
func NewFileTooLargeError(detail string) *CustomError {
	return &CustomError{Code: http.StatusRequestEntityTooLarge, Kind: "file_too_large", Message: "File too large", Detail: detail}
}
