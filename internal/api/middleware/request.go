package middleware

import (
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

// RequestIDKey is the echo context key holding the request ID
const RequestIDKey = "request_id"

var incomingRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{8,64}$`)

// RequestValidation assigns a request ID (reusing a well formed incoming
// X-Request-ID) and rejects bodies whose declared length exceeds maxBody
func RequestValidation(maxBody int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if !incomingRequestID.MatchString(requestID) {
				requestID = utils.GenerateRequestID()
			}
			c.Set(RequestIDKey, requestID)
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			if maxBody > 0 && c.Request().ContentLength > maxBody {
				return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
					Error:     "request_too_large",
					Message:   "Request body too large",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}

			return next(c)
		}
	}
}

// GetRequestID returns the request ID assigned by RequestValidation, generating
// one when the middleware did not run
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(RequestIDKey).(string); ok && id != "" {
		return id
	}
	id := utils.GenerateRequestID()
	c.Set(RequestIDKey, id)
	return id
}
