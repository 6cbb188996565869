package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/dashboard"
)

// DashboardHandler handles GET /api/v1/users/:userId/dashboard
func DashboardHandler(svc *dashboard.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		userID, cerr := validUserID(c)
		if cerr != nil {
			return respondError(c, requestID, cerr)
		}

		summary, err := svc.Build(c.Request().Context(), userID)
		if err != nil {
			logger.WithError(err).Error("Failed to build dashboard")
			return respondError(c, requestID, toCustomError(err))
		}

		return c.JSON(http.StatusOK, summary)
	}
}
