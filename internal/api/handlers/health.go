package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/background"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/storage"
	"jobright-api/pkg/models"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

var startTime = time.Now()

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	_, logger := requestLogger(c)
	logger.Debug("Health check requested")

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// ReadinessHandler reports ready only when the store answers and the task manager runs
func ReadinessHandler(store storage.Store, taskManager background.TaskManager, cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		_, logger := requestLogger(c)
		logger.Debug("Readiness check requested")

		checks := map[string]string{"api": "ok"}
		ready := true

		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			checks["storage"] = "unavailable"
			ready = false
			logger.WithError(err).Warn("Storage ping failed")
		} else {
			checks["storage"] = "ok"
		}

		if taskManager.IsHealthy() {
			checks["tasks"] = "ok"
		} else {
			checks["tasks"] = "stopped"
			ready = false
		}

		if cat.Len() > 0 {
			checks["catalog"] = "ok"
		} else {
			checks["catalog"] = "empty"
		}

		status, code := "ready", http.StatusOK
		if !ready {
			status, code = "not_ready", http.StatusServiceUnavailable
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   Version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	_, logger := requestLogger(c)
	logger.Debug("Liveness check requested")

	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   Version,
		Uptime:    time.Since(startTime),
	})
}
