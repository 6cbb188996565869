package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/background"
)

// TaskStatusHandler handles GET /api/v1/tasks/:processId
func TaskStatusHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := requestLogger(c)

		result, err := taskManager.GetTaskResult(c.Request().Context(), c.Param("processId"))
		if err != nil {
			return respondError(c, requestID, toCustomError(err))
		}
		return c.JSON(http.StatusOK, result)
	}
}

// ListTasksHandler handles GET /api/v1/tasks
func ListTasksHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		tasks, err := taskManager.ListTasks(c.Request().Context())
		if err != nil {
			logger.WithError(err).Error("Failed to list tasks")
			return respondError(c, requestID, toCustomError(err))
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"tasks":      tasks,
			"total":      len(tasks),
			"healthy":    taskManager.IsHealthy(),
			"request_id": requestID,
			"timestamp":  time.Now(),
		})
	}
}
