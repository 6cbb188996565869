package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/storage"
	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

// ListSavedJobsHandler handles GET /api/v1/users/:userId/saved-jobs
func ListSavedJobsHandler(store storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		userID, cerr := validUserID(c)
		if cerr != nil {
			return respondError(c, requestID, cerr)
		}

		saved, err := store.ListSavedJobs(c.Request().Context(), userID)
		if err != nil {
			logger.WithError(err).Error("Failed to list saved jobs")
			return respondError(c, requestID, toCustomError(err))
		}

		return c.JSON(http.StatusOK, models.SavedJobsResponse{UserID: userID, Jobs: saved, Total: len(saved)})
	}
}

// SaveJobHandler handles POST /api/v1/users/:userId/saved-jobs. Only catalog
// jobs can be saved. A new save answers 201, a repeat answers 200 with the
// original entry.
func SaveJobHandler(store storage.Store, cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		userID, cerr := validUserID(c)
		if cerr != nil {
			return respondError(c, requestID, cerr)
		}

		var req models.SaveJobRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, requestID, utils.NewBadRequestError("Invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return respondError(c, requestID, toCustomError(err))
		}

		job, err := cat.Get(req.JobID)
		if err != nil {
			return respondError(c, requestID, toCustomError(err))
		}

		saved, created, err := store.SaveJob(c.Request().Context(), userID, job)
		if err != nil {
			logger.WithError(err).Error("Failed to save job")
			return respondError(c, requestID, toCustomError(err))
		}

		logger.WithFields(map[string]interface{}{
			"user_id": userID,
			"job_id":  job.ID,
			"created": created,
		}).Info("Job saved")

		if !created {
			return c.JSON(http.StatusOK, saved)
		}
		return c.JSON(http.StatusCreated, saved)
	}
}

// RemoveSavedJobHandler handles DELETE /api/v1/users/:userId/saved-jobs/:jobId
func RemoveSavedJobHandler(store storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		userID, cerr := validUserID(c)
		if cerr != nil {
			return respondError(c, requestID, cerr)
		}

		jobID := c.Param("jobId")
		if err := store.RemoveJob(c.Request().Context(), userID, jobID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return respondError(c, requestID, utils.NewNotFoundError("Job is not saved"))
			}
			logger.WithError(err).Error("Failed to remove saved job")
			return respondError(c, requestID, toCustomError(err))
		}

		logger.WithFields(map[string]interface{}{
			"user_id": userID,
			"job_id":  jobID,
		}).Info("Saved job removed")

		return c.NoContent(http.StatusNoContent)
	}
}
