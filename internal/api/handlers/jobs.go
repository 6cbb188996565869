package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/background"
	"jobright-api/internal/feed"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/jobs/filter"
	"jobright-api/internal/matching"
	"jobright-api/internal/storage"
	"jobright-api/pkg/models"
	"jobright-api/pkg/utils"
)

// ImportJobsRequest carries loosely shaped listings from external exports
type ImportJobsRequest struct {
	Jobs    []map[string]interface{} `json:"jobs" validate:"required,min=1,max=1000"`
	Replace bool                     `json:"replace"`
}

// ListJobsHandler handles GET /api/v1/jobs with an optional free text ?q=
func ListJobsHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		query := c.QueryParam("q")
		if len([]rune(query)) > 200 {
			return respondError(c, requestID, utils.NewBadRequestError("Query is too long"))
		}

		jobs := filter.FilterByQuery(cat.List(), query)

		logger.WithFields(map[string]interface{}{
			"query":   query,
			"results": len(jobs),
		}).Debug("Jobs listed")

		return c.JSON(http.StatusOK, models.JobsResponse{Jobs: jobs, Total: len(jobs), RequestID: requestID})
	}
}

// FilterOptionsHandler handles GET /api/v1/jobs/filters
func FilterOptionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.FilterOptionsResponse{
		ExperienceLevels: append([]string(nil), models.ExperienceLevels...),
		JobTypes:         append([]string(nil), models.JobTypes...),
		SalaryRange:      []int{models.SalaryRangeFloor, models.SalaryRangeCeiling},
		Defaults:         filter.DefaultCriteria(),
	})
}

// SearchJobsHandler handles POST /api/v1/jobs/search. With ?user_id= the
// results carry match percentages against that user's resume and are ranked.
func SearchJobsHandler(cat *catalog.Catalog, store storage.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		criteria := filter.DefaultCriteria()
		if err := c.Bind(&criteria); err != nil {
			logger.WithError(err).Warn("Failed to bind search criteria")
			return respondError(c, requestID, utils.NewBadRequestError("Invalid request format"))
		}

		if err := validate.Struct(&criteria); err != nil {
			logger.WithError(err).Warn("Search criteria validation failed")
			return respondError(c, requestID, toCustomError(err))
		}

		jobs := filter.ApplyFilters(cat.List(), criteria)

		if userID := c.QueryParam("user_id"); userID != "" {
			if err := validate.Var(userID, "user_id"); err != nil {
				return respondError(c, requestID, utils.NewBadRequestError("Invalid user ID"))
			}

			resume, err := store.GetResume(c.Request().Context(), userID)
			switch {
			case err == nil:
				jobs = matching.Annotate(jobs, resume)
				matching.Rank(jobs)
			case errors.Is(err, storage.ErrNotFound):
				// no resume yet, plain results
			default:
				logger.WithError(err).Error("Failed to load resume for ranking")
				return respondError(c, requestID, toCustomError(err))
			}
		}

		logger.WithFields(map[string]interface{}{
			"noop":    filter.IsNoop(criteria),
			"results": len(jobs),
		}).Info("Job search completed")

		return c.JSON(http.StatusOK, models.JobsResponse{Jobs: jobs, Total: len(jobs), RequestID: requestID})
	}
}

// GetJobHandler handles GET /api/v1/jobs/:id
func GetJobHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, _ := requestLogger(c)

		job, err := cat.Get(c.Param("id"))
		if err != nil {
			return respondError(c, requestID, toCustomError(err))
		}
		return c.JSON(http.StatusOK, job)
	}
}

// RefreshJobsHandler handles POST /api/v1/jobs/refresh by queueing a feed refresh
func RefreshJobsHandler(taskManager background.TaskManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		processID := utils.GenerateProcessID(utils.FeedRefreshProcessPrefix)
		if err := taskManager.SubmitFeedRefresh(c.Request().Context(), processID); err != nil {
			logger.WithError(err).Error("Failed to submit feed refresh")
			return respondError(c, requestID, toCustomError(err))
		}

		logger.WithField("process_id", processID).Info("Feed refresh submitted")
		return c.JSON(http.StatusAccepted, acceptedResponse(processID, "Job feed refresh accepted for processing"))
	}
}

// ImportJobsHandler handles POST /api/v1/jobs/import. Imported listings are
// appended unless replace is set; IDs already in the catalog are skipped.
func ImportJobsHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		var req ImportJobsRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, requestID, utils.NewBadRequestError("Invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return respondError(c, requestID, toCustomError(err))
		}

		added := cat.Merge(feed.MapListings(req.Jobs), req.Replace)

		logger.WithFields(map[string]interface{}{
			"received": len(req.Jobs),
			"added":    added,
			"replace":  req.Replace,
		}).Info("Jobs imported")

		return c.JSON(http.StatusOK, map[string]interface{}{
			"received":   len(req.Jobs),
			"added":      added,
			"total":      cat.Len(),
			"request_id": requestID,
			"timestamp":  time.Now(),
		})
	}
}

// MatchHandler handles POST /api/v1/match
func MatchHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, logger := requestLogger(c)

		var req models.MatchRequest
		if err := c.Bind(&req); err != nil {
			return respondError(c, requestID, utils.NewBadRequestError("Invalid request format"))
		}
		if err := validate.Struct(&req); err != nil {
			return respondError(c, requestID, toCustomError(err))
		}

		jobs := matching.MatchJobs(req.Skills, cat.List())

		logger.WithFields(map[string]interface{}{
			"skills":  len(req.Skills),
			"matches": len(jobs),
		}).Info("Skill match completed")

		return c.JSON(http.StatusOK, models.MatchResponse{Jobs: jobs, Total: len(jobs), RequestID: requestID})
	}
}
