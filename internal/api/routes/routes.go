package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobright-api/internal/api/handlers"
	"jobright-api/internal/api/middleware"
	"jobright-api/internal/background"
	"jobright-api/internal/config"
	"jobright-api/internal/dashboard"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/resume"
	"jobright-api/internal/storage"
)

// Services are the dependencies the routes are wired to
type Services struct {
	Catalog     *catalog.Catalog
	Store       storage.Store
	Parser      *resume.Parser
	TaskManager background.TaskManager
	Dashboard   *dashboard.Service
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svc Services) {
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig(cfg.Server.AllowedOrigins))
	e.Use(middleware.RequestValidation(svc.Parser.MaxSize() + 1<<20))
	if cfg.Server.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(cfg.Server.BodyLimit))
	}
	e.Use(middleware.TimeoutConfig(cfg.Server.WriteTimeout))

	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(svc.Store, svc.TaskManager, svc.Catalog))
		health.GET("/live", handlers.LivenessHandler)
	}

	v1 := e.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", handlers.ListJobsHandler(svc.Catalog))
			jobs.GET("/filters", handlers.FilterOptionsHandler)
			jobs.POST("/search", handlers.SearchJobsHandler(svc.Catalog, svc.Store))
			jobs.POST("/refresh", handlers.RefreshJobsHandler(svc.TaskManager))
			jobs.POST("/import", handlers.ImportJobsHandler(svc.Catalog))
			jobs.GET("/:id", handlers.GetJobHandler(svc.Catalog))
		}

		v1.POST("/match", handlers.MatchHandler(svc.Catalog))

		users := v1.Group("/users/:userId")
		{
			users.POST("/resume", handlers.UploadResumeHandler(svc.Parser, svc.TaskManager))
			users.GET("/resume", handlers.GetResumeHandler(svc.Store, svc.Catalog))
			users.GET("/saved-jobs", handlers.ListSavedJobsHandler(svc.Store))
			users.POST("/saved-jobs", handlers.SaveJobHandler(svc.Store, svc.Catalog))
			users.DELETE("/saved-jobs/:jobId", handlers.RemoveSavedJobHandler(svc.Store))
			users.GET("/dashboard", handlers.DashboardHandler(svc.Dashboard))
		}

		tasks := v1.Group("/tasks")
		{
			tasks.GET("", handlers.ListTasksHandler(svc.TaskManager))
			tasks.GET("/:processId", handlers.TaskStatusHandler(svc.TaskManager))
		}
	}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "JobRight API",
			"version": handlers.Version,
			"status":  "running",
		})
	})
}
