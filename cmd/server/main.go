package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"jobright-api/internal/api/routes"
	"jobright-api/internal/background"
	"jobright-api/internal/config"
	"jobright-api/internal/dashboard"
	"jobright-api/internal/feed"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/logging"
	"jobright-api/internal/resume"
	"jobright-api/internal/storage"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting JobRight API", map[string]interface{}{
		"storage_backend": cfg.Storage.Backend,
		"feed_url":        cfg.Feed.URL,
	})

	jobCatalog, err := catalog.NewWithSampleJobs()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load sample jobs")
	}

	store, err := storage.New(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create store")
	}
	defer store.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		logger.WithError(err).Warn("Store is not reachable yet")
	}
	cancelPing()

	parser := resume.NewParser(cfg.Resume.MaxFileSize)

	logger.Info("Initializing background task manager")
	taskManager := background.NewTaskManager(cfg, background.Dependencies{
		Parser:  parser,
		Store:   store,
		Catalog: jobCatalog,
		Feed:    feed.NewClient(cfg),
	})
	if err := taskManager.Start(context.Background()); err != nil {
		logger.WithError(err).Fatal("Failed to start task manager")
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	routes.SetupRoutes(e, cfg, routes.Services{
		Catalog:     jobCatalog,
		Store:       store,
		Parser:      parser,
		TaskManager: taskManager,
		Dashboard:   dashboard.New(store, jobCatalog),
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error shutting down server")
		}

		logger.Info("Stopping background task manager...")
		if err := taskManager.Stop(shutdownCtx); err != nil {
			logger.WithError(err).Error("Error stopping task manager")
		}

		logger.Info("Server shutdown complete")
	}()

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("address", address).Info("Server starting")

	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
