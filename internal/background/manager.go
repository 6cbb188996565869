package background

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobright-api/internal/config"
	"jobright-api/internal/feed"
	"jobright-api/internal/jobs/catalog"
	"jobright-api/internal/logging"
	"jobright-api/internal/logging/types"
	"jobright-api/internal/resume"
	"jobright-api/internal/storage"
)

// Task manager configuration constants
const (
	DefaultMaxWorkers   = 4
	DefaultMaxQueueSize = 100

	MinWorkers   = 1
	MinQueueSize = 1

	MaxWorkers   = 1000
	MaxQueueSize = 10000
)

// TaskManager defines the interface for managing background tasks
type TaskManager interface {
	Start(ctx context.Context) error
	// Stop stops the task manager, waiting for running tasks until ctx expires
	Stop(ctx context.Context) error

	// SubmitParseResume queues a resume for parsing; the result is stored for userID
	SubmitParseResume(ctx context.Context, processID, userID string, upload resume.Upload) error
	// SubmitFeedRefresh queues a refresh of the job catalog from the remote feed
	SubmitFeedRefresh(ctx context.Context, processID string) error

	GetTaskResult(ctx context.Context, processID string) (*TaskResult, error)
	GetTaskStatus(ctx context.Context, processID string) (TaskStatus, error)
	ListTasks(ctx context.Context) ([]*TaskResult, error)

	IsHealthy() bool
}

// FeedFetcher is the part of the feed client used by refresh tasks
type FeedFetcher interface {
	Fetch(ctx context.Context) (*feed.Result, error)
}

// Dependencies are the services tasks operate on
type Dependencies struct {
	Parser  *resume.Parser
	Store   storage.Store
	Catalog *catalog.Catalog
	Feed    FeedFetcher
	// CompletionLogger defaults to one writing to stdout
	CompletionLogger *TaskCompletionLogger
}

// TaskManagerImpl implements the TaskManager interface
type TaskManagerImpl struct {
	config       *config.Config
	deps         Dependencies
	store        TaskStore
	logger       *TaskCompletionLogger
	appLogger    types.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	mu           sync.RWMutex
	running      bool
	taskChan     chan *TaskExecution
	maxWorkers   int
	maxQueueSize int
}

// TaskExecution is a queued unit of work
type TaskExecution struct {
	ProcessID   string
	Type        TaskType
	ExecuteFunc func(context.Context) (interface{}, error)
}

// validateTaskManagerConfig validates and returns safe configuration values
func validateTaskManagerConfig(cfg *config.Config) (maxWorkers, maxQueueSize int, err error) {
	maxWorkers = cfg.Workers.PoolSize
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	} else if maxWorkers < MinWorkers {
		return 0, 0, fmt.Errorf("worker pool size (%d) is below minimum (%d)", maxWorkers, MinWorkers)
	} else if maxWorkers > MaxWorkers {
		return 0, 0, fmt.Errorf("worker pool size (%d) exceeds maximum (%d)", maxWorkers, MaxWorkers)
	}

	maxQueueSize = cfg.Workers.QueueSize
	if maxQueueSize <= 0 {
		maxQueueSize = DefaultMaxQueueSize
	} else if maxQueueSize < MinQueueSize {
		return 0, 0, fmt.Errorf("queue size (%d) is below minimum (%d)", maxQueueSize, MinQueueSize)
	} else if maxQueueSize > MaxQueueSize {
		return 0, 0, fmt.Errorf("queue size (%d) exceeds maximum (%d)", maxQueueSize, MaxQueueSize)
	}

	return maxWorkers, maxQueueSize, nil
}

// NewTaskManager creates a new task manager
func NewTaskManager(cfg *config.Config, deps Dependencies) *TaskManagerImpl {
	logger := logging.GetGlobalLogger()

	maxWorkers, maxQueueSize, err := validateTaskManagerConfig(cfg)
	if err != nil {
		logger.Warn("Task manager configuration validation failed, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		maxWorkers = DefaultMaxWorkers
		maxQueueSize = DefaultMaxQueueSize
	}

	logger.Info("Task manager configuration initialized", map[string]interface{}{
		"max_workers":    maxWorkers,
		"max_queue_size": maxQueueSize,
		"using_defaults": err != nil,
	})

	completion := deps.CompletionLogger
	if completion == nil {
		completion = NewTaskCompletionLogger()
	}

	return &TaskManagerImpl{
		config:       cfg,
		deps:         deps,
		store:        NewInMemoryTaskStore(),
		logger:       completion,
		appLogger:    logger,
		maxWorkers:   maxWorkers,
		maxQueueSize: maxQueueSize,
	}
}

// Start starts the workers and the cleanup routine
func (tm *TaskManagerImpl) Start(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.running {
		return fmt.Errorf("task manager already running")
	}

	tm.ctx, tm.cancel = context.WithCancel(ctx)
	tm.taskChan = make(chan *TaskExecution, tm.maxQueueSize)
	tm.running = true

	for i := 0; i < tm.maxWorkers; i++ {
		tm.wg.Add(1)
		go tm.worker(i)
	}

	if tm.config.BackgroundTasks.CleanupInterval > 0 {
		tm.wg.Add(1)
		go tm.cleanupRoutine()
	}

	tm.appLogger.Info("Task manager started", map[string]interface{}{
		"max_workers": tm.maxWorkers,
	})
	return nil
}

// Stop cancels running tasks and marks queued ones as failed
func (tm *TaskManagerImpl) Stop(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !tm.running {
		return nil
	}

	tm.appLogger.Info("Stopping task manager...", map[string]interface{}{})

	tm.cancel()
	close(tm.taskChan)

	done := make(chan struct{})
	go func() {
		tm.wg.Wait()
		close(done)
	}()

	var err error
	select {
	case <-done:
		tm.appLogger.Info("Task manager stopped gracefully", map[string]interface{}{})
	case <-ctx.Done():
		tm.appLogger.Warn("Task manager shutdown timed out", map[string]interface{}{})
		err = ctx.Err()
	}

	// anything still queued never ran
	for task := range tm.taskChan {
		tm.finish(task, nil, fmt.Errorf("task manager stopped before the task ran"), 0)
	}

	tm.running = false
	return err
}

// SubmitParseResume queues a resume parse
func (tm *TaskManagerImpl) SubmitParseResume(ctx context.Context, processID, userID string, upload resume.Upload) error {
	metadata := map[string]interface{}{
		"user_id":   userID,
		"file_name": upload.FileName,
		"file_size": len(upload.Content),
	}

	return tm.submit(ctx, processID, TaskTypeParseResume, metadata, func(execCtx context.Context) (interface{}, error) {
		return tm.executeParseResume(execCtx, processID, userID, upload)
	})
}

// SubmitFeedRefresh queues a catalog refresh
func (tm *TaskManagerImpl) SubmitFeedRefresh(ctx context.Context, processID string) error {
	metadata := map[string]interface{}{
		"feed_url": tm.config.Feed.URL,
	}

	return tm.submit(ctx, processID, TaskTypeRefreshFeed, metadata, func(execCtx context.Context) (interface{}, error) {
		return tm.executeFeedRefresh(execCtx, processID)
	})
}

func (tm *TaskManagerImpl) submit(ctx context.Context, processID string, taskType TaskType, metadata map[string]interface{}, fn func(context.Context) (interface{}, error)) error {
	// held across the send so Stop cannot close the channel underneath us
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	if !tm.running || tm.ctx.Err() != nil {
		return ErrNotRunning
	}

	result := &TaskResult{
		ProcessID: processID,
		Type:      taskType,
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
		Metadata:  metadata,
	}

	if err := tm.store.Store(ctx, result); err != nil {
		return fmt.Errorf("failed to store task result: %w", err)
	}

	execution := &TaskExecution{
		ProcessID:   processID,
		Type:        taskType,
		ExecuteFunc: fn,
	}

	select {
	case tm.taskChan <- execution:
		tm.logger.LogTaskAccepted(processID, taskType)
		return nil
	case <-ctx.Done():
		tm.store.Delete(context.Background(), processID)
		return ctx.Err()
	default:
		tm.store.Delete(context.Background(), processID)
		return ErrQueueFull
	}
}

// GetTaskResult retrieves the result of a task by process ID
func (tm *TaskManagerImpl) GetTaskResult(ctx context.Context, processID string) (*TaskResult, error) {
	return tm.store.Get(ctx, processID)
}

// GetTaskStatus retrieves the status of a task by process ID
func (tm *TaskManagerImpl) GetTaskStatus(ctx context.Context, processID string) (TaskStatus, error) {
	result, err := tm.store.Get(ctx, processID)
	if err != nil {
		return "", err
	}
	return result.Status, nil
}

// ListTasks lists all known tasks, newest first
func (tm *TaskManagerImpl) ListTasks(ctx context.Context) ([]*TaskResult, error) {
	return tm.store.List(ctx)
}

// IsHealthy checks if the task manager is accepting work
func (tm *TaskManagerImpl) IsHealthy() bool {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.running && tm.ctx.Err() == nil
}

// QueueDepth returns the number of tasks waiting for a worker
func (tm *TaskManagerImpl) QueueDepth() int {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	if tm.taskChan == nil {
		return 0
	}
	return len(tm.taskChan)
}

func (tm *TaskManagerImpl) worker(workerID int) {
	defer tm.wg.Done()

	tm.appLogger.Debug("Task worker started", map[string]interface{}{
		"worker_id": workerID,
	})

	for {
		select {
		case <-tm.ctx.Done():
			return
		case task, ok := <-tm.taskChan:
			if !ok {
				return
			}
			tm.processTask(workerID, task)
		}
	}
}

func (tm *TaskManagerImpl) processTask(workerID int, task *TaskExecution) {
	startTime := time.Now()

	tm.appLogger.Info("Processing task", map[string]interface{}{
		"worker_id":  workerID,
		"process_id": task.ProcessID,
		"task_type":  task.Type,
	})

	if err := tm.updateTaskStatus(task.ProcessID, TaskStatusProcessing); err != nil {
		tm.appLogger.Error("Failed to update task status to processing", map[string]interface{}{
			"process_id": task.ProcessID,
			"error":      err.Error(),
		})
	}

	tm.logger.LogTaskStart(task.ProcessID, task.Type)

	var (
		taskCtx context.Context
		cancel  context.CancelFunc
	)
	if timeout := tm.config.BackgroundTasks.TaskTimeout; timeout > 0 {
		taskCtx, cancel = context.WithTimeout(tm.ctx, timeout)
	} else {
		taskCtx, cancel = context.WithCancel(tm.ctx)
	}
	defer cancel()

	data, err := task.ExecuteFunc(taskCtx)
	tm.finish(task, data, err, time.Since(startTime))
}

// finish records the terminal state of a task
func (tm *TaskManagerImpl) finish(task *TaskExecution, data interface{}, err error, processingTime time.Duration) {
	result, getErr := tm.store.Get(context.Background(), task.ProcessID)
	if getErr != nil {
		tm.appLogger.Error("Failed to retrieve task result for completion", map[string]interface{}{
			"process_id": task.ProcessID,
			"error":      getErr.Error(),
		})
		return
	}

	completedAt := time.Now()
	result.CompletedAt = &completedAt
	result.ProcessingTime = &processingTime

	if err != nil {
		result.Status = TaskStatusFailure
		result.Error = err.Error()
		tm.logger.LogTaskError(task.ProcessID, task.Type, err)
	} else {
		result.Status = TaskStatusSuccess
		result.Data = data
		tm.logger.LogTaskSuccess(task.ProcessID, task.Type, processingTime)
	}

	if err := tm.store.Update(context.Background(), result); err != nil {
		tm.appLogger.Error("Failed to store task result", map[string]interface{}{
			"process_id": task.ProcessID,
			"error":      err.Error(),
		})
	}

	if err := tm.logger.LogTaskCompletion(result); err != nil {
		tm.appLogger.Error("Failed to log task completion", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (tm *TaskManagerImpl) updateTaskStatus(processID string, status TaskStatus) error {
	result, err := tm.store.Get(context.Background(), processID)
	if err != nil {
		return err
	}

	result.Status = status
	return tm.store.Update(context.Background(), result)
}

func (tm *TaskManagerImpl) cleanupRoutine() {
	defer tm.wg.Done()

	ticker := time.NewTicker(tm.config.BackgroundTasks.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-tm.ctx.Done():
			return
		case <-ticker.C:
			tm.cleanup()
		}
	}
}

func (tm *TaskManagerImpl) cleanup() {
	maxAge := tm.config.BackgroundTasks.MaxTaskAge
	if maxAge <= 0 {
		return
	}

	removed, err := tm.store.Cleanup(context.Background(), maxAge)
	if err != nil {
		tm.appLogger.Error("Failed to cleanup old tasks", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if removed > 0 {
		tm.appLogger.Info("Cleaned up old tasks", map[string]interface{}{
			"removed": removed,
			"max_age": maxAge.String(),
		})
	}
}

func (tm *TaskManagerImpl) executeParseResume(ctx context.Context, processID, userID string, upload resume.Upload) (interface{}, error) {
	if tm.deps.Parser == nil || tm.deps.Store == nil {
		return nil, fmt.Errorf("resume parsing is not configured")
	}

	if err := simulateLatency(ctx, tm.config.Simulation.ResumeParseDelay); err != nil {
		return nil, err
	}

	parsed, err := tm.deps.Parser.Parse(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}

	if err := tm.deps.Store.PutResume(ctx, userID, parsed); err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	tm.appLogger.Info("Resume parsed", map[string]interface{}{
		"process_id": processID,
		"user_id":    userID,
		"skills":     len(parsed.Skills),
	})

	return &ParseResumeTaskData{UserID: userID, Resume: parsed}, nil
}

func (tm *TaskManagerImpl) executeFeedRefresh(ctx context.Context, processID string) (interface{}, error) {
	if tm.deps.Feed == nil || tm.deps.Catalog == nil {
		return nil, fmt.Errorf("feed refresh is not configured")
	}

	if err := simulateLatency(ctx, tm.config.Simulation.FeedRefreshDelay); err != nil {
		return nil, err
	}

	res, err := tm.deps.Feed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	if err := tm.deps.Catalog.Replace(res.Jobs); err != nil {
		return nil, fmt.Errorf("failed to replace catalog: %w", err)
	}

	tm.appLogger.Info("Catalog refreshed", map[string]interface{}{
		"process_id":    processID,
		"jobs":          len(res.Jobs),
		"from_fallback": res.FromFallback,
	})

	return &RefreshFeedTaskData{
		JobCount:     len(res.Jobs),
		FromFallback: res.FromFallback,
		RefreshedAt:  res.FetchedAt,
	}, nil
}

// simulateLatency waits d or until ctx is done
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
