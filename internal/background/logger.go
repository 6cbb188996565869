package background

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"jobright-api/internal/logging"
	"jobright-api/internal/logging/types"
)

// TaskCompletionLogger handles structured logging for task lifecycle events
type TaskCompletionLogger struct {
	logger types.Logger
	mu     sync.Mutex
	out    io.Writer
}

// NewTaskCompletionLogger creates a logger that writes completion records to stdout
func NewTaskCompletionLogger() *TaskCompletionLogger {
	return NewTaskCompletionLoggerWithWriter(os.Stdout)
}

// NewTaskCompletionLoggerWithWriter writes completion records to w; nil disables them
func NewTaskCompletionLoggerWithWriter(w io.Writer) *TaskCompletionLogger {
	return &TaskCompletionLogger{
		logger: logging.GetGlobalLogger(),
		out:    w,
	}
}

// TaskCompletionLog represents the structured log entry for task completion
type TaskCompletionLog struct {
	ProcessID      string                 `json:"process_id"`
	Status         string                 `json:"status"`
	Data           interface{}            `json:"data,omitempty"`
	Error          string                 `json:"error,omitempty"`
	Timestamp      time.Time              `json:"timestamp"`
	Operation      string                 `json:"operation"`
	ProcessingTime string                 `json:"processing_time"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// CreateTaskCompletionLog creates a TaskCompletionLog from a TaskResult
func CreateTaskCompletionLog(result *TaskResult) *TaskCompletionLog {
	processingTime := "0s"
	if result.ProcessingTime != nil {
		processingTime = result.ProcessingTime.String()
	}

	return &TaskCompletionLog{
		ProcessID:      result.ProcessID,
		Status:         string(result.Status),
		Data:           result.Data,
		Error:          result.Error,
		Timestamp:      time.Now(),
		Operation:      string(result.Type),
		ProcessingTime: processingTime,
		Metadata:       result.Metadata,
	}
}

// LogTaskCompletion writes one JSON line per finished task, so log shippers can
// pick results up without polling the API
func (l *TaskCompletionLogger) LogTaskCompletion(result *TaskResult) error {
	entry := CreateTaskCompletionLog(result)

	if l.out != nil {
		jsonData, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal task completion log: %w", err)
		}

		l.mu.Lock()
		_, err = l.out.Write(append(jsonData, '\n'))
		l.mu.Unlock()
		if err != nil {
			return fmt.Errorf("failed to write task completion log: %w", err)
		}
	}

	l.logger.Info("Background task completed", map[string]interface{}{
		"process_id":      result.ProcessID,
		"status":          result.Status,
		"operation":       result.Type,
		"processing_time": entry.ProcessingTime,
	})

	return nil
}

// LogTaskAccepted logs when a task is accepted for processing
func (l *TaskCompletionLogger) LogTaskAccepted(processID string, taskType TaskType) {
	l.logger.Info("Background task accepted", map[string]interface{}{
		"process_id": processID,
		"operation":  taskType,
		"status":     TaskStatusAccepted,
	})
}

// LogTaskStart logs when a task starts processing
func (l *TaskCompletionLogger) LogTaskStart(processID string, taskType TaskType) {
	l.logger.Info("Background task started", map[string]interface{}{
		"process_id": processID,
		"operation":  taskType,
		"status":     TaskStatusProcessing,
	})
}

// LogTaskError logs task errors during processing
func (l *TaskCompletionLogger) LogTaskError(processID string, taskType TaskType, err error) {
	l.logger.Error("Background task failed", map[string]interface{}{
		"process_id": processID,
		"operation":  taskType,
		"status":     TaskStatusFailure,
		"error":      err.Error(),
	})
}

// LogTaskSuccess logs successful task completion
func (l *TaskCompletionLogger) LogTaskSuccess(processID string, taskType TaskType, processingTime time.Duration) {
	l.logger.Info("Background task completed successfully", map[string]interface{}{
		"process_id":      processID,
		"operation":       taskType,
		"status":          TaskStatusSuccess,
		"processing_time": processingTime.String(),
	})
}
