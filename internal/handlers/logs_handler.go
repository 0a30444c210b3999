package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/emel-water/emel-api/pkg/logger"
	"github.com/emel-water/emel-api/pkg/metrics"
	"go.uber.org/zap"
)

type LogsHandler struct {
	logDir string
	mu     sync.Mutex
}

type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

type LogBatchRequest struct {
	Logs []LogEntry `json:"logs" binding:"required,max=100,dive"`
}

func NewLogsHandler(logDir string) *LogsHandler {
	return &LogsHandler{
		logDir: logDir,
	}
}

// ReceiveFrontendLogs handles POST /api/logs. The landing page reports its
// client-side errors here so browser failures leave a trace next to ours.
func (h *LogsHandler) ReceiveFrontendLogs(c *gin.Context) {
	var req LogBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.FrontendLogBatches.WithLabelValues("rejected").Inc()
		attachError(c, err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"details": ParseValidationErrors(err),
		})
		return
	}

	if len(req.Logs) == 0 {
		metrics.FrontendLogBatches.WithLabelValues("rejected").Inc()
		respondFailure(c, http.StatusBadRequest, "No logs provided", nil)
		return
	}

	if err := h.writeLogsToFile(req.Logs); err != nil {
		metrics.FrontendLogBatches.WithLabelValues("error").Inc()
		logger.Error("Failed to write frontend logs", zap.Error(err))
		respondFailure(c, http.StatusInternalServerError, "Failed to write logs", err)
		return
	}

	metrics.FrontendLogBatches.WithLabelValues("success").Inc()
	logger.Info("Received frontend logs", zap.Int("count", len(req.Logs)))
	c.JSON(http.StatusOK, gin.H{"success": true, "received": len(req.Logs)})
}

func (h *LogsHandler) writeLogsToFile(logs []LogEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(h.logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(h.logDir, "frontend.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open frontend log file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, entry := range logs {
		// Reformat to match the backend log line shape
		logLine := map[string]interface{}{
			"ts":      entry.Timestamp,
			"level":   entry.Level,
			"msg":     entry.Message,
			"service": "landing",
		}

		if entry.Context != nil {
			for k, v := range entry.Context {
				logLine[k] = v
			}
		}

		if err := encoder.Encode(logLine); err != nil {
			return fmt.Errorf("failed to encode log entry: %w", err)
		}
	}

	return nil
}
