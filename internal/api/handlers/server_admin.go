package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/LeiffK/QAi/internal/pkg/errors"
	"github.com/LeiffK/QAi/internal/pkg/logger"
)

// RegenerateDataset handles POST /admin/dataset/regenerate. The swap happens
// off-request; 202 means the regeneration was accepted, not finished.
func (s *Server) RegenerateDataset(c *gin.Context) {
	if !s.dataset.Regenerate() {
		_ = c.Error(apperrors.Conflict(apperrors.CodeRegenerateBusy,
			"a dataset regeneration is already in progress"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// GetDatasetInfo handles GET /admin/dataset.
func (s *Server) GetDatasetInfo(c *gin.Context) {
	ds := s.dataset.Current()
	c.JSON(http.StatusOK, gin.H{
		"generatedAt":  ds.GeneratedAt,
		"regenerating": s.dataset.Regenerating(),
		"counts": gin.H{
			"batches":     len(ds.Batches),
			"timeSeries":  len(ds.TimeSeries),
			"maintenance": len(ds.Maintenance),
			"plants":      len(ds.Plants),
			"lines":       len(ds.Lines),
			"products":    len(ds.Products),
			"suppliers":   len(ds.Suppliers),
		},
	})
}

// GetLogLevel handles GET /admin/log/level.
func (s *Server) GetLogLevel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"level": logger.GetLevel().String()})
}

type logLevelRequest struct {
	Level string `json:"level" binding:"required"`
}

// SetLogLevel handles PUT /admin/log/level.
func (s *Server) SetLogLevel(c *gin.Context) {
	var req logLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"level is required", http.StatusBadRequest))
		return
	}
	if err := logger.SetLevel(req.Level); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeInvalidRequestField,
			"unknown log level", http.StatusBadRequest).
			WithParams(map[string]interface{}{"level": req.Level}))
		return
	}
	c.JSON(http.StatusOK, gin.H{"level": logger.GetLevel().String()})
}

// GetWorkerMetrics handles GET /admin/workers.
func (s *Server) GetWorkerMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.pools.Metrics())
}
