package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLiveness handles GET /health/live.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadiness handles GET /health/ready. Ready means a dataset snapshot is
// published; regeneration in flight does not degrade readiness because reads
// keep serving the previous snapshot.
func (s *Server) GetReadiness(c *gin.Context) {
	checks := make(map[string]string)

	status := "ok"
	httpStatus := http.StatusOK
	if s.dataset.Current() == nil {
		checks["dataset"] = "missing"
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["dataset"] = "ok"
	}

	c.JSON(httpStatus, gin.H{
		"status": status,
		"checks": checks,
	})
}
