package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetQualityReport handles GET /reports/quality.csv, rendering the current
// filtered batch set as a download.
func (s *Server) GetQualityReport(c *gin.Context) {
	ds := s.dataset.Current()
	batches, err := s.filteredBatches(c, ds)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out, err := s.reports.QualityCSV(c.Request.Context(), ds, batches)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="qualitaetsbericht.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}
