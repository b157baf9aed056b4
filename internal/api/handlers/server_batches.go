package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/LeiffK/QAi/internal/pkg/errors"
	"github.com/LeiffK/QAi/internal/quality"
)

// ListBatches handles GET /batches.
func (s *Server) ListBatches(c *gin.Context) {
	ds := s.dataset.Current()
	batches, err := s.filteredBatches(c, ds)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": batches,
		"total": len(batches),
	})
}

// GetBatch handles GET /batches/:id, returning the enriched view model.
func (s *Server) GetBatch(c *gin.Context) {
	ds := s.dataset.Current()
	id := c.Param("id")

	b, ok := ds.Batch(id)
	if !ok {
		_ = c.Error(apperrors.ErrBatchNotFoundf(id))
		return
	}

	c.JSON(http.StatusOK, quality.BuildBatchViewModel(ds, *b))
}
