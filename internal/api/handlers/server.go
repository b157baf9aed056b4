// Package handlers implements the HTTP handlers of the QAi dashboard API.
//
// Handlers stay thin: they resolve the filter state for the request, call
// into the quality core or the services, and attach any error via c.Error()
// for the centralized error handler middleware.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeiffK/QAi/internal/api/middleware"
	"github.com/LeiffK/QAi/internal/config"
	apperrors "github.com/LeiffK/QAi/internal/pkg/errors"
	"github.com/LeiffK/QAi/internal/pkg/worker"
	"github.com/LeiffK/QAi/internal/quality"
	"github.com/LeiffK/QAi/internal/service"
	"github.com/LeiffK/QAi/internal/uistate"
)

// Server holds all handler dependencies.
type Server struct {
	cfg      *config.Config
	dataset  *service.DatasetService
	reports  *service.ReportService
	sessions *uistate.Store
	pools    *worker.Pools

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// ServerDeps holds all dependencies for creating a Server.
type ServerDeps struct {
	Config   *config.Config
	Dataset  *service.DatasetService
	Reports  *service.ReportService
	Sessions *uistate.Store
	Pools    *worker.Pools
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		cfg:      deps.Config,
		dataset:  deps.Dataset,
		reports:  deps.Reports,
		sessions: deps.Sessions,
		pools:    deps.Pools,
		now:      time.Now,
	}
}

// sessionState returns the UI state for the calling session.
func (s *Server) sessionState(c *gin.Context) uistate.State {
	return s.sessions.Get(middleware.GetSessionID(c.Request.Context()))
}

// filterState resolves the filters and brush for the request. It starts from
// the caller's session state and overrides from query parameters; a request
// without any filter params sees exactly what the session has stored.
func (s *Server) filterState(c *gin.Context, ds *quality.Dataset) (quality.Filters, quality.BrushSelection, error) {
	state := s.sessionState(c)
	f := state.Filters
	brush := state.Brush

	if v, ok := c.GetQuery("range"); ok {
		tr := quality.TimeRange(v)
		if !quality.ValidTimeRange(tr) {
			return f, brush, apperrors.New(apperrors.CodeInvalidTimeRange,
				"unknown time range selector", http.StatusBadRequest).
				WithParams(map[string]interface{}{"range": v})
		}
		f.TimeRange = tr
	}
	if v, ok := c.GetQuery("shift"); ok {
		sh := quality.Shift(v)
		if !quality.ValidShift(sh) {
			return f, brush, apperrors.New(apperrors.CodeInvalidShift,
				"unknown shift", http.StatusBadRequest).
				WithParams(map[string]interface{}{"shift": v})
		}
		f.Shift = sh
	}
	if v, ok := c.GetQuery("plant"); ok {
		if _, found := ds.Plant(v); !found {
			return f, brush, apperrors.NotFound(apperrors.CodePlantNotFound, "plant not found")
		}
		f.PlantID = v
	}
	if v, ok := c.GetQuery("line"); ok {
		if _, found := ds.Line(v); !found {
			return f, brush, apperrors.NotFound(apperrors.CodeLineNotFound, "line not found")
		}
		f.LineID = v
	}
	if v, ok := c.GetQuery("product"); ok {
		if _, found := ds.Product(v); !found {
			return f, brush, apperrors.NotFound(apperrors.CodeProductNotFound, "product not found")
		}
		f.ProductID = v
	}
	if v, ok := c.GetQuery("supplier"); ok {
		if _, found := ds.Supplier(v); !found {
			return f, brush, apperrors.NotFound(apperrors.CodeSupplierNotFound, "supplier not found")
		}
		f.SupplierID = v
	}
	if v, ok := c.GetQuery("q"); ok {
		f.SearchTerm = v
	}

	var err error
	if f.CustomStart, err = queryTime(c, "from", f.CustomStart); err != nil {
		return f, brush, err
	}
	if f.CustomEnd, err = queryTime(c, "to", f.CustomEnd); err != nil {
		return f, brush, err
	}
	if brush.Start, err = queryTime(c, "brush_start", brush.Start); err != nil {
		return f, brush, err
	}
	if brush.End, err = queryTime(c, "brush_end", brush.End); err != nil {
		return f, brush, err
	}

	return f, brush, nil
}

// queryTime parses an RFC 3339 query parameter, keeping the fallback when
// the parameter is absent.
func queryTime(c *gin.Context, name string, fallback *time.Time) (*time.Time, error) {
	v, ok := c.GetQuery(name)
	if !ok {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidDate,
			"invalid timestamp, expected RFC 3339", http.StatusBadRequest).
			WithParams(map[string]interface{}{"param": name})
	}
	return &t, nil
}

// filteredBatches applies the resolved filter state to the snapshot's
// batches, mapping the incomplete-custom-range error to the API envelope.
func (s *Server) filteredBatches(c *gin.Context, ds *quality.Dataset) ([]quality.Batch, error) {
	f, brush, err := s.filterState(c, ds)
	if err != nil {
		return nil, err
	}
	batches, err := quality.FilterBatches(ds, ds.Batches, f, brush, s.now())
	if err != nil {
		return nil, apperrors.ErrInvalidCustomRangef()
	}
	return batches, nil
}
