package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeiffK/QAi/internal/api/middleware"
	apperrors "github.com/LeiffK/QAi/internal/pkg/errors"
	"github.com/LeiffK/QAi/internal/quality"
	"github.com/LeiffK/QAi/internal/uistate"
)

// GetSession handles GET /session, returning the caller's full UI state.
func (s *Server) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessionState(c))
}

// filtersRequest is the wire form of a filter update. Pointer fields
// distinguish "not sent" from "clear".
type filtersRequest struct {
	PlantID     *string `json:"plantId"`
	LineID      *string `json:"lineId"`
	ProductID   *string `json:"productId"`
	Shift       *string `json:"shift"`
	SupplierID  *string `json:"supplierId"`
	TimeRange   *string `json:"timeRange"`
	CustomStart *string `json:"customStartDate"`
	CustomEnd   *string `json:"customEndDate"`
	SearchTerm  *string `json:"searchTerm"`
}

// UpdateFilters handles POST /session/filters. Sent fields replace the
// session's values; omitted fields keep theirs.
func (s *Server) UpdateFilters(c *gin.Context) {
	var req filtersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid request body", http.StatusBadRequest))
		return
	}

	sid := middleware.GetSessionID(c.Request.Context())
	f := s.sessions.Get(sid).Filters

	if req.PlantID != nil {
		f.PlantID = *req.PlantID
	}
	if req.LineID != nil {
		f.LineID = *req.LineID
	}
	if req.ProductID != nil {
		f.ProductID = *req.ProductID
	}
	if req.SupplierID != nil {
		f.SupplierID = *req.SupplierID
	}
	if req.SearchTerm != nil {
		f.SearchTerm = *req.SearchTerm
	}
	if req.Shift != nil {
		sh := quality.Shift(*req.Shift)
		if *req.Shift != "" && !quality.ValidShift(sh) {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidShift, "unknown shift").
				WithParams(map[string]interface{}{"shift": *req.Shift}))
			return
		}
		f.Shift = sh
	}
	if req.TimeRange != nil {
		tr := quality.TimeRange(*req.TimeRange)
		if !quality.ValidTimeRange(tr) {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidTimeRange, "unknown time range selector").
				WithParams(map[string]interface{}{"range": *req.TimeRange}))
			return
		}
		f.TimeRange = tr
	}
	if req.CustomStart != nil {
		t, err := parseBodyTime(*req.CustomStart, "customStartDate")
		if err != nil {
			_ = c.Error(err)
			return
		}
		f.CustomStart = t
	}
	if req.CustomEnd != nil {
		t, err := parseBodyTime(*req.CustomEnd, "customEndDate")
		if err != nil {
			_ = c.Error(err)
			return
		}
		f.CustomEnd = t
	}

	// A complete custom range must be resolvable before it is stored.
	if f.TimeRange == quality.RangeCustom && (f.CustomStart == nil || f.CustomEnd == nil) {
		_ = c.Error(apperrors.ErrInvalidCustomRangef())
		return
	}

	state := s.sessions.Apply(sid, func(st uistate.State) uistate.State {
		return uistate.SetFilters(st, f)
	})
	c.JSON(http.StatusOK, state)
}

// ResetFilters handles DELETE /session/filters: back to the default view,
// brush included.
func (s *Server) ResetFilters(c *gin.Context) {
	sid := middleware.GetSessionID(c.Request.Context())
	state := s.sessions.Apply(sid, uistate.ResetFilters)
	c.JSON(http.StatusOK, state)
}

type brushRequest struct {
	Start string `json:"startDate" binding:"required"`
	End   string `json:"endDate" binding:"required"`
}

// SetBrush handles POST /session/brush.
func (s *Server) SetBrush(c *gin.Context) {
	var req brushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"brush requires startDate and endDate", http.StatusBadRequest))
		return
	}

	start, err := parseBodyTime(req.Start, "startDate")
	if err != nil {
		_ = c.Error(err)
		return
	}
	end, err := parseBodyTime(req.End, "endDate")
	if err != nil {
		_ = c.Error(err)
		return
	}

	sid := middleware.GetSessionID(c.Request.Context())
	state := s.sessions.Apply(sid, func(st uistate.State) uistate.State {
		return uistate.SetBrush(st, quality.BrushSelection{Start: start, End: end})
	})
	c.JSON(http.StatusOK, state)
}

// ClearBrush handles DELETE /session/brush.
func (s *Server) ClearBrush(c *gin.Context) {
	sid := middleware.GetSessionID(c.Request.Context())
	state := s.sessions.Apply(sid, uistate.ClearBrush)
	c.JSON(http.StatusOK, state)
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ApplyRole handles POST /session/role, loading the role's default view.
func (s *Server) ApplyRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"role is required", http.StatusBadRequest))
		return
	}

	if _, ok := uistate.LookupRole(req.Role); !ok {
		_ = c.Error(apperrors.ErrUnknownRolef(req.Role))
		return
	}

	sid := middleware.GetSessionID(c.Request.Context())
	state := s.sessions.Apply(sid, func(st uistate.State) uistate.State {
		next, _ := uistate.ApplyRole(st, req.Role)
		return next
	})
	c.JSON(http.StatusOK, state)
}

type drawerRequest struct {
	Content string `json:"content" binding:"required"`
	ID      string `json:"id" binding:"required"`
}

// OpenDrawer handles POST /session/drawer. Batch drawers are checked against
// the snapshot so a stale id surfaces as 404 instead of an empty drawer.
func (s *Server) OpenDrawer(c *gin.Context) {
	var req drawerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"drawer requires content and id", http.StatusBadRequest))
		return
	}

	content := uistate.DrawerContent(req.Content)
	ds := s.dataset.Current()
	switch content {
	case uistate.DrawerBatch:
		if _, ok := ds.Batch(req.ID); !ok {
			_ = c.Error(apperrors.ErrBatchNotFoundf(req.ID))
			return
		}
	case uistate.DrawerSupplier:
		if _, ok := ds.Supplier(req.ID); !ok {
			_ = c.Error(apperrors.NotFound(apperrors.CodeSupplierNotFound, "supplier not found"))
			return
		}
	default:
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"drawer content must be batch or supplier").
			WithParams(map[string]interface{}{"content": req.Content}))
		return
	}

	sid := middleware.GetSessionID(c.Request.Context())
	state := s.sessions.Apply(sid, func(st uistate.State) uistate.State {
		return uistate.OpenDrawer(st, content, req.ID)
	})
	c.JSON(http.StatusOK, state)
}

// CloseDrawer handles DELETE /session/drawer.
func (s *Server) CloseDrawer(c *gin.Context) {
	sid := middleware.GetSessionID(c.Request.Context())
	state := s.sessions.Apply(sid, uistate.CloseDrawer)
	c.JSON(http.StatusOK, state)
}

func parseBodyTime(v, field string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidDate,
			"invalid timestamp, expected RFC 3339", http.StatusBadRequest).
			WithParams(map[string]interface{}{"field": field})
	}
	return &t, nil
}
