package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/LeiffK/QAi/internal/pkg/errors"
	"github.com/LeiffK/QAi/internal/quality"
)

// GetKPIs handles GET /kpis over the filtered batch set.
func (s *Server) GetKPIs(c *gin.Context) {
	ds := s.dataset.Current()
	batches, err := s.filteredBatches(c, ds)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, quality.CalculateKPIs(batches).Rounded())
}

// GetTimeSeries handles GET /timeseries. Only line, shift and the time
// window constrain the series; the other filter fields do not apply to it.
func (s *Server) GetTimeSeries(c *gin.Context) {
	ds := s.dataset.Current()
	f, brush, err := s.filterState(c, ds)
	if err != nil {
		_ = c.Error(err)
		return
	}

	points, err := quality.FilterTimeSeries(ds.TimeSeries, f, brush, s.now())
	if err != nil {
		_ = c.Error(apperrors.ErrInvalidCustomRangef())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": points,
		"total": len(points),
	})
}

// GetAlerts handles GET /alerts: enriched batches above the medium defect
// threshold, worst first, with severity counts alongside.
func (s *Server) GetAlerts(c *gin.Context) {
	ds := s.dataset.Current()
	batches, err := s.filteredBatches(c, ds)
	if err != nil {
		_ = c.Error(err)
		return
	}

	alerts := make([]quality.BatchViewModel, 0)
	counts := map[quality.Severity]int{}
	for _, b := range batches {
		if b.DefectRate <= quality.MediumDefectRate {
			continue
		}
		vm := quality.BuildBatchViewModel(ds, b)
		alerts = append(alerts, vm)
		counts[vm.Analysis.Severity]++
	}
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DefectRate > alerts[j].DefectRate
	})

	c.JSON(http.StatusOK, gin.H{
		"items":  alerts,
		"total":  len(alerts),
		"counts": counts,
	})
}

// GetMasterData handles GET /masterdata.
func (s *Server) GetMasterData(c *gin.Context) {
	ds := s.dataset.Current()
	c.JSON(http.StatusOK, gin.H{
		"plants":    ds.Plants,
		"lines":     ds.Lines,
		"products":  ds.Products,
		"suppliers": ds.Suppliers,
	})
}

// Chart endpoints serve the precomputed visualization tables of the current
// snapshot.

func (s *Server) GetSeasonalityChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dataset.Current().Seasonality)
}

func (s *Server) GetShiftMatrixChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dataset.Current().ShiftMatrix)
}

func (s *Server) GetSupplierImpactChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dataset.Current().SupplierImpact)
}

func (s *Server) GetCorrelationChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dataset.Current().Correlation)
}

func (s *Server) GetCauseMapChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dataset.Current().CauseMap)
}

func (s *Server) GetMaintenanceChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.dataset.Current().Maintenance)
}

// GetQualityScore handles GET /score for explicit metric values.
func (s *Server) GetQualityScore(c *gin.Context) {
	defectRate, err := queryFloat(c, "defect_rate")
	if err != nil {
		_ = c.Error(err)
		return
	}
	fpy, err := queryFloat(c, "fpy")
	if err != nil {
		_ = c.Error(err)
		return
	}
	scrapRate, err := queryFloat(c, "scrap_rate")
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score": quality.CalculateQualityScore(defectRate, fpy, scrapRate),
	})
}

func queryFloat(c *gin.Context, name string) (float64, error) {
	v, ok := c.GetQuery(name)
	if !ok {
		return 0, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"missing required parameter").
			WithParams(map[string]interface{}{"param": name})
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"parameter must be a number").
			WithParams(map[string]interface{}{"param": name})
	}
	return f, nil
}
