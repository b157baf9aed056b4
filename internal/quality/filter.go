package quality

import (
	"errors"
	"strings"
	"time"
)

// TimeRange is the coarse dashboard time window selector.
type TimeRange string

// Supported time ranges.
const (
	Range24h    TimeRange = "24h"
	Range7d     TimeRange = "7d"
	Range30d    TimeRange = "30d"
	RangeCustom TimeRange = "custom"
)

// ValidTimeRange reports whether r is a known range selector.
func ValidTimeRange(r TimeRange) bool {
	switch r {
	case Range24h, Range7d, Range30d, RangeCustom:
		return true
	}
	return false
}

// ErrCustomRangeIncomplete is returned when the custom time range is
// selected without both bounds. The original dashboard silently fell back to
// an empty now/now window here; that was a bug, not behavior to keep.
var ErrCustomRangeIncomplete = errors.New("custom time range requires both start and end")

// Filters constrains which batches and time-series points are considered.
// Nil/empty fields impose no constraint; active fields combine with AND.
type Filters struct {
	PlantID    string    `json:"plantId,omitempty"`
	LineID     string    `json:"lineId,omitempty"`
	ProductID  string    `json:"productId,omitempty"`
	Shift      Shift     `json:"shift,omitempty"`
	SupplierID string    `json:"supplierId,omitempty"`
	TimeRange  TimeRange `json:"timeRange"`

	CustomStart *time.Time `json:"customStartDate,omitempty"`
	CustomEnd   *time.Time `json:"customEndDate,omitempty"`

	// SearchTerm matches case-insensitively against batch id, lot number,
	// and resolved product name.
	SearchTerm string `json:"searchTerm,omitempty"`
}

// DefaultFilters is the unconstrained 30 day view.
func DefaultFilters() Filters {
	return Filters{TimeRange: Range30d}
}

// BrushSelection is an explicit user-dragged chart window. When both bounds
// are set it overrides the Filters time range.
type BrushSelection struct {
	Start *time.Time `json:"startDate"`
	End   *time.Time `json:"endDate"`
}

// Active reports whether the brush overrides the coarse time range.
func (b BrushSelection) Active() bool {
	return b.Start != nil && b.End != nil
}

// DateWindow is a resolved inclusive [Start, End] time window.
type DateWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the window, bounds inclusive.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveDateWindow maps the coarse time range to a concrete window ending
// now. A custom range with missing bounds is an error.
func ResolveDateWindow(timeRange TimeRange, customStart, customEnd *time.Time, now time.Time) (DateWindow, error) {
	switch timeRange {
	case Range24h:
		return DateWindow{Start: now.Add(-24 * time.Hour), End: now}, nil
	case Range7d:
		return DateWindow{Start: now.AddDate(0, 0, -7), End: now}, nil
	case Range30d:
		return DateWindow{Start: now.AddDate(0, 0, -30), End: now}, nil
	case RangeCustom:
		if customStart == nil || customEnd == nil {
			return DateWindow{}, ErrCustomRangeIncomplete
		}
		return DateWindow{Start: *customStart, End: *customEnd}, nil
	default:
		// Unknown selectors behave like the default dashboard window.
		return DateWindow{Start: now.AddDate(0, 0, -30), End: now}, nil
	}
}

// effectiveWindow applies the brush override, then the coarse range.
func effectiveWindow(f Filters, brush BrushSelection, now time.Time) (DateWindow, error) {
	if brush.Active() {
		return DateWindow{Start: *brush.Start, End: *brush.End}, nil
	}
	return ResolveDateWindow(f.TimeRange, f.CustomStart, f.CustomEnd, now)
}

// FilterBatches reduces batches to the subset matching the filter state,
// preserving input order. The search term matches batch id, lot number, and
// the product name resolved through ds (when ds is non-nil).
func FilterBatches(ds *Dataset, batches []Batch, f Filters, brush BrushSelection, now time.Time) ([]Batch, error) {
	window, err := effectiveWindow(f, brush, now)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	filtered := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if !window.Contains(b.Timestamp) {
			continue
		}
		if f.PlantID != "" && b.PlantID != f.PlantID {
			continue
		}
		if f.LineID != "" && b.LineID != f.LineID {
			continue
		}
		if f.ProductID != "" && b.ProductID != f.ProductID {
			continue
		}
		if f.Shift != "" && b.Shift != f.Shift {
			continue
		}
		if f.SupplierID != "" && b.SupplierID != f.SupplierID {
			continue
		}
		if search != "" && !matchesSearch(ds, b, search) {
			continue
		}
		filtered = append(filtered, b)
	}
	return filtered, nil
}

func matchesSearch(ds *Dataset, b Batch, search string) bool {
	if strings.Contains(strings.ToLower(b.ID), search) {
		return true
	}
	if strings.Contains(strings.ToLower(b.LotNumber), search) {
		return true
	}
	if ds != nil {
		if product, ok := ds.Product(b.ProductID); ok {
			return strings.Contains(strings.ToLower(product.Name), search)
		}
	}
	return false
}

// FilterTimeSeries reduces points to the filter window. Only line and shift
// narrow the result; points carry no plant, product, or supplier fields.
func FilterTimeSeries(points []TimeSeriesPoint, f Filters, brush BrushSelection, now time.Time) ([]TimeSeriesPoint, error) {
	window, err := effectiveWindow(f, brush, now)
	if err != nil {
		return nil, err
	}

	filtered := make([]TimeSeriesPoint, 0, len(points))
	for _, p := range points {
		if !window.Contains(p.Timestamp) {
			continue
		}
		if f.LineID != "" && p.LineID != f.LineID {
			continue
		}
		if f.Shift != "" && p.Shift != f.Shift {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}
