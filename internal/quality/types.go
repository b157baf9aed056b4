// Package quality implements the analytics core of QAi: the synthetic
// dataset, filtering, KPI aggregation, and batch enrichment.
//
// Every function in this package is pure over its inputs. The dataset is
// immutable once generated, so all operations are safe for concurrent use.
package quality

import "time"

// Shift identifies one of the three production shifts.
type Shift string

// Production shifts. The German labels are domain data consumed verbatim by
// the dashboard frontend.
const (
	ShiftEarly Shift = "Früh"
	ShiftLate  Shift = "Spät"
	ShiftNight Shift = "Nacht"
)

// Shifts lists all shifts in rotation order.
var Shifts = []Shift{ShiftEarly, ShiftLate, ShiftNight}

// ValidShift reports whether s is a known shift label.
func ValidShift(s Shift) bool {
	switch s {
	case ShiftEarly, ShiftLate, ShiftNight:
		return true
	}
	return false
}

// Plant is a production site, the root of the organizational hierarchy.
type Plant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Line is a production line belonging to exactly one plant.
type Line struct {
	ID      string `json:"id"`
	PlantID string `json:"plantId"`
	Name    string `json:"name"`
}

// Product is a catalog entry.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Supplier is a raw-material supplier. One supplier is statistically biased
// at generation time to simulate a quality problem.
type Supplier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Material string `json:"material"`
}

// Defect is one defect-type bucket within a batch's defect breakdown.
type Defect struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Batch is the central transactional record: one produced lot of product.
// Rates are percentages in [0,100]; higher defect rates correlate with lower
// FPY and higher scrap at generation time.
type Batch struct {
	ID         string    `json:"id"`
	PlantID    string    `json:"plantId"`
	LineID     string    `json:"lineId"`
	ProductID  string    `json:"productId"`
	SupplierID string    `json:"supplierId"`
	LotNumber  string    `json:"lotNumber"`
	Timestamp  time.Time `json:"timestamp"`
	Shift      Shift     `json:"shift"`
	DefectRate float64   `json:"defectRate"`
	FPY        float64   `json:"fpy"`
	ScrapRate  float64   `json:"scrapRate"`
	Output     int       `json:"output"`
	Defects    []Defect  `json:"defects"`
}

// TimeSeriesPoint is one synthetic trend sample per (day, line, shift).
// The series is independent of the batch records, not derived from them.
type TimeSeriesPoint struct {
	Timestamp  time.Time `json:"timestamp"`
	DefectRate float64   `json:"defectRate"`
	FPY        float64   `json:"fpy"`
	ScrapRate  float64   `json:"scrapRate"`
	Output     int       `json:"output"`
	LineID     string    `json:"lineId"`
	Shift      Shift     `json:"shift"`
}

// MaintenanceType distinguishes planned from unplanned maintenance.
type MaintenanceType string

// Maintenance event types.
const (
	MaintenancePlanned   MaintenanceType = "Geplant"
	MaintenanceUnplanned MaintenanceType = "Ungeplant"
)

// MaintenanceEvent is a maintenance window on a line, in hours.
type MaintenanceEvent struct {
	ID        string          `json:"id"`
	LineID    string          `json:"lineId"`
	Timestamp time.Time       `json:"timestamp"`
	Type      MaintenanceType `json:"type"`
	Duration  int             `json:"duration"`
}

// BatchAnalysis is the rule-based decision-support bundle attached to an
// enriched batch.
type BatchAnalysis struct {
	Severity Severity `json:"severity"`
	Cause    string   `json:"cause"`
	Measures []string `json:"measures"`
	Risk     string   `json:"risk"`
	Summary  string   `json:"summary"`
}

// BatchViewModel is a Batch joined with master-data names and its analysis.
// Constructed on demand, never stored.
type BatchViewModel struct {
	Batch
	PlantName     string        `json:"plantName"`
	LineName      string        `json:"lineName"`
	ProductName   string        `json:"productName"`
	SupplierName  string        `json:"supplierName"`
	Analysis      BatchAnalysis `json:"analysis"`
	PrimaryDefect *string       `json:"primaryDefect"`
}
