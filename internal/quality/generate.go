package quality

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// GenerateOptions controls dataset sizing.
type GenerateOptions struct {
	BatchCount     int
	TimeSeriesDays int
	Now            time.Time // zero value means time.Now()
}

// DefaultGenerateOptions matches the dashboard demo sizing.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{BatchCount: 500, TimeSeriesDays: 30}
}

// Generate builds a complete self-consistent dataset in memory. Generation
// cannot fail given positive counts; shape is deterministic, values are not.
func Generate(opts GenerateOptions) *Dataset {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	ds := &Dataset{
		GeneratedAt: now,
		Plants:      Plants(),
		Lines:       Lines(),
		Products:    Products(),
		Suppliers:   Suppliers(),
	}

	ds.Batches = generateBatches(ds, opts.BatchCount, now)
	ds.TimeSeries = generateTimeSeries(ds.Lines, opts.TimeSeriesDays, now)
	ds.Maintenance = generateMaintenanceEvents(ds.Lines, now)
	ds.Seasonality = generateSeasonality()
	ds.ShiftMatrix = generateShiftMatrix()
	ds.SupplierImpact = generateSupplierImpact(ds.Suppliers)
	ds.Correlation = correlationMatrix()
	ds.CauseMap = causeMap()

	ds.index()
	return ds
}

// generateBatches produces count batch records over the last 30 days,
// newest first.
func generateBatches(ds *Dataset, count int, now time.Time) []Batch {
	batches := make([]Batch, 0, count)

	for i := 0; i < count; i++ {
		ts := now.AddDate(0, 0, -uniformInt(0, 30))

		line := ds.Lines[rand.Intn(len(ds.Lines))]
		product := ds.Products[rand.Intn(len(ds.Products))]
		supplier := ds.Suppliers[rand.Intn(len(ds.Suppliers))]
		shift := Shifts[rand.Intn(len(Shifts))]

		defectRate := batchRateModel.DefectRate(rateContext{
			Timestamp:  ts,
			Shift:      shift,
			SupplierID: supplier.ID,
		})
		fpy := clamp(85, 99, 97.5-defectRate*1.5)
		scrapRate := defectRate*0.35 + uniform(0, 0.4)
		output := int(math.Round(4500 + uniform(-1000, 1500)))

		batches = append(batches, Batch{
			ID:         fmt.Sprintf("C-%03d", i+100),
			PlantID:    line.PlantID,
			LineID:     line.ID,
			ProductID:  product.ID,
			SupplierID: supplier.ID,
			LotNumber:  fmt.Sprintf("L-%03d", uniformInt(1, 99)),
			Timestamp:  ts,
			Shift:      shift,
			DefectRate: round2(defectRate),
			FPY:        round1(fpy),
			ScrapRate:  round2(scrapRate),
			Output:     output,
			Defects:    generateDefects(output, defectRate, ts.Month(), supplier.ID),
		})
	}

	sort.Slice(batches, func(i, j int) bool {
		return batches[i].Timestamp.After(batches[j].Timestamp)
	})
	return batches
}

// generateDefects distributes the batch's total defect units across the
// defect-type categories. Weights are context-dependent: summer months favor
// Verformung, the problem supplier favors Nuss-Qualität. Zero-count
// categories are omitted.
func generateDefects(output int, defectRate float64, month time.Month, supplierID string) []Defect {
	totalDefects := int(math.Round(float64(output) * defectRate / 100))

	defects := make([]Defect, 0, len(DefectTypes))
	for _, typ := range DefectTypes {
		weight := 0.2

		if typ == "Verformung" && isSummer(month) {
			weight = 0.4
		}
		if typ == "Nuss-Qualität" && supplierID == ProblemSupplierID {
			weight = 0.5
		}

		count := int(math.Round(float64(totalDefects) * weight * uniform(0.5, 1.5)))
		if count > 0 {
			defects = append(defects, Defect{Type: typ, Count: count})
		}
	}
	return defects
}

// generateTimeSeries synthesizes one point per (day, line, shift) over the
// requested window, oldest first. Shift hours anchor the samples at 08:00,
// 16:00 and 00:00.
func generateTimeSeries(lines []Line, days int, now time.Time) []TimeSeriesPoint {
	points := make([]TimeSeriesPoint, 0, (days+1)*len(lines)*len(Shifts))

	for d := days; d >= 0; d-- {
		day := now.AddDate(0, 0, -d)

		for _, line := range lines {
			for _, shift := range Shifts {
				hour := 0
				switch shift {
				case ShiftEarly:
					hour = 8
				case ShiftLate:
					hour = 16
				}
				ts := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())

				defectRate := seriesRateModel.DefectRate(rateContext{
					Timestamp: ts,
					Shift:     shift,
					LineID:    line.ID,
				})
				fpy := clamp(85, 99, 98-defectRate*1.5)
				scrapRate := defectRate*0.4 + uniform(0, 0.3)
				output := math.Max(3000, 5000-defectRate*150+uniform(-500, 500))

				points = append(points, TimeSeriesPoint{
					Timestamp:  ts,
					DefectRate: round2(defectRate),
					FPY:        round1(fpy),
					ScrapRate:  round2(scrapRate),
					Output:     int(math.Round(output)),
					LineID:     line.ID,
					Shift:      shift,
				})
			}
		}
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	return points
}

// generateMaintenanceEvents produces 2-3 events per line over the last 28
// days, roughly 70% planned, sorted ascending.
func generateMaintenanceEvents(lines []Line, now time.Time) []MaintenanceEvent {
	events := make([]MaintenanceEvent, 0, len(lines)*3)

	for _, line := range lines {
		for i := 0; i < uniformInt(2, 3); i++ {
			typ := MaintenancePlanned
			if rand.Float64() <= 0.3 {
				typ = MaintenanceUnplanned
			}
			events = append(events, MaintenanceEvent{
				ID:        fmt.Sprintf("M%d", len(events)+1),
				LineID:    line.ID,
				Timestamp: now.AddDate(0, 0, -uniformInt(5, 28)),
				Type:      typ,
				Duration:  uniformInt(2, 8),
			})
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
