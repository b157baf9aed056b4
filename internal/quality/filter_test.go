package quality

import (
	"testing"
	"time"
)

func testBatch(id string, ts time.Time, mutate func(*Batch)) Batch {
	b := Batch{
		ID:         id,
		PlantID:    "P1",
		LineID:     "L1",
		ProductID:  "PR1",
		SupplierID: "S1",
		LotNumber:  "L-001",
		Timestamp:  ts,
		Shift:      ShiftEarly,
		DefectRate: 2.0,
		FPY:        96.0,
		ScrapRate:  0.8,
		Output:     4500,
	}
	if mutate != nil {
		mutate(&b)
	}
	return b
}

func TestResolveDateWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		timeRange TimeRange
		start     *time.Time
		end       *time.Time
		wantStart time.Time
		wantErr   error
	}{
		{"24h", Range24h, nil, nil, now.Add(-24 * time.Hour), nil},
		{"7d", Range7d, nil, nil, now.AddDate(0, 0, -7), nil},
		{"30d", Range30d, nil, nil, now.AddDate(0, 0, -30), nil},
		{"custom complete", RangeCustom, &start, &end, start, nil},
		{"custom missing end", RangeCustom, &start, nil, time.Time{}, ErrCustomRangeIncomplete},
		{"custom missing both", RangeCustom, nil, nil, time.Time{}, ErrCustomRangeIncomplete},
		{"unknown falls back to 30d", TimeRange("1y"), nil, nil, now.AddDate(0, 0, -30), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			window, err := ResolveDateWindow(tt.timeRange, tt.start, tt.end, now)
			if err != tt.wantErr {
				t.Fatalf("ResolveDateWindow() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !window.Start.Equal(tt.wantStart) {
				t.Errorf("window.Start = %v, want %v", window.Start, tt.wantStart)
			}
		})
	}
}

func TestFilterBatches_NoConstraintsPreservesInput(t *testing.T) {
	t.Parallel()

	now := time.Now()
	batches := []Batch{
		testBatch("C-100", now.AddDate(0, 0, -1), nil),
		testBatch("C-101", now.AddDate(0, 0, -5), nil),
		testBatch("C-102", now.AddDate(0, 0, -20), nil),
	}

	got, err := FilterBatches(nil, batches, DefaultFilters(), BrushSelection{}, now)
	if err != nil {
		t.Fatalf("FilterBatches() error = %v", err)
	}
	if len(got) != len(batches) {
		t.Fatalf("len = %d, want %d", len(got), len(batches))
	}
	for i := range got {
		if got[i].ID != batches[i].ID {
			t.Errorf("order not preserved at %d: got %s, want %s", i, got[i].ID, batches[i].ID)
		}
	}
}

func TestFilterBatches_SingleFieldConstraints(t *testing.T) {
	t.Parallel()

	now := time.Now()
	b := testBatch("C-100", now.AddDate(0, 0, -1), nil)

	tests := []struct {
		name    string
		filters Filters
		keep    bool
	}{
		{"plant match", Filters{TimeRange: Range30d, PlantID: "P1"}, true},
		{"plant mismatch", Filters{TimeRange: Range30d, PlantID: "P2"}, false},
		{"line match", Filters{TimeRange: Range30d, LineID: "L1"}, true},
		{"line mismatch", Filters{TimeRange: Range30d, LineID: "L9"}, false},
		{"product match", Filters{TimeRange: Range30d, ProductID: "PR1"}, true},
		{"product mismatch", Filters{TimeRange: Range30d, ProductID: "PR3"}, false},
		{"shift match", Filters{TimeRange: Range30d, Shift: ShiftEarly}, true},
		{"shift mismatch", Filters{TimeRange: Range30d, Shift: ShiftNight}, false},
		{"supplier match", Filters{TimeRange: Range30d, SupplierID: "S1"}, true},
		{"supplier mismatch", Filters{TimeRange: Range30d, SupplierID: "S4"}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FilterBatches(nil, []Batch{b}, tt.filters, BrushSelection{}, now)
			if err != nil {
				t.Fatalf("FilterBatches() error = %v", err)
			}
			if (len(got) == 1) != tt.keep {
				t.Errorf("kept = %v, want %v", len(got) == 1, tt.keep)
			}
		})
	}
}

func TestFilterBatches_TimeWindowInclusive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	batches := []Batch{
		testBatch("edge-start", now.AddDate(0, 0, -30), nil),
		testBatch("inside", now.AddDate(0, 0, -10), nil),
		testBatch("edge-end", now, nil),
		testBatch("outside", now.AddDate(0, 0, -31), nil),
	}

	got, err := FilterBatches(nil, batches, DefaultFilters(), BrushSelection{}, now)
	if err != nil {
		t.Fatalf("FilterBatches() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (bounds inclusive)", len(got))
	}
}

func TestFilterBatches_BrushOverridesTimeRange(t *testing.T) {
	t.Parallel()

	now := time.Now()
	old := testBatch("old", now.AddDate(0, 0, -60), nil)
	recent := testBatch("recent", now.AddDate(0, 0, -1), nil)

	start := now.AddDate(0, 0, -90)
	end := now.AddDate(0, 0, -30)
	brush := BrushSelection{Start: &start, End: &end}

	got, err := FilterBatches(nil, []Batch{old, recent}, DefaultFilters(), brush, now)
	if err != nil {
		t.Fatalf("FilterBatches() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "old" {
		t.Fatalf("brush window should keep only the old batch, got %+v", got)
	}

	// A half-set brush does not override.
	half := BrushSelection{Start: &start}
	got, err = FilterBatches(nil, []Batch{old, recent}, DefaultFilters(), half, now)
	if err != nil {
		t.Fatalf("FilterBatches() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "recent" {
		t.Fatalf("inactive brush should fall back to 30d, got %+v", got)
	}
}

func TestFilterBatches_SearchTerm(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ds := Generate(GenerateOptions{BatchCount: 1, TimeSeriesDays: 1, Now: now})

	batches := []Batch{
		testBatch("C-100", now, func(b *Batch) { b.LotNumber = "L-042"; b.ProductID = "PR1" }),
		testBatch("C-200", now, func(b *Batch) { b.LotNumber = "L-777"; b.ProductID = "PR2" }),
	}

	tests := []struct {
		name   string
		term   string
		wantID []string
	}{
		{"empty term keeps all", "", []string{"C-100", "C-200"}},
		{"batch id", "c-10", []string{"C-100"}},
		{"lot number", "777", []string{"C-200"}},
		{"product name", "toffifee", []string{"C-100"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := DefaultFilters()
			f.SearchTerm = tt.term
			got, err := FilterBatches(ds, batches, f, BrushSelection{}, now)
			if err != nil {
				t.Fatalf("FilterBatches() error = %v", err)
			}
			if len(got) != len(tt.wantID) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.wantID))
			}
			for i, id := range tt.wantID {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterBatches_CustomRangeIncomplete(t *testing.T) {
	t.Parallel()

	now := time.Now()
	f := Filters{TimeRange: RangeCustom}

	_, err := FilterBatches(nil, []Batch{testBatch("C-100", now, nil)}, f, BrushSelection{}, now)
	if err != ErrCustomRangeIncomplete {
		t.Fatalf("error = %v, want ErrCustomRangeIncomplete", err)
	}
}

func TestFilterTimeSeries(t *testing.T) {
	t.Parallel()

	now := time.Now()
	points := []TimeSeriesPoint{
		{Timestamp: now.AddDate(0, 0, -1), LineID: "L1", Shift: ShiftEarly},
		{Timestamp: now.AddDate(0, 0, -1), LineID: "L2", Shift: ShiftNight},
		{Timestamp: now.AddDate(0, 0, -40), LineID: "L1", Shift: ShiftEarly},
	}

	f := DefaultFilters()
	f.LineID = "L1"
	got, err := FilterTimeSeries(points, f, BrushSelection{}, now)
	if err != nil {
		t.Fatalf("FilterTimeSeries() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (line + window narrow)", len(got))
	}

	f = DefaultFilters()
	f.Shift = ShiftNight
	got, err = FilterTimeSeries(points, f, BrushSelection{}, now)
	if err != nil {
		t.Fatalf("FilterTimeSeries() error = %v", err)
	}
	if len(got) != 1 || got[0].LineID != "L2" {
		t.Fatalf("shift filter failed, got %+v", got)
	}
}
