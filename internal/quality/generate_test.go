package quality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerate_Shape(t *testing.T) {
	t.Parallel()

	ds := Generate(DefaultGenerateOptions())

	require.Len(t, ds.Plants, 2)
	require.Len(t, ds.Lines, 4)
	require.Len(t, ds.Products, 3)
	require.Len(t, ds.Suppliers, 5)
	require.Len(t, ds.Batches, 500)

	// One point per (day, line, shift) over a 31 day inclusive window.
	require.Len(t, ds.TimeSeries, 31*4*3)

	// 2-3 maintenance events per line.
	require.GreaterOrEqual(t, len(ds.Maintenance), 8)
	require.LessOrEqual(t, len(ds.Maintenance), 12)

	require.Len(t, ds.Seasonality, 12*5)
	require.Len(t, ds.ShiftMatrix, 3*7)
	require.Len(t, ds.SupplierImpact, 5)
	require.Len(t, ds.Correlation, 36)
	require.Len(t, ds.CauseMap.Nodes, 7)
	require.Len(t, ds.CauseMap.Edges, 6)
}

func TestGenerate_ReferentialIntegrity(t *testing.T) {
	t.Parallel()

	ds := Generate(DefaultGenerateOptions())

	for _, line := range ds.Lines {
		_, ok := ds.Plant(line.PlantID)
		require.True(t, ok, "line %s references unknown plant %s", line.ID, line.PlantID)
	}

	knownTypes := make(map[string]bool, len(DefectTypes))
	for _, typ := range DefectTypes {
		knownTypes[typ] = true
	}

	for _, b := range ds.Batches {
		line, ok := ds.Line(b.LineID)
		require.True(t, ok, "batch %s references unknown line", b.ID)
		require.Equal(t, line.PlantID, b.PlantID, "batch %s plant does not own its line", b.ID)

		_, ok = ds.Product(b.ProductID)
		require.True(t, ok, "batch %s references unknown product", b.ID)
		_, ok = ds.Supplier(b.SupplierID)
		require.True(t, ok, "batch %s references unknown supplier", b.ID)

		require.True(t, ValidShift(b.Shift), "batch %s has invalid shift %q", b.ID, b.Shift)

		for _, d := range b.Defects {
			require.True(t, knownTypes[d.Type], "batch %s has unknown defect type %q", b.ID, d.Type)
			require.Greater(t, d.Count, 0, "zero-count categories must be omitted")
		}
	}
}

func TestGenerate_ValueRanges(t *testing.T) {
	t.Parallel()

	ds := Generate(DefaultGenerateOptions())

	for _, b := range ds.Batches {
		require.GreaterOrEqual(t, b.DefectRate, 0.0)
		require.GreaterOrEqual(t, b.FPY, 85.0)
		require.LessOrEqual(t, b.FPY, 99.0)
		require.GreaterOrEqual(t, b.ScrapRate, 0.0)
	}

	for _, p := range ds.TimeSeries {
		require.GreaterOrEqual(t, p.DefectRate, 0.0)
		require.GreaterOrEqual(t, p.FPY, 85.0)
		require.LessOrEqual(t, p.FPY, 99.0)
		require.GreaterOrEqual(t, p.Output, 3000)
	}
}

// Round trip per the dashboard contract: generate, filter to the default 30
// day window, and every surviving batch sits inside it.
func TestGenerate_FilterRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	ds := Generate(GenerateOptions{BatchCount: 500, TimeSeriesDays: 30, Now: now})

	filtered, err := FilterBatches(ds, ds.Batches, DefaultFilters(), BrushSelection{}, now)
	require.NoError(t, err)
	require.LessOrEqual(t, len(filtered), 500)

	windowStart := now.AddDate(0, 0, -30)
	for _, b := range filtered {
		require.False(t, b.Timestamp.Before(windowStart), "batch %s before window", b.ID)
		require.False(t, b.Timestamp.After(now), "batch %s after now", b.ID)
	}
}

func TestGenerate_BatchesNewestFirst(t *testing.T) {
	t.Parallel()

	ds := Generate(DefaultGenerateOptions())
	for i := 1; i < len(ds.Batches); i++ {
		require.False(t, ds.Batches[i-1].Timestamp.Before(ds.Batches[i].Timestamp),
			"batches must be sorted newest first")
	}
}

func TestGenerate_TimeSeriesOldestFirst(t *testing.T) {
	t.Parallel()

	ds := Generate(GenerateOptions{BatchCount: 10, TimeSeriesDays: 10})
	for i := 1; i < len(ds.TimeSeries); i++ {
		require.False(t, ds.TimeSeries[i].Timestamp.Before(ds.TimeSeries[i-1].Timestamp),
			"time series must be sorted oldest first")
	}
}

func TestGenerate_ProblemSupplierBias(t *testing.T) {
	t.Parallel()

	ds := Generate(GenerateOptions{BatchCount: 2000, TimeSeriesDays: 1})

	var problemSum, otherSum float64
	var problemN, otherN int
	for _, b := range ds.Batches {
		if b.SupplierID == ProblemSupplierID {
			problemSum += b.DefectRate
			problemN++
		} else {
			otherSum += b.DefectRate
			otherN++
		}
	}
	require.NotZero(t, problemN)
	require.NotZero(t, otherN)

	// The +2.5 supplier effect dwarfs the ±0.8 noise at this sample size.
	require.Greater(t, problemSum/float64(problemN), otherSum/float64(otherN)+1.5)
}

func TestDatasetLookups(t *testing.T) {
	t.Parallel()

	ds := Generate(GenerateOptions{BatchCount: 5, TimeSeriesDays: 1})

	b, ok := ds.Batch(ds.Batches[0].ID)
	require.True(t, ok)
	require.Equal(t, ds.Batches[0].ID, b.ID)

	_, ok = ds.Batch("C-NOPE")
	require.False(t, ok)
}
