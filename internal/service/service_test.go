package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeiffK/QAi/internal/pkg/logger"
	"github.com/LeiffK/QAi/internal/pkg/worker"
	"github.com/LeiffK/QAi/internal/quality"
)

func init() {
	_ = logger.Init("error", "json")
}

func testPools(t *testing.T) *worker.Pools {
	t.Helper()
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools
}

func testOptions() quality.GenerateOptions {
	opts := quality.DefaultGenerateOptions()
	opts.BatchCount = 40
	opts.TimeSeriesDays = 5
	return opts
}

func TestDatasetService_Current(t *testing.T) {
	svc := NewDatasetService(testOptions(), testPools(t))

	ds := svc.Current()
	require.NotNil(t, ds)
	require.Len(t, ds.Batches, 40)

	// Repeated reads see the same snapshot until a regeneration lands.
	require.Same(t, ds, svc.Current())
}

func TestDatasetService_Regenerate(t *testing.T) {
	svc := NewDatasetService(testOptions(), testPools(t))
	old := svc.Current()

	require.True(t, svc.Regenerate())

	deadline := time.Now().Add(5 * time.Second)
	for svc.Regenerating() {
		if time.Now().After(deadline) {
			t.Fatal("regeneration did not finish in time")
		}
		time.Sleep(10 * time.Millisecond)
	}

	fresh := svc.Current()
	require.NotSame(t, old, fresh)
	require.Len(t, fresh.Batches, 40)
}

func TestReportService_QualityCSV(t *testing.T) {
	pools := testPools(t)
	ds := quality.Generate(testOptions())
	svc := NewReportService(pools)

	out, err := svc.QualityCSV(context.Background(), ds, ds.Batches[:10])
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(out)))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)

	require.Equal(t, reportHeader, records[0])

	// Rows keep input order and resolve master data to display names.
	for i, rec := range records[1:] {
		b := ds.Batches[i]
		require.Equal(t, b.ID, rec[0])
		require.NotEqual(t, b.ProductID, rec[1])
		require.NotEmpty(t, rec[2])
		require.NotEmpty(t, rec[7], "cause column must never be empty")
		require.NotContains(t, rec[8], "\n")
	}
}

func TestReportService_QualityCSV_Empty(t *testing.T) {
	svc := NewReportService(testPools(t))
	ds := quality.Generate(testOptions())

	out, err := svc.QualityCSV(context.Background(), ds, nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 1, "header only")
}
