package quality

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetPrimaryDefect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		defects []Defect
		want    string // empty means nil
	}{
		{"no defects", nil, ""},
		{"single", []Defect{{Type: "Optik", Count: 3}}, "Optik"},
		{
			"highest count wins",
			[]Defect{{Type: "Optik", Count: 3}, {Type: "Verformung", Count: 12}},
			"Verformung",
		},
		{
			"tie breaks toward first listed",
			[]Defect{{Type: "Gewicht", Count: 5}, {Type: "Optik", Count: 5}},
			"Gewicht",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := GetPrimaryDefect(Batch{Defects: tt.defects})
			if tt.want == "" {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, tt.want, got.Type)
		})
	}
}

func TestAnalyzeBatch_CriticalVerformung(t *testing.T) {
	t.Parallel()

	b := Batch{
		ID:         "C-123",
		Timestamp:  time.Date(2026, 7, 14, 9, 30, 0, 0, time.UTC),
		DefectRate: 8.2,
		Defects: []Defect{
			{Type: "Verformung", Count: 12},
			{Type: "Optik", Count: 3},
		},
	}

	analysis := AnalyzeBatch(b)

	require.Equal(t, SeverityCritical, analysis.Severity)
	require.Equal(t,
		"Temperaturschwankung in der Kuehlstrecke fuehrt zu Formabweichungen.",
		analysis.Cause)
	require.Len(t, analysis.Measures, 3)
	require.Contains(t, analysis.Summary, "Charge C-123")
	require.Contains(t, analysis.Summary, "8.20% Fehlerrate")
	require.Contains(t, analysis.Summary, "Top-Defekt: Verformung")
}

func TestAnalyzeBatch_FallbackEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		defects []Defect
	}{
		{"unknown defect type", []Defect{{Type: "Sonstiges", Count: 2}}},
		{"no defects recorded", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			analysis := AnalyzeBatch(Batch{ID: "C-1", Timestamp: time.Now(), Defects: tt.defects})
			require.Equal(t,
				"Abweichung im Prozess erkannt, vertiefte Analyse erforderlich.",
				analysis.Cause)
			require.NotEmpty(t, analysis.Measures)
		})
	}
}

func TestLookupDefect_AllKnownTypesHaveEntries(t *testing.T) {
	t.Parallel()

	fallback := LookupDefect("definitely-unknown")
	for _, typ := range DefectTypes {
		entry := LookupDefect(typ)
		require.NotEqual(t, fallback.Cause, entry.Cause, "defect type %q fell through to fallback", typ)
		require.Len(t, entry.Measures, 3, "defect type %q", typ)
		require.NotEmpty(t, entry.Risk, "defect type %q", typ)
	}
}

func TestBuildBatchViewModel_Joins(t *testing.T) {
	t.Parallel()

	ds := Generate(GenerateOptions{BatchCount: 1, TimeSeriesDays: 1})
	b := testBatch("C-100", time.Now(), func(b *Batch) {
		b.Defects = []Defect{{Type: "Gewicht", Count: 4}}
	})

	vm := BuildBatchViewModel(ds, b)

	require.Equal(t, "Werk Berlin", vm.PlantName)
	require.Equal(t, "Linie 1", vm.LineName)
	require.Equal(t, "Toffifee", vm.ProductName)
	require.Equal(t, "Lieferant A", vm.SupplierName)
	require.NotNil(t, vm.PrimaryDefect)
	require.Equal(t, "Gewicht", *vm.PrimaryDefect)
}

func TestBuildBatchViewModel_MissingMasterDataFallsBack(t *testing.T) {
	t.Parallel()

	ds := Generate(GenerateOptions{BatchCount: 1, TimeSeriesDays: 1})
	b := testBatch("C-100", time.Now(), func(b *Batch) {
		b.PlantID = "P99"
		b.LineID = "L99"
		b.ProductID = "PR99"
		b.SupplierID = "S99"
	})

	vm := BuildBatchViewModel(ds, b)

	require.Equal(t, "P99", vm.PlantName)
	require.Equal(t, "L99", vm.LineName)
	require.Equal(t, "PR99", vm.ProductName)
	require.Equal(t, "S99", vm.SupplierName)
	require.Nil(t, vm.PrimaryDefect)
}

// Export contract: every enriched record carries the fields the report path
// indexes without nil checks.
func TestBuildBatchViewModel_ExportGuarantees(t *testing.T) {
	t.Parallel()

	ds := Generate(DefaultGenerateOptions())
	for _, b := range ds.Batches[:50] {
		vm := BuildBatchViewModel(ds, b)

		require.NotEmpty(t, vm.ID)
		require.NotEmpty(t, vm.ProductName)
		require.NotEmpty(t, vm.LineName)
		require.NotEmpty(t, vm.Analysis.Cause)
		require.NotEmpty(t, vm.Analysis.Measures)
		require.False(t, strings.TrimSpace(vm.Analysis.Measures[0]) == "")
	}
}
