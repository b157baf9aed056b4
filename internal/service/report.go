package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"sync"

	apperrors "github.com/LeiffK/QAi/internal/pkg/errors"
	"github.com/LeiffK/QAi/internal/pkg/worker"
	"github.com/LeiffK/QAi/internal/quality"
)

// reportHeader matches the columns the quality team expects in Excel imports.
var reportHeader = []string{
	"Charge",
	"Produkt",
	"Werk",
	"Linie",
	"Fehlerrate (%)",
	"FPY (%)",
	"Ausschuss (%)",
	"Ursache",
	"Empfohlene Maßnahme",
}

// ReportService renders filtered batches into a semicolon-separated CSV.
// Enrichment of the rows runs on the report pool, one task per batch.
type ReportService struct {
	pools *worker.Pools
}

func NewReportService(pools *worker.Pools) *ReportService {
	return &ReportService{pools: pools}
}

// QualityCSV builds the report for the given batches. Row order follows the
// input order regardless of which enrichment task finishes first.
func (s *ReportService) QualityCSV(ctx context.Context, ds *quality.Dataset, batches []quality.Batch) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeReportFailed,
			"failed to build quality report", http.StatusInternalServerError)
	}

	rows := make([][]string, len(batches))

	var wg sync.WaitGroup
	for i := range batches {
		wg.Add(1)
		b := batches[i]
		idx := i
		// Rows are cheap to build; once submitted they always run so the
		// WaitGroup cannot leak on request cancellation.
		err := s.pools.Report.Submit(context.Background(), func(context.Context) {
			defer wg.Done()
			rows[idx] = reportRow(ds, b)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, apperrors.Wrap(err, apperrors.CodeReportFailed,
				"failed to build quality report", http.StatusInternalServerError)
		}
	}
	wg.Wait()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(reportHeader); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeReportFailed,
			"failed to build quality report", http.StatusInternalServerError)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeReportFailed,
				"failed to build quality report", http.StatusInternalServerError)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeReportFailed,
			"failed to build quality report", http.StatusInternalServerError)
	}
	return buf.Bytes(), nil
}

func reportRow(ds *quality.Dataset, b quality.Batch) []string {
	vm := quality.BuildBatchViewModel(ds, b)

	cause := singleLine(vm.Analysis.Cause)
	measure := ""
	if len(vm.Analysis.Measures) > 0 {
		measure = singleLine(vm.Analysis.Measures[0])
	}

	return []string{
		vm.ID,
		vm.ProductName,
		vm.PlantName,
		vm.LineName,
		fmt.Sprintf("%.2f", vm.DefectRate),
		fmt.Sprintf("%.1f", vm.FPY),
		fmt.Sprintf("%.2f", vm.ScrapRate),
		cause,
		measure,
	}
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.Join(strings.Fields(s), " ")
}
