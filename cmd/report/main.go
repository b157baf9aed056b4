// Package main generates a quality report CSV offline, without running the
// API server. Useful for demos and for inspecting the synthetic data.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/LeiffK/QAi/internal/pkg/logger"
	"github.com/LeiffK/QAi/internal/pkg/worker"
	"github.com/LeiffK/QAi/internal/quality"
	"github.com/LeiffK/QAi/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("out", "qualitaetsbericht.csv", "output file path")
	batches := flag.Int("batches", 500, "number of batches to generate")
	days := flag.Int("days", 30, "time series length in days")
	flag.Parse()

	if err := logger.Init("info", "console"); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	pools, err := worker.NewPools(ctx, worker.DefaultPoolConfig())
	if err != nil {
		return fmt.Errorf("init worker pools: %w", err)
	}
	defer pools.Shutdown()

	opts := quality.GenerateOptions{BatchCount: *batches, TimeSeriesDays: *days}
	ds := quality.Generate(opts)

	csvData, err := service.NewReportService(pools).QualityCSV(ctx, ds, ds.Batches)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	if err := os.WriteFile(*out, csvData, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Printf("wrote %s (%d batches)\n", *out, len(ds.Batches))
	return nil
}
