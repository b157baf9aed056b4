// Package service wires the quality core into application services: the
// dataset snapshot holder and report generation.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/LeiffK/QAi/internal/pkg/logger"
	"github.com/LeiffK/QAi/internal/pkg/worker"
	"github.com/LeiffK/QAi/internal/quality"
)

// DatasetService owns the current dataset snapshot. Snapshots are immutable;
// regeneration builds a fresh one off-request and swaps the pointer, so
// readers never block.
type DatasetService struct {
	opts    quality.GenerateOptions
	pools   *worker.Pools
	current atomic.Pointer[quality.Dataset]

	regenerating atomic.Bool
}

// NewDatasetService generates the initial snapshot synchronously.
func NewDatasetService(opts quality.GenerateOptions, pools *worker.Pools) *DatasetService {
	s := &DatasetService{opts: opts, pools: pools}

	started := time.Now()
	ds := quality.Generate(opts)
	s.current.Store(ds)

	logger.Info("Dataset generated",
		zap.Int("batches", len(ds.Batches)),
		zap.Int("time_series_points", len(ds.TimeSeries)),
		zap.Duration("took", time.Since(started)),
	)
	return s
}

// Current returns the active snapshot.
func (s *DatasetService) Current() *quality.Dataset {
	return s.current.Load()
}

// Regenerate schedules a background regeneration on the worker pool and
// reports whether it was accepted. A second request while one is in flight
// is rejected rather than queued; the newest snapshot wins anyway.
func (s *DatasetService) Regenerate() bool {
	if !s.regenerating.CompareAndSwap(false, true) {
		return false
	}

	err := s.pools.SubmitDetached(func(ctx context.Context) {
		defer s.regenerating.Store(false)

		select {
		case <-ctx.Done():
			return
		default:
		}

		started := time.Now()
		ds := quality.Generate(s.opts)
		s.current.Store(ds)

		logger.Info("Dataset regenerated",
			zap.Int("batches", len(ds.Batches)),
			zap.Duration("took", time.Since(started)),
		)
	})
	if err != nil {
		s.regenerating.Store(false)
		logger.Error("Dataset regeneration submit failed", zap.Error(err))
		return false
	}
	return true
}

// Regenerating reports whether a regeneration is in flight.
func (s *DatasetService) Regenerating() bool {
	return s.regenerating.Load()
}
