// Package app is the composition root: manual dependency wiring, route
// registration, and lifecycle.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/LeiffK/QAi/internal/api/handlers"
	"github.com/LeiffK/QAi/internal/config"
	"github.com/LeiffK/QAi/internal/pkg/worker"
	"github.com/LeiffK/QAi/internal/quality"
	"github.com/LeiffK/QAi/internal/service"
	"github.com/LeiffK/QAi/internal/uistate"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Pools   *worker.Pools
	Dataset *service.DatasetService
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		ReportPoolSize:  cfg.Worker.ReportPoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	opts := quality.GenerateOptions{
		BatchCount:     cfg.Dataset.BatchCount,
		TimeSeriesDays: cfg.Dataset.TimeSeriesDays,
	}
	datasetSvc := service.NewDatasetService(opts, pools)

	server := handlers.NewServer(handlers.ServerDeps{
		Config:   cfg,
		Dataset:  datasetSvc,
		Reports:  service.NewReportService(pools),
		Sessions: uistate.NewStore(),
		Pools:    pools,
	})

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server),
		Pools:   pools,
		Dataset: datasetSvc,
	}, nil
}
