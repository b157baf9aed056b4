package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/LeiffK/QAi/internal/api/handlers"
	"github.com/LeiffK/QAi/internal/api/middleware"
	"github.com/LeiffK/QAi/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.SessionID(),
		middleware.ErrorHandler(),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORS.AllowOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", middleware.RequestIDHeader, middleware.SessionIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader, middleware.SessionIDHeader},
		}),
	)

	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	v1.GET("/batches", server.ListBatches)
	v1.GET("/batches/:id", server.GetBatch)
	v1.GET("/kpis", server.GetKPIs)
	v1.GET("/timeseries", server.GetTimeSeries)
	v1.GET("/alerts", server.GetAlerts)
	v1.GET("/masterdata", server.GetMasterData)
	v1.GET("/score", server.GetQualityScore)

	charts := v1.Group("/charts")
	charts.GET("/seasonality", server.GetSeasonalityChart)
	charts.GET("/shifts", server.GetShiftMatrixChart)
	charts.GET("/suppliers", server.GetSupplierImpactChart)
	charts.GET("/correlation", server.GetCorrelationChart)
	charts.GET("/causemap", server.GetCauseMapChart)
	charts.GET("/maintenance", server.GetMaintenanceChart)

	session := v1.Group("/session")
	session.GET("", server.GetSession)
	session.POST("/filters", server.UpdateFilters)
	session.DELETE("/filters", server.ResetFilters)
	session.POST("/brush", server.SetBrush)
	session.DELETE("/brush", server.ClearBrush)
	session.POST("/role", server.ApplyRole)
	session.POST("/drawer", server.OpenDrawer)
	session.DELETE("/drawer", server.CloseDrawer)

	v1.GET("/reports/quality.csv", server.GetQualityReport)

	admin := v1.Group("/admin")
	admin.POST("/dataset/regenerate", server.RegenerateDataset)
	admin.GET("/dataset", server.GetDatasetInfo)
	admin.GET("/log/level", server.GetLogLevel)
	admin.PUT("/log/level", server.SetLogLevel)
	admin.GET("/workers", server.GetWorkerMetrics)

	return router
}
