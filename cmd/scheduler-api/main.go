package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	internalhandler "github.com/classforge/timetable-optimizer/internal/handler"
	"github.com/classforge/timetable-optimizer/internal/service"
	"github.com/classforge/timetable-optimizer/pkg/config"
	"github.com/classforge/timetable-optimizer/pkg/logger"
	corsmiddleware "github.com/classforge/timetable-optimizer/pkg/middleware/cors"
	metricsmiddleware "github.com/classforge/timetable-optimizer/pkg/middleware/metrics"
	reqidmiddleware "github.com/classforge/timetable-optimizer/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	metricsHandler := internalhandler.NewMetricsHandler(metricsSvc)

	scheduleSvc := service.NewScheduleGeneratorService(logr, metricsSvc, nil)
	scheduleHandler := internalhandler.NewScheduleGeneratorHandler(scheduleSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(metricsmiddleware.Middleware(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	schedules := api.Group("/schedules")
	schedules.POST("/generate", scheduleHandler.Generate)

	addr := ":8080"
	if cfg.Port != 0 {
		addr = fmt.Sprintf(":%d", cfg.Port)
	}
	logr.Sugar().Infow("starting server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server stopped", "error", err)
	}
}
