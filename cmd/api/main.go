package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aminrezaei/hr-panel-api/api/swagger"
	"github.com/aminrezaei/hr-panel-api/internal/handler"
	"github.com/aminrezaei/hr-panel-api/internal/middleware"
	"github.com/aminrezaei/hr-panel-api/internal/repository"
	"github.com/aminrezaei/hr-panel-api/internal/service"
	"github.com/aminrezaei/hr-panel-api/internal/validation"
	"github.com/aminrezaei/hr-panel-api/pkg/cache"
	"github.com/aminrezaei/hr-panel-api/pkg/config"
	"github.com/aminrezaei/hr-panel-api/pkg/database"
	"github.com/aminrezaei/hr-panel-api/pkg/logger"
	corsmiddleware "github.com/aminrezaei/hr-panel-api/pkg/middleware/cors"
	reqidmiddleware "github.com/aminrezaei/hr-panel-api/pkg/middleware/requestid"
)

// @title HR Panel API
// @version 1.0.0
// @description Personnel and task management service
// @BasePath /api/v1
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, task cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	validate := validation.New()

	employeeRepo := repository.NewEmployeeRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	employeeSvc := service.NewEmployeeService(employeeRepo, validate, logr)

	var taskCache service.TaskCache
	if cacheRepo != nil {
		taskCache = cacheRepo
	}
	taskSvc := service.NewTaskService(taskRepo, taskCache, cfg.Cache.TaskTTL, metricsSvc, validate, logr)

	r := gin.New()
	r.Use(middleware.Recovery(logr))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.NewEmployeeHandler(employeeSvc, cfg.Export.Enabled).Register(api)
	handler.NewTaskHandler(taskSvc).Register(api)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
