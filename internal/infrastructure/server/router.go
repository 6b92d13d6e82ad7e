package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/observability"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	deviceHandler  *handler.DeviceHandler
	reportHandler  *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
	reportLimiter  *middleware.RateLimiter
	metrics        *observability.Metrics
	metricsPath    string
	logger         *zap.Logger
}

type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	DeviceHandler  *handler.DeviceHandler
	ReportHandler  *handler.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware

	// ReportLimiter throttles report generation; nil disables it.
	ReportLimiter *middleware.RateLimiter

	// Metrics is optional; when nil neither the middleware nor the
	// scrape endpoint are installed.
	Metrics     *observability.Metrics
	MetricsPath string

	Logger      *zap.Logger
	Environment string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	metricsPath := cfg.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	r := &Router{
		engine:         engine,
		authHandler:    cfg.AuthHandler,
		userHandler:    cfg.UserHandler,
		deviceHandler:  cfg.DeviceHandler,
		reportHandler:  cfg.ReportHandler,
		authMiddleware: cfg.AuthMiddleware,
		reportLimiter:  cfg.ReportLimiter,
		metrics:        cfg.Metrics,
		metricsPath:    metricsPath,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger, "/health", r.metricsPath))
	r.engine.Use(middleware.CORS())
	if r.metrics != nil {
		r.engine.Use(middleware.Metrics(r.metrics))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if r.metrics != nil {
		r.engine.GET(r.metricsPath, gin.WrapH(r.metrics.Handler()))
	}

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.Refresh)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
		}

		users := api.Group("/users")
		users.Use(r.authMiddleware.RequireAuth())
		{
			users.GET("/me", r.userHandler.GetMe)
			users.PUT("/me", r.userHandler.UpdateMe)
		}

		devices := api.Group("/devices")
		devices.Use(r.authMiddleware.RequireAuth())
		{
			devices.POST("", r.deviceHandler.Create)
			devices.GET("", r.deviceHandler.List)
			devices.GET("/:id", r.deviceHandler.Get)
			devices.PUT("/:id", r.deviceHandler.Report)
			devices.DELETE("/:id", r.deviceHandler.Delete)
			devices.GET("/:id/track", r.deviceHandler.Track)
		}

		reports := api.Group("/reports")
		reports.Use(r.authMiddleware.RequireAuth())
		if r.reportLimiter != nil {
			reports.Use(r.reportLimiter.Limit())
		}
		{
			reports.GET("/:device_id", r.reportHandler.Generate)
			reports.GET("/:device_id/history", r.reportHandler.History)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
