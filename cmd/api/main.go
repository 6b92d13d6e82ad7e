package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/storage"
	"github.com/marcos-nsantos/trip-report-backend/internal/adapter/summarizer"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/ai"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/server"
	s3storage "github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/storage"
	authUC "github.com/marcos-nsantos/trip-report-backend/internal/usecase/auth"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/device"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/report"
	"github.com/marcos-nsantos/trip-report-backend/internal/usecase/user"
)

//	@title						Trip Report API
//	@version					1.0
//	@description				Device tracking and trip report generation.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath)
		if err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Strings("files", applied))
	}

	// Repositories
	userRepo := postgres.NewUserRepo(pool)
	refreshTokenRepo := postgres.NewRefreshTokenRepo(pool)
	deviceRepo := postgres.NewDeviceRepo(pool)
	trackRepo := postgres.NewTrackRepo(pool)
	reportRepo := postgres.NewReportRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)
	metrics := observability.NewMetrics()

	narrator := newSummarizer(cfg.AI, logger)

	archive, err := newArchive(cfg.S3, logger)
	if err != nil {
		logger.Fatal("failed to create s3 archive", zap.Error(err))
	}

	// Use cases
	authSvc := authUC.NewService(userRepo, refreshTokenRepo, jwtSvc, passwordHasher, cfg.JWT.RefreshTokenTTL)
	userSvc := user.NewService(userRepo, passwordHasher)
	deviceSvc := device.NewService(deviceRepo, trackRepo)
	reportSvc := report.NewService(deviceRepo, trackRepo, reportRepo, narrator, archive, metrics, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	userHandler := handler.NewUserHandler(userSvc)
	deviceHandler := handler.NewDeviceHandler(deviceSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var reportLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		reportLimiter = middleware.NewRateLimiter(redisClient, "ratelimit:reports:", cfg.RateLimit, logger)
	}

	routerCfg := server.RouterConfig{
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		DeviceHandler:  deviceHandler,
		ReportHandler:  reportHandler,
		AuthMiddleware: authMiddleware,
		ReportLimiter:  reportLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	}
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = metrics
		routerCfg.MetricsPath = cfg.Metrics.Path
	}
	router := server.NewRouter(routerCfg)

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	go purgeTokens(ctx, authSvc, cfg.JWT.CleanupInterval, logger)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newSummarizer(cfg config.AIConfig, logger *zap.Logger) summarizer.Summarizer {
	if cfg.APIKey == "" {
		logger.Info("no OpenAI key configured, using template summarizer")
		return ai.NewTemplateSummarizer()
	}
	logger.Info("using OpenAI summarizer", zap.String("model", cfg.Model))
	return ai.NewOpenAISummarizer(cfg)
}

// newArchive returns a nil interface when S3 is not configured so the report
// service can skip archiving.
func newArchive(cfg config.S3Config, logger *zap.Logger) (storage.ReportArchive, error) {
	if !cfg.Enabled() {
		logger.Info("report archive disabled")
		return nil, nil
	}
	archive, err := s3storage.NewS3Archive(cfg)
	if err != nil {
		return nil, err
	}
	return archive, nil
}

func purgeTokens(ctx context.Context, svc *authUC.Service, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.PurgeTokens(ctx)
			if err != nil {
				logger.Warn("purging refresh tokens failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("purged refresh tokens", zap.Int64("count", n))
			}
		}
	}
}
