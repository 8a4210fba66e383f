// @title           Blog API
// @version         1.0
// @description     블로그 게시글과 댓글 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "blog-api/docs" // Swagger docs import

	"blog-api/internal/client"
	"blog-api/internal/config"
	"blog-api/internal/database"
	"blog-api/internal/job"
	"blog-api/internal/metrics"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/router"
	"blog-api/internal/util"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Blog API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.Duration("comment_edit_window", cfg.Comments.EditWindow),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database is required; keep retrying in the background until it comes up or we are told to stop
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background", zap.Error(err))
		connected := make(chan *gorm.DB, 1)
		database.NewAsync(ctx, dbConfig, 5*time.Second, logger, func(db *gorm.DB) { connected <- db })
		select {
		case db = <-connected:
		case <-ctx.Done():
			logger.Info("Shutdown requested before database became available")
			return
		}
	} else {
		logger.Info("Database connected successfully")
	}
	database.SetDB(db)
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Fatal("Failed to run database migrations", zap.Error(err))
		}
		logger.Info("Database migrations completed")
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	dbStatsDone := database.StartDBStatsCollector(db, m, 15*time.Second)
	defer close(dbStatsDone)

	businessCollector := metrics.NewBusinessMetricsCollector(db, m, logger, 60*time.Second)
	businessCollector.Start()
	defer businessCollector.Stop()
	logger.Info("Metrics initialized")

	// Redis backs token revocation; without it logout is client-side only
	var redisClient *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Addr != "" {
		redisClient, err = database.NewRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis unavailable, token revocation disabled", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}
	tokenRepo := repository.NewTokenRepository(redisClient)

	// Initialize S3 client
	var s3Client client.S3ClientInterface
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		c, err := client.NewS3Client(ctx, &cfg.S3, m)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, thumbnail uploads disabled", zap.Error(err))
		} else {
			s3Client = c
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, thumbnail uploads disabled")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.RunSweeper(ctx, time.Minute, 10*time.Minute)

	// Purge comments that stayed soft-deleted past the retention period
	scheduler := cron.New(cron.WithLogger(job.NewCronLogger(logger)))
	purgeJob := job.NewPurgeJob(repository.NewCommentRepository(db), cfg.Comments.PurgeAfter, m, logger)
	if _, err := purgeJob.Schedule(scheduler, cfg.Comments.PurgeSchedule); err != nil {
		logger.Fatal("Invalid comment purge schedule",
			zap.String("schedule", cfg.Comments.PurgeSchedule),
			zap.Error(err),
		)
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:           db,
		Logger:       logger,
		Metrics:      m,
		TokenManager: util.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL),
		TokenRepo:    tokenRepo,
		S3Client:     s3Client,
		BasePath:     cfg.Server.BasePath,
		EditWindow:   cfg.Comments.EditWindow,
		RateLimiter:  limiter,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Blog API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
