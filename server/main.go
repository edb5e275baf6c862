package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"triply/api/routes"
	"triply/internal/audit"
	"triply/internal/shared/config"
	"triply/internal/shared/database"
	"triply/pkg/logger"
	"triply/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// @title Triply API
// @version 1.0
// @description Travel itinerary catalog with token based sessions.
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer access token, "Bearer <token>"
//
//go:generate swag init -g server/main.go -d ../ -o ../docs
func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	appLogger := logger.NewFromGinMode(cfg.LogLevel)
	defer func() { _ = appLogger.Sync() }()

	if envErr != nil {
		if cfg.IsProduction() || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	if err := cfg.Validate(); err != nil {
		appLogger.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := database.InitDB(cfg, appLogger, routes.Models()...)
	if err != nil {
		appLogger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	recorder, err := audit.NewRecorderFromConfig(cfg.Kafka, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize audit publisher, continuing without audit events", zap.Error(err))
		recorder = audit.NewRecorder(audit.NopPublisher{}, appLogger)
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			appLogger.Error("failed to close audit publisher", zap.Error(err))
		}
	}()

	appMetrics, err := metrics.NewDefault("triply")
	if err != nil {
		appLogger.Fatal("failed to register metrics", zap.Error(err))
	}

	router := setupRouter(cfg, db, appLogger, recorder, appMetrics)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			zap.String("address", cfg.GetServerAddress()),
			zap.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			zap.String("docs", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Port)),
			zap.String("version", Version),
			zap.String("build_time", BuildTime),
			zap.String("commit", GitCommit),
			zap.String("refresh_store", cfg.JWT.RefreshStore),
			zap.Bool("audit_kafka", len(cfg.Kafka.Brokers) > 0),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, appLogger *logger.Logger, recorder *audit.Recorder, m *metrics.Metrics) *gin.Engine {
	engine := gin.New()

	// request logs, metrics, panic recovery
	engine.Use(logger.RequestLogger(appLogger), m.Middleware(), gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	engine.Use(cors.New(corsConfig))

	routes.NewRouter(cfg, db, appLogger, recorder, m).SetupRoutes(engine)
	return engine
}
