package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anonto42/portfolio/backend/internal/handlers"
	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/models"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/anonto42/portfolio/backend/internal/router"
	"github.com/anonto42/portfolio/backend/pkg/config"
	"github.com/anonto42/portfolio/backend/pkg/firebase"
	"github.com/anonto42/portfolio/backend/pkg/logger"
	"github.com/anonto42/portfolio/backend/pkg/storage"
	"github.com/anonto42/portfolio/backend/validators"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.InitLogger(cfg.LogLevel)

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	if err := models.Migrate(db.SQL); err != nil {
		logger.Log.Fatalf("Failed to auto migrate models: %v", err)
	}
	logger.Log.Info("Auto-migrations completed for all models.")

	if n, err := repositories.NewSQLTokenRepository(db.SQL).PurgeExpired(time.Now()); err != nil {
		logger.Log.WithError(err).Warn("Failed to purge expired token revocations")
	} else if n > 0 {
		logger.Log.Infof("Purged %d expired token revocations", n)
	}

	ctx := context.Background()

	// Firebase is optional; without it social sign-in trusts the client.
	var social handlers.SocialVerifier
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Log.Fatalf("Failed to initialize Firebase: %v", err)
		}
		social = firebase.NewVerifier(firebaseApp.AuthClient)
	}

	files, err := newFileStore(cfg, db)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize %s file store: %v", cfg.StorageBackend, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler(logger.Log)

	router.SetupMiddleware(e)
	router.SetupRoutes(e, router.Dependencies{
		DB:        db.SQL,
		Config:    cfg,
		Files:     files,
		Social:    social,
		RateStore: newRateStore(cfg),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           cfg.CORS().Handler(e),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Graceful shutdown failed")
	}
}

func newFileStore(cfg *config.Config, db *config.DB) (storage.FileStore, error) {
	switch cfg.StorageBackend {
	case "s3":
		return storage.NewS3FileStore(cfg.S3Bucket, cfg.S3Region, cfg.S3PublicURL)
	case "gridfs":
		return storage.NewGridFSFileStore(db.Mongo.Database(cfg.MongoDatabase), cfg.MediaURL)
	default:
		return storage.NewLocalFileStore(cfg.MediaRoot, cfg.MediaURL)
	}
}

func newRateStore(cfg *config.Config) eMiddleware.RateLimiterStore {
	limits := middleware.Limits{
		Anon:   cfg.AnonRateLimit,
		User:   cfg.UserRateLimit,
		Window: cfg.RateLimitWindow,
	}
	if cfg.RedisAddr != "" {
		logger.Log.Infof("Rate limiting through Redis at %s", cfg.RedisAddr)
		return middleware.NewRedisRateStore(limits, cfg.RedisAddr, cfg.RedisPassword)
	}
	return middleware.NewMemoryRateStore(limits)
}
