package router

import (
	"io"
	"net/http"
	"strings"

	"github.com/anonto42/portfolio/backend/internal/handlers"
	"github.com/anonto42/portfolio/backend/internal/middleware"
	"github.com/anonto42/portfolio/backend/internal/repositories"
	"github.com/anonto42/portfolio/backend/pkg/config"
	"github.com/anonto42/portfolio/backend/pkg/logger"
	"github.com/anonto42/portfolio/backend/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the routes are built from.
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Files     storage.FileStore
	Social    handlers.SocialVerifier
	RateStore eMiddleware.RateLimiterStore
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(middleware.RequestLogger(logger.Log))
	logger.Log.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, deps Dependencies) {
	db, cfg := deps.DB, deps.Config

	e.GET("/health", handlers.NewHealthHandler(db).HealthCheck)
	serveMedia(e, cfg, deps.Files)

	// --- Initialize Repositories ---
	userRepo := repositories.NewSQLUserRepository(db)
	tokenRepo := repositories.NewSQLTokenRepository(db)
	projectRepo := repositories.NewSQLProjectRepository(db)
	mediaRepo := repositories.NewSQLMediaRepository(db)
	likeRepo := repositories.NewSQLLikeRepository(db)
	notificationRepo := repositories.NewSQLNotificationRepository(db)
	contactRepo := repositories.NewSQLContactRepository(db)
	subscriptionRepo := repositories.NewSQLSubscriptionRepository(db)
	settingsRepo := repositories.NewSQLSettingsRepository(db)

	authenticator := middleware.NewAuthenticator(cfg.JWTSecret, cfg.TokenTTL, userRepo, tokenRepo)
	notifier := handlers.NewNotifier(notificationRepo, userRepo, logger.Log)

	// Every /api route runs with optional authentication; Require decides per route.
	api := e.Group("/api", authenticator.Middleware())
	if deps.RateStore != nil {
		api.Use(middleware.RateLimit(deps.RateStore))
	}
	logger.Log.Info("Authentication and rate limiting applied to /api group.")

	authGroup := api.Group("/auth")
	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo, authenticator, deps.Social, logger.Log)
	authHandler.RegisterAuthRoutes(authGroup)
	handlers.NewUserHandler(userRepo).RegisterAdminRoutes(authGroup)
	logger.Log.Info("Auth routes configured.")

	handlers.NewProjectHandler(projectRepo, mediaRepo, likeRepo, notifier).RegisterProjectRoutes(api)
	logger.Log.Info("Project routes configured.")

	handlers.RegisterContentRoutes(api, db)
	logger.Log.Info("Skill and about routes configured.")

	handlers.NewLikeHandler(likeRepo, projectRepo, mediaRepo).RegisterLikeRoutes(api)
	logger.Log.Info("Like routes configured.")

	handlers.NewContactHandler(contactRepo, notifier).RegisterContactRoutes(api)
	handlers.NewSubscriptionHandler(subscriptionRepo).RegisterSubscriptionRoutes(api)
	logger.Log.Info("Contact and subscription routes configured.")

	handlers.NewNotificationHandler(notificationRepo, userRepo).RegisterNotificationRoutes(api)
	logger.Log.Info("Notification routes configured.")

	handlers.NewSettingsHandler(settingsRepo).RegisterSettingsRoutes(api)
	handlers.NewCVHandler(handlers.NewCVStores(db), settingsRepo).RegisterCVRoutes(api)
	logger.Log.Info("Settings and CV routes configured.")

	if deps.Files != nil {
		handlers.NewUploadHandler(deps.Files, cfg.MaxUploadBytes, logger.Log).RegisterUploadRoutes(api)
		logger.Log.Info("Upload routes configured.")
	}

	logger.Log.Info("All routes configured.")
}

// serveMedia exposes stored uploads below MEDIA_URL when they live on this
// server. S3 objects are served by the bucket itself.
func serveMedia(e *echo.Echo, cfg *config.Config, files storage.FileStore) {
	prefix := "/" + strings.Trim(cfg.MediaURL, "/")
	if prefix == "/" || strings.Contains(cfg.MediaURL, "://") {
		return
	}

	switch fs := files.(type) {
	case *storage.LocalFileStore:
		e.Static(prefix, fs.Root())
	case *storage.GridFSFileStore:
		e.GET(prefix+"/*", func(c echo.Context) error {
			stream, err := fs.Open(c.Request().Context(), c.Param("*"))
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "Not found.")
			}
			defer stream.Close()
			c.Response().WriteHeader(http.StatusOK)
			_, err = io.Copy(c.Response(), stream)
			return err
		})
	}
}
