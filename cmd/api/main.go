// @title RenasPress API
// @version 1.0
// @description Bilingual (English/Arabic) news publishing API.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/renaspress/renaspress-backend/docs"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	httphandlers "github.com/renaspress/renaspress-backend/internal/handlers/http"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/cache"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/i18n"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/logging"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/newsapi"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/persistence/postgres"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/security"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/storage"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/translation"
	"github.com/renaspress/renaspress-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting renaspress backend",
		"env", cfg.Env,
		"version", "dev",
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			log.Fatal(err)
		}
		logger.Info("database migrated")
	}

	i18nService, err := i18n.NewBundledService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	rdb, err := cache.NewRedisClient(context.Background(), cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "error", err)
		rdb = nil
	}

	var mediaStorage ports.ObjectStorage
	if s, err := storage.New(cfg.Storage, logger); err != nil {
		logger.Warn("media storage disabled", "driver", cfg.Storage.Driver, "error", err)
	} else {
		mediaStorage = s
	}

	translator := translation.NewGoogleTranslator(cfg.Translation, logger)
	if !translator.Enabled() {
		logger.Warn("GOOGLE_TRANSLATE_API_KEY not set, translations fall back to the original text")
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	forumRepo := postgres.NewForumRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Services
	hasher := security.NewBcryptHasher(security.DefaultBcryptCost)
	tokens := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiresIn, cfg.JWT.Issuer)

	userService := services.NewUserService(userRepo, postRepo, hasher, uow, logger)
	authService := services.NewAuthService(userRepo, userService, tokens, hasher, logger)
	postService := services.NewPostService(postRepo, userRepo, logger)
	translationService := services.NewTranslationService(postRepo, translator, logger)
	mediaService := services.NewMediaService(mediaStorage, logger)
	forumService := services.NewForumService(forumRepo, uow, logger)
	newsService := services.NewNewsService(postRepo, userRepo, newsapi.NewClient(cfg.NewsAPI), hasher, logger,
		cfg.NewsAPI.Country, cfg.NewsAPI.PageSize)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := httphandlers.NewRouter(httphandlers.RouterOptions{
		Logger:         logger,
		I18n:           i18nService,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Authenticator:  authService,
		Limiter:        cache.NewRateLimiter(rdb),
		RateLimit:      cfg.RateLimit,
		HealthCheck: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Swagger: !cfg.IsProduction(),
	}, httphandlers.Handlers{
		Auth:        httphandlers.NewAuthHandler(authService),
		Users:       httphandlers.NewUserHandler(userService),
		Posts:       httphandlers.NewPostHandler(postService),
		Translation: httphandlers.NewTranslationHandler(translationService),
		Media:       httphandlers.NewMediaHandler(mediaService),
		Forum:       httphandlers.NewForumHandler(forumService),
		News:        httphandlers.NewNewsHandler(newsService),
	})
	if err != nil {
		logger.Error("failed to build router", "error", err)
		log.Fatal(err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
