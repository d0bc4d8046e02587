package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/renaspress/renaspress-backend/internal/domain/errors"
	"github.com/renaspress/renaspress-backend/internal/domain/ports"
	"github.com/renaspress/renaspress-backend/internal/handlers/dto"
	"github.com/renaspress/renaspress-backend/internal/handlers/middleware"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/i18n"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/metrics"
)

const healthTimeout = 2 * time.Second

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	Auth        *AuthHandler
	Users       *UserHandler
	Posts       *PostHandler
	Translation *TranslationHandler
	Media       *MediaHandler
	Forum       *ForumHandler
	News        *NewsHandler
}

// RouterOptions carries the cross-cutting dependencies of the router.
type RouterOptions struct {
	Logger         ports.Logger
	I18n           *i18n.Service
	BaseURL        string
	AllowedOrigins []string
	Authenticator  middleware.Authenticator
	Limiter        middleware.Limiter
	RateLimit      config.RateLimitConfig
	// HealthCheck reports whether the backing services are reachable; nil
	// means always healthy.
	HealthCheck func(ctx context.Context) error
	Swagger     bool
}

// NewRouter builds the gin engine with every route under /api.
func NewRouter(opts RouterOptions, h Handlers) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(opts.Logger),
		middleware.Metrics(),
		middleware.CORS(opts.AllowedOrigins),
		func(c *gin.Context) {
			c.Set(dto.BaseURLContextKey, opts.BaseURL)
			c.Next()
		},
		middleware.NewI18nMiddleware(opts.I18n).DetectLanguage(),
	)

	router.NoRoute(func(c *gin.Context) {
		dto.WriteError(c, errors.ErrRouteMissing)
	})

	router.GET("/health", healthHandler(opts.HealthCheck))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := middleware.NewAuthMiddleware(opts.Authenticator, dto.WriteError)
	limits := middleware.NewRateLimitMiddleware(opts.Limiter, opts.RateLimit.Window, opts.Logger, dto.WriteError)
	requireAuth := auth.RequireAuth()
	optionalAuth := auth.OptionalAuth()

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", limits.Limit("auth", opts.RateLimit.Auth), h.Auth.Register)
			authRoutes.POST("/login", limits.Limit("auth", opts.RateLimit.Auth), h.Auth.Login)
			authRoutes.GET("/me", requireAuth, h.Auth.Me)
			authRoutes.POST("/logout", h.Auth.Logout)
		}

		users := api.Group("/users", requireAuth)
		{
			users.GET("", h.Users.ListUsers)
			users.POST("", h.Users.CreateUser)
			users.GET("/:id", h.Users.GetUser)
			users.PUT("/:id", h.Users.UpdateUser)
			users.DELETE("/:id", h.Users.DeleteUser)
		}

		posts := api.Group("/posts")
		{
			posts.GET("", optionalAuth, h.Posts.ListPosts)
			posts.POST("", requireAuth, h.Posts.CreatePost)
			posts.GET("/user", requireAuth, h.Posts.ListOwnPosts)
			posts.GET("/saved", requireAuth, h.Posts.ListSavedPosts)
			posts.POST("/saved", requireAuth, h.Posts.SavePost)
			posts.POST("/bulk-publish", requireAuth, h.Posts.BulkPublish)
			posts.GET("/:id", h.Posts.GetPost)
			posts.PUT("/:id", requireAuth, h.Posts.UpdatePost)
			posts.DELETE("/:id", requireAuth, h.Posts.DeletePost)
			posts.POST("/:id/like", requireAuth, h.Posts.LikePost)
			posts.POST("/:id/translate", limits.Limit("translate", opts.RateLimit.Translate), h.Translation.TranslatePost)
			posts.GET("/:id/translate", h.Translation.GetPostTranslations)
		}

		translate := api.Group("/translate")
		{
			translate.GET("", h.Translation.TranslateUsage)
			translate.POST("", limits.Limit("translate", opts.RateLimit.Translate), h.Translation.Translate)
			translate.GET("/languages", h.Translation.Languages)
		}

		upload := api.Group("/upload", requireAuth, limits.Limit("upload", opts.RateLimit.Upload))
		{
			upload.POST("/image", h.Media.UploadImage)
			upload.POST("/video", h.Media.UploadVideo)
		}

		forum := api.Group("/forum")
		{
			forum.GET("/topics", h.Forum.ListTopics)
			forum.POST("/topics", requireAuth, h.Forum.CreateTopic)
			forum.GET("/topics/:id", h.Forum.GetTopic)
			forum.POST("/comments", optionalAuth, h.Forum.CreateComment)
		}

		news := api.Group("/newsapi")
		{
			news.GET("/fetch-saudi-news", h.News.NewsUsage)
			news.POST("/fetch-saudi-news", requireAuth, h.News.ImportNews)
		}
	}

	return router, nil
}

// healthHandler answers 503 while check fails.
func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()
			if err := check(ctx); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
