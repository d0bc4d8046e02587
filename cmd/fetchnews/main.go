// Command fetchnews imports the current Saudi headlines once; run it from
// cron.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/logging"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/newsapi"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/persistence/postgres"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/security"
	"github.com/renaspress/renaspress-backend/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		log.Fatal(err)
	}

	newsService := services.NewNewsService(
		postgres.NewPostRepository(db),
		postgres.NewUserRepository(db),
		newsapi.NewClient(cfg.NewsAPI),
		security.NewBcryptHasher(security.DefaultBcryptCost),
		logger,
		cfg.NewsAPI.Country,
		cfg.NewsAPI.PageSize,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := newsService.Import(ctx)
	if err != nil {
		logger.Error("news import failed", "error", err)
		os.Exit(1)
	}

	for _, post := range result.Posts {
		logger.Info("imported", "id", post.ID, "title", post.Title, "category", post.Category)
	}
	logger.Info("news import completed",
		"imported", len(result.Posts),
		"total_articles", result.TotalArticles,
	)
}
