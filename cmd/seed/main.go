// Command seed creates the admin account and, optionally, demo posts.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/renaspress/renaspress-backend/internal/infrastructure/config"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/logging"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/persistence/postgres"
	"github.com/renaspress/renaspress-backend/internal/infrastructure/security"
	"github.com/renaspress/renaspress-backend/internal/seed"
	"github.com/renaspress/renaspress-backend/internal/services"
)

func main() {
	numPosts := flag.Int("posts", 0, "Number of demo posts to create")
	fakerSeed := flag.Int64("seed", time.Now().UnixNano(), "Seed for the demo content generator")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	hasher := security.NewBcryptHasher(security.DefaultBcryptCost)

	userService := services.NewUserService(userRepo, postRepo, hasher, postgres.NewUnitOfWork(db), logger)
	postService := services.NewPostService(postRepo, userRepo, logger)

	ctx := context.Background()

	admin, created, err := userService.EnsureAdmin(ctx, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		logger.Error("failed to seed admin", "error", err)
		log.Fatal(err)
	}
	if created {
		logger.Info("admin created", "email", admin.Email.String())
	} else {
		logger.Info("admin already exists", "email", admin.Email.String(), "role", admin.Role)
	}

	factory := seed.NewPostFactory(*fakerSeed)
	for i := 0; i < *numPosts; i++ {
		post, err := postService.Create(ctx, admin, factory.Post())
		if err != nil {
			logger.Error("failed to seed post", "index", i, "error", err)
			log.Fatal(err)
		}
		logger.Debug("post seeded", "id", post.ID, "slug", post.Slug, "status", post.Status)
	}

	logger.Info("seed completed", "posts", *numPosts, "seed", *fakerSeed)
}
