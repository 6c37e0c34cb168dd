package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"microtwit/internal/config"
	"microtwit/internal/database"
	"microtwit/internal/handler"
	"microtwit/internal/repository"
	"microtwit/internal/service"
	"microtwit/internal/storage"
)

func Run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.SeedDemoData {
		if err := database.SeedDemoData(ctx, db); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	var store storage.BlobStore
	var mediaDir string
	switch cfg.StorageBackend {
	case "s3":
		store, err = storage.NewS3Store(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to init S3 storage: %w", err)
		}
	case "disk":
		diskStore, err := storage.NewDiskStore(cfg.MediaDir, cfg.PublicBaseURL)
		if err != nil {
			return fmt.Errorf("failed to init disk storage: %w", err)
		}
		store = diskStore
		mediaDir = cfg.MediaDir
	default:
		return fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	userRepo := repository.NewUserRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	followRepo := repository.NewFollowRepository(db)

	mediaService := service.NewMediaService(store, mediaRepo)
	userService := service.NewUserService(userRepo)
	tweetService := service.NewTweetService(tweetRepo, mediaRepo, likeRepo, mediaService)
	feedService := service.NewFeedService(tweetRepo)
	followService := service.NewFollowService(followRepo, userRepo)

	router := NewRouter(RouterConfig{
		UserHandler:   handler.NewUserHandler(userService),
		TweetHandler:  handler.NewTweetHandler(tweetService),
		FeedHandler:   handler.NewFeedHandler(feedService),
		FollowHandler: handler.NewFollowHandler(followService),
		MediaHandler:  handler.NewMediaHandler(mediaService),
		UserRepo:      userRepo,
		MediaDir:      mediaDir,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
