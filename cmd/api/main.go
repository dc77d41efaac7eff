package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gastronomia/backend/config"
	"github.com/gastronomia/backend/internal/database"
	"github.com/gastronomia/backend/internal/server"
	"github.com/gastronomia/backend/internal/service"
	"github.com/gastronomia/backend/internal/session"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs sessions and rate limiting; without it the API still runs,
	// with in-memory sessions and no rate limiting.
	var sessions session.Store
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, using in-memory sessions: %v", err)
		redisClient = nil
		sessions = session.NewMemoryStore()
	} else {
		sessions = session.NewRedisStore(redisClient)
	}

	authService := service.NewAuthService(db, sessions, cfg.JWTSecret, cfg.SessionTTL)

	var imageService service.IImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("Warning: S3 unavailable, image upload disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	srv := server.New(cfg, db, authService, imageService, redisClient)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s:%s", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
