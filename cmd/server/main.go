package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitfora-core/internal/auth"
	"gitfora-core/internal/config"
	"gitfora-core/internal/github"
	"gitfora-core/internal/logging"
	"gitfora-core/internal/server"
	"gitfora-core/internal/service"
	"gitfora-core/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Gitfora Core API
// @version 1.0
// @description GitHub analytics backend: caching proxy over the GitHub REST API with derived trending and rising views

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// The store is process-lifetime only; every start rebuilds it from seed
	// data.
	entityStore := store.New()
	entityStore.Seed()

	analytics := service.NewAnalytics(entityStore)
	githubClient := github.NewClient(cfg.GitHub.BaseURL, cfg.GitHub.Token)
	if !githubClient.Configured() {
		logger.Warn("no GitHub access token configured; upstream-backed endpoints will report a configuration error")
	}

	// Auth routes are registered only when a JWT secret is configured.
	var tokens *auth.TokenIssuer
	if cfg.Auth.JWTSecret != "" {
		tokens, err = auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
		if err != nil {
			log.Fatalf("Failed to initialize token issuer: %v", err)
		}
	} else {
		logger.Warn("no JWT secret configured; auth routes disabled")
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := server.NewRouter(server.Dependencies{
		Store:     entityStore,
		Analytics: analytics,
		Fetcher:   githubClient,
		Tokens:    tokens,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize router: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.GetServerAddress()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server exited")
}
