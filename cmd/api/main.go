// Command api is the ScoutDesk Data API server.
//
// Usage:
//
//	scoutdesk-api
//	API_PORT=8080 scoutdesk-api

// @title ScoutDesk Data API
// @version 1.0.0
// @description Player profile extraction API. Accepts public profile URLs in six languages, normalizes every field to English, and optionally persists records for the scouting database.
// @host localhost:5001
// @BasePath /
// @schemes http https
// @contact.name ScoutDesk
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/scoutdesk/scoutdesk-data/internal/api"
	"github.com/scoutdesk/scoutdesk-data/internal/cache"
	"github.com/scoutdesk/scoutdesk-data/internal/config"
	"github.com/scoutdesk/scoutdesk-data/internal/db"
	"github.com/scoutdesk/scoutdesk-data/internal/scraper"
	"github.com/scoutdesk/scoutdesk-data/internal/translate"

	_ "github.com/scoutdesk/scoutdesk-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Connect to database when configured; the API runs fine without one.
	var pool *db.Pool
	if cfg.HasDatabase() {
		logger.Info("Connecting to database...")
		pool, err = db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	} else {
		logger.Info("No DATABASE_URL configured, persistence disabled")
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Build the extraction pipeline
	translator := translate.New(translate.NewGoogleClient(cfg.TranslationURL), logger)
	s := scraper.New(scraper.Options{
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.FetchTimeout,
		Translator: translator,
		Logger:     logger,
	})

	// Create router
	router := api.NewRouter(s, appCache, pool, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting ScoutDesk Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
