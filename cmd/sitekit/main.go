// Package main is the entry point for the sitekit template API server.
// It loads configuration, connects to optional backing services, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitekit/internal/cache"
	"sitekit/internal/catalog"
	"sitekit/internal/config"
	"sitekit/internal/database"
	"sitekit/internal/handlers"
	"sitekit/internal/middleware"
	"sitekit/internal/router"
	"sitekit/internal/service"
	"sitekit/internal/storage"
	"sitekit/internal/store"
)

func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"templates", catalog.Default().Len(),
	)

	// Generation log in PostgreSQL (optional).
	var generations handlers.GenerationLog
	if cfg.DatabaseEnabled() {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		generations = store.NewGenerationStore(db)
	} else {
		slog.Warn("database not configured, generation log disabled")
	}

	// Preview cache in Valkey (optional).
	var previews *cache.PreviewCache
	if cfg.ValkeyEnabled() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		previews = cache.NewPreviewCache(valkeyClient, cfg.PreviewCacheTTL)

		// Entries written by a previous build may describe a different catalog.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		previews.InvalidateAll(ctx)
		cancel()
		slog.Info("preview cache enabled", "ttl", previews.TTL())
	} else {
		slog.Warn("valkey not configured, preview cache disabled")
	}

	// Export storage in S3 (optional).
	var exporter handlers.Exporter
	if cfg.StorageEnabled() {
		storageClient, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		exporter = storageClient
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", storageClient.Bucket())
	} else {
		slog.Warn("s3 storage not configured, exports disabled")
	}

	svc := service.New(catalog.Default(), logger)
	templateHandlers := handlers.NewTemplates(svc, previews, generations, exporter)

	generateLimiter := middleware.NewRateLimiter(cfg.GenerateRateLimit, time.Minute)
	defer generateLimiter.Stop()

	r := router.New(templateHandlers, generateLimiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
