// Package main is the entry point for the Kanda CMS API server.
// It loads configuration, selects the storage backend, sets up routing,
// and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kandacms/internal/cache"
	"kandacms/internal/config"
	"kandacms/internal/database"
	"kandacms/internal/handlers"
	"kandacms/internal/router"
	"kandacms/internal/store"
	"kandacms/internal/store/memory"
	"kandacms/internal/store/postgres"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"backend", cfg.StorageBackend,
	)

	ctx := context.Background()

	// Select the storage backend. Postgres is the persistent default;
	// the memory backend keeps everything in process and loses it on
	// restart.
	var stores *store.Stores
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.Connect(ctx, cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		stores = postgres.New(db)

	case config.BackendMemory:
		slog.Warn("using ephemeral in-memory storage, data is lost on restart")
		stores = memory.New()
	}

	// Seed starting data. The memory backend always needs it (a fresh
	// process has no admin credential); the database gets it only in
	// development. Seeding is a no-op when users already exist.
	if cfg.IsDev() || cfg.StorageBackend == config.BackendMemory {
		if err := database.Seed(stores); err != nil {
			slog.Error("failed to seed storage", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the response cache (optional; the server
	// works without it, every read just goes to storage).
	var respCache *cache.ResponseCache
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		respCache = cache.NewResponseCache(valkeyClient, cache.DefaultResponseTTL)
	} else {
		slog.Warn("valkey not configured, response cache disabled")
	}

	// Create handlers and the chi router.
	api := handlers.New(stores, respCache)
	r := router.New(api)

	// Create the HTTP server with sensible timeouts. No handler does
	// more than one round trip to the backing store, so the write
	// timeout can stay tight.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
