package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Razzak118348/University-job-portal-server/internal/cache"
	"github.com/Razzak118348/University-job-portal-server/internal/config"
	"github.com/Razzak118348/University-job-portal-server/internal/database"
	"github.com/Razzak118348/University-job-portal-server/internal/handlers"
	"github.com/Razzak118348/University-job-portal-server/internal/logging"
	"github.com/Razzak118348/University-job-portal-server/internal/server"
	"github.com/Razzak118348/University-job-portal-server/internal/services"
)

func main() {
	// 1. Load Environment Variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := logging.New(cfg.Log)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Document Store. A failed connection is logged but the server still
	// starts; requests answer 500 until a restart reaches the store.
	store := openStore(ctx, cfg, logger)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing document store", "error", err)
		}
	}()

	counts := openCountCache(ctx, cfg, logger)

	// 3. Services
	jobService := services.NewJobService(services.JobServiceOptions{
		Jobs:              store.Collection(services.JobsCollection),
		Counts:            counts,
		EmptyListNotFound: cfg.EmptyListNotFound,
		Logger:            logger,
	})
	profileService := services.NewProfileService(store.Collection(services.UsersCollection))
	applicationService := services.NewApplicationService(services.ApplicationServiceOptions{
		Applications:      store.Collection(services.ApplicationsCollection),
		EmptyListNotFound: cfg.EmptyListNotFound,
	})

	// 4. Router
	router := server.NewRouter(server.Options{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Store:          store,
		Jobs:           handlers.NewJobHandler(jobService, logger),
		Profiles:       handlers.NewProfileHandler(profileService, logger),
		Applications:   handlers.NewApplicationHandler(applicationService, logger),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", "http://localhost:"+cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) database.Store {
	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	store, err := database.Open(connectCtx, cfg.StoreDriver, cfg.DB, logger)
	if err != nil {
		logger.Error("Error connecting to document store", "driver", cfg.StoreDriver, "error", err)
		return database.NewUnavailableStore(err)
	}
	return store
}

func openCountCache(ctx context.Context, cfg config.Config, logger *slog.Logger) cache.CountCache {
	if !cfg.Redis.Enabled() || cfg.CountCacheTTL == 0 {
		return cache.Noop{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable; job counts will be read from the store", "addr", cfg.Redis.Addr, "error", err)
	} else {
		logger.Info("redis count cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.CountCacheTTL)
	}
	return cache.NewRedisCountCache(client, cfg.CountCacheTTL)
}
