// ABOUTME: Application entry point: config, dependency wiring and lifecycle
// ABOUTME: Selects the cache backend and runs the server until SIGINT/SIGTERM

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cs-embed-api/api"
	"cs-embed-api/core/interfaces"
	"cs-embed-api/infrastructure/cache/memory"
	"cs-embed-api/infrastructure/cache/redis"
	"cs-embed-api/infrastructure/http/standard"
	"cs-embed-api/infrastructure/logger/logrus"
	"cs-embed-api/pkg/config"
)

const shutdownGrace = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logrus.NewLogger(cfg.Log.File)

	cache, err := newCache(cfg, logger)
	if err != nil {
		return fmt.Errorf("cache init: %w", err)
	}

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: standard.NewStandardHTTPClient(time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second),
		Logger:     logger,
	}

	server := api.NewServer(cfg.Server, deps)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newCache selects the configured cache backend.
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, error) {
	switch cfg.Cache.Type {
	case "redis":
		cache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return cache, nil
	default:
		logger.Info("using in-memory cache", nil)
		return memory.NewMemoryCache(), nil
	}
}
