// Package main is the entry point for the flight offers service.
//
//	@title						Flight Offers API
//	@version					1.0.0
//	@description				Flight offers search with session-scoped filtering. Each search obtains an offers snapshot from an upstream provider chain with automatic failover, binds it to a filter session, and returns a view that can be narrowed by stops, price range and airlines without re-querying the upstream.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/farescope/flight-offers-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/farescope/flight-offers-service/docs"

	flighthttp "github.com/farescope/flight-offers-service/internal/adapter/http"
	"github.com/farescope/flight-offers-service/internal/adapter/http/middleware"
	"github.com/farescope/flight-offers-service/internal/adapter/provider/amadeus"
	"github.com/farescope/flight-offers-service/internal/adapter/provider/staticmock"
	"github.com/farescope/flight-offers-service/internal/cache"
	"github.com/farescope/flight-offers-service/internal/config"
	"github.com/farescope/flight-offers-service/internal/domain"
	"github.com/farescope/flight-offers-service/internal/infrastructure/logger"
	"github.com/farescope/flight-offers-service/internal/metrics"
	"github.com/farescope/flight-offers-service/internal/session"
	"github.com/farescope/flight-offers-service/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	appLog := logger.New(cfg.Logging)

	appLog.Info().
		Str("env", cfg.App.Env).
		Str("address", cfg.Server.Address()).
		Msg("Configuration loaded")

	// Wire the provider chain, snapshot cache and session store
	registry := buildRegistry(cfg, appLog)
	snapshots, cacheBackend := buildCache(cfg, appLog)

	store := session.NewStore(session.Config{
		TTL:             cfg.Session.TTL,
		CleanupInterval: cfg.Session.CleanupInterval,
	}, nil, appLog)

	search := usecase.NewSearchUseCase(registry, snapshots, store, appLog, &usecase.Config{
		GlobalTimeout:   cfg.Timeouts.GlobalSearch,
		ProviderTimeout: cfg.Timeouts.PerProvider,
	})

	handler := flighthttp.NewFlightHandler(search, store, flighthttp.HealthInfo{
		Providers: registry.Names(),
		Cache:     cacheBackend,
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and routes
	middleware.Setup(e, appLog.Logger, metrics.Middleware())
	flighthttp.RegisterRoutes(e, handler)

	// Start server with graceful shutdown
	go func() {
		appLog.Info().
			Str("address", cfg.Server.Address()).
			Strs("providers", registry.Names()).
			Str("cache", cacheBackend).
			Msg("Starting server")
		if err := e.Start(cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, store, snapshots, appLog)
}

// buildRegistry assembles the provider chain in failover order: the live
// Amadeus upstream first when credentials are configured, the embedded
// catalogue always last so searches keep working when the upstream is down.
func buildRegistry(cfg *config.Config, log *logger.Logger) *domain.ProviderRegistry {
	registry := domain.NewProviderRegistry()

	if cfg.Amadeus.HasCredentials() {
		registry.Register(amadeus.NewAdapter(amadeus.Config{
			BaseURL:           cfg.Amadeus.BaseURL,
			APIKey:            cfg.Amadeus.APIKey,
			APISecret:         cfg.Amadeus.APISecret,
			Timeout:           cfg.Amadeus.Timeout,
			RequestsPerSecond: cfg.Amadeus.RequestsPerSecond,
			Burst:             cfg.Amadeus.Burst,
		}, log))
	} else {
		log.Warn().Msg("Amadeus credentials not configured, serving from the embedded catalogue only")
	}

	fallback, err := staticmock.NewProvider()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded offers catalogue")
	}
	registry.Register(fallback)

	return registry
}

// buildCache connects the snapshot cache. An unreachable Redis degrades to
// the no-op cache with a warning instead of blocking startup; every search
// then goes to the providers.
func buildCache(cfg *config.Config, log *logger.Logger) (cache.Cache, string) {
	if !cfg.Redis.Enabled {
		return cache.NewNoopCache(), "disabled"
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, snapshot caching disabled")
		return cache.NewNoopCache(), "disabled"
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Snapshot cache connected")
	return redisCache, "redis"
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, store *session.Store, snapshots cache.Cache, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	store.Close()

	if err := snapshots.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing snapshot cache")
	}

	log.Info().Msg("Server stopped")
}
