package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"golang.org/x/time/rate"

	"github.com/angelmondragon/panier-backend/api/controllers"
	"github.com/angelmondragon/panier-backend/api/middleware"
	"github.com/angelmondragon/panier-backend/api/routes"
	"github.com/angelmondragon/panier-backend/internal/cart"
	"github.com/angelmondragon/panier-backend/internal/palette"
	"github.com/angelmondragon/panier-backend/internal/preferences"
	"github.com/angelmondragon/panier-backend/pkg/config"
	"github.com/angelmondragon/panier-backend/pkg/instance"
	"github.com/angelmondragon/panier-backend/pkg/logger"
	"github.com/angelmondragon/panier-backend/pkg/metrics"
	"github.com/angelmondragon/panier-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	readiness := map[string]controllers.Pinger{}

	var store preferences.Store
	if cfg.Redis.Enabled() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return redisErr
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		store = preferences.NewRedisStore(redisClient)
		readiness["redis"] = redisClient
	} else {
		logg.Warn(ctx, "redis not configured, preferences kept in memory")
		store = preferences.NewMemoryStore()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cartMetrics := metrics.NewCartMetrics(registry)
	notifier := cart.NewNotifier(logg, cartMetrics)

	sessions := cart.NewRegistry(cart.RegistryOptions{
		IdleTTL:         cfg.Cart.IdleTTL,
		CleanupInterval: cfg.Cart.CleanupInterval,
		Listeners:       notifier.Listeners,
		OnOpen:          notifier.SessionOpened,
		OnClose:         notifier.SessionClosed,
	})
	cartService, err := cart.NewService(sessions, cartMetrics)
	if err != nil {
		return err
	}

	preferencesService, err := preferences.NewService(store)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(
		ctx,
		rate.Limit(cfg.RateLimit.RPS),
		cfg.RateLimit.Burst,
		cfg.RateLimit.CleanupPeriod,
		cfg.RateLimit.ClientTTL,
		cfg.RateLimit.TrustProxyHeaders,
		logg,
	)
	defer limiter.Shutdown()

	addr := ":" + cfg.App.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, registry, readiness, limiter, cartService, preferencesService, palette.New()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(logCtx, "starting api server")

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return multierr.Append(server.Shutdown(shutdownCtx), <-serveErr)
}
