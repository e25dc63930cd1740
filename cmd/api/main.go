// Ruthwik | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ruthwik2/storefront-admin/internal/admin"
	"github.com/ruthwik2/storefront-admin/internal/auth"
	"github.com/ruthwik2/storefront-admin/internal/config"
	"github.com/ruthwik2/storefront-admin/internal/core"
	"github.com/ruthwik2/storefront-admin/internal/health"
	"github.com/ruthwik2/storefront-admin/internal/middleware"
	"github.com/ruthwik2/storefront-admin/internal/product"
	"github.com/ruthwik2/storefront-admin/internal/server"
	"github.com/ruthwik2/storefront-admin/internal/upload"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"expire", cfg.JWT.Expire.String(),
	)

	adminRepo := admin.NewRepository(db.DB)
	adminSvc := admin.NewService(adminRepo)
	adminHandler := admin.NewHandler(adminSvc)

	authSvc := auth.NewService(adminSvc, tokenManager)
	authHandler := auth.NewHandler(authSvc)

	productRepo := product.NewRepository(db.DB)
	productSvc := product.NewService(productRepo, product.NewRedisCache(redis.Client))
	productHandler := product.NewHandler(productSvc)

	uploadHandler := upload.NewHandler(upload.NewSigner(cfg.Cloudinary))

	statsHandler := admin.NewStatsHandler(admin.StatsConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	healthHandler := health.NewHandler(
		health.Check{Name: "database", Ping: db.Ping},
		health.Check{Name: "redis", Ping: redis.Ping},
	)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokenManager)
	adminOnly := middleware.RequireAdmin

	authHandler.RegisterRoutes(router, authenticator)
	adminHandler.RegisterRoutes(router, authenticator, adminOnly)
	statsHandler.RegisterRoutes(router, authenticator, adminOnly)
	productHandler.RegisterRoutes(router, authenticator)
	uploadHandler.RegisterRoutes(router, authenticator)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
