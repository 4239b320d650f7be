// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/forgegym/api/internal/admin"
	"github.com/forgegym/api/internal/attendance"
	"github.com/forgegym/api/internal/config"
	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/health"
	"github.com/forgegym/api/internal/member"
	"github.com/forgegym/api/internal/middleware"
	"github.com/forgegym/api/internal/notify"
	"github.com/forgegym/api/internal/payment"
	"github.com/forgegym/api/internal/plan"
	"github.com/forgegym/api/internal/server"
	"github.com/forgegym/api/internal/store"
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

	gateway, redisClient, gatewayClose, err := newGateway(ctx, cfg.Store)
	if err != nil {
		return err
	}
	logger.Info("store gateway ready", "backend", cfg.Store.Backend)

	adminHash, err := core.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash seed admin password: %w", err)
	}

	db := store.New(gateway, store.Seed{
		AdminName:         cfg.Seed.AdminName,
		AdminEmail:        cfg.Seed.AdminEmail,
		AdminPasswordHash: adminHash,
	})

	memberSvc := member.NewService(db)
	memberHandler := member.NewHandler(memberSvc)

	var notifier payment.Notifier
	if cfg.Notify.Enabled {
		notifier = notify.NewClient(cfg.Notify.Endpoint, cfg.Notify.Timeout, logger)
		logger.Info("order notification relay enabled",
			"endpoint", cfg.Notify.Endpoint,
		)
	}

	paymentSvc := payment.NewService(db)
	paymentHandler := payment.NewHandler(paymentSvc, memberSvc, notifier)

	attendanceSvc := attendance.NewService(db)
	attendanceHandler := attendance.NewHandler(attendanceSvc)

	adminSvc := admin.NewService(db, cfg.Admin.RecentWindow)
	adminHandler := admin.NewHandler(adminSvc)

	planHandler := plan.NewHandler()
	healthHandler := health.NewHandler(db)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(memberSvc)
	adminOnly := middleware.RequireAdmin

	router.Route("/v1", func(r chi.Router) {
		planHandler.RegisterRoutes(r)
		memberHandler.RegisterRoutes(r, authenticator)
		paymentHandler.RegisterRoutes(r, authenticator)
		attendanceHandler.RegisterRoutes(r, authenticator)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

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

	if gatewayClose != nil {
		if err := gatewayClose(); err != nil {
			logger.Error("store gateway close error", "error", err)
		}
	}

	logger.Info("application stopped")
	return nil
}

// newGateway builds the configured store backend. The redis client is
// returned separately so the rate limiter can share it; it is nil for the
// other backends.
func newGateway(
	ctx context.Context,
	cfg config.StoreConfig,
) (store.Gateway, *redis.Client, func() error, error) {
	switch cfg.Backend {
	case "file":
		gw, err := store.NewFileGateway(cfg.FilePath)
		if err != nil {
			return nil, nil, nil, err
		}
		return gw, nil, nil, nil

	case "redis":
		rdb, err := core.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		gw := store.NewRedisGateway(rdb.Client, cfg.RecordKey)
		return gw, rdb.Client, rdb.Close, nil

	case "postgres":
		gw, err := store.NewPostgresGateway(ctx, cfg.PostgresURL, cfg.RecordKey)
		if err != nil {
			return nil, nil, nil, err
		}
		return gw, nil, gw.Close, nil

	case "memory":
		return store.NewMemoryGateway(), nil, nil, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
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
