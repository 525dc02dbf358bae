// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Ecclesia HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Start tracing (no-op unless OTEL_ENABLED).
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis when REDIS_URL is set.
//  6. Run database migrations (idempotent).
//  7. Build the token codec, session resolver, role gate and visibility policy.
//  8. Wire repositories, services and handlers.
//  9. Ensure the bootstrap administrator.
//  10. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/ecclesia/internal/api"
	"github.com/taibuivan/ecclesia/internal/core/blog"
	"github.com/taibuivan/ecclesia/internal/core/event"
	"github.com/taibuivan/ecclesia/internal/core/gallery"
	"github.com/taibuivan/ecclesia/internal/core/media"
	"github.com/taibuivan/ecclesia/internal/core/note"
	"github.com/taibuivan/ecclesia/internal/core/prayer"
	"github.com/taibuivan/ecclesia/internal/core/prophecy"
	"github.com/taibuivan/ecclesia/internal/core/sitecontent"
	"github.com/taibuivan/ecclesia/internal/core/slider"
	"github.com/taibuivan/ecclesia/internal/core/team"
	"github.com/taibuivan/ecclesia/internal/platform/authz"
	"github.com/taibuivan/ecclesia/internal/platform/config"
	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/middleware"
	"github.com/taibuivan/ecclesia/internal/platform/migration"
	pgstore "github.com/taibuivan/ecclesia/internal/platform/postgres"
	redisstore "github.com/taibuivan/ecclesia/internal/platform/redis"
	"github.com/taibuivan/ecclesia/internal/platform/sec"
	"github.com/taibuivan/ecclesia/internal/platform/telemetry"
	"github.com/taibuivan/ecclesia/internal/users/account"
	"github.com/taibuivan/ecclesia/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context lives until a shutdown signal. Startup steps get their own
	// deadline so misconfiguration fails fast.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Tracing ────────────────────────────────────────────────────────
	tracing, err := telemetry.New(startupCtx, telemetry.Options{
		Enabled:     cfg.OtelEnabled,
		Endpoint:    cfg.OtelEndpoint,
		Insecure:    cfg.OtelInsecure,
		SampleRate:  cfg.OtelSampleRate,
		Environment: cfg.Environment,
	})
	must(log, err, "initialize telemetry")
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			log.Error("telemetry_shutdown_error", slog.Any("error", err))
		}
	}()

	// ── 4. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	checkers := []api.Checker{pgstore.Checker{Pool: pool}}

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_error", slog.Any("error", cerr))
			}
		}()
		checkers = append(checkers, redisstore.Checker{Client: rdb})
	} else {
		log.Warn("redis_disabled", slog.String("rate_limiter", "local"))
	}

	// ── 6. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 7. Authentication Core ────────────────────────────────────────────
	codec, err := sec.NewTokenCodec(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize token codec")

	resolver := authz.NewResolver(codec)
	gate := authz.NewGate(resolver)
	policy := authz.DefaultPolicy()
	cookies := authz.Cookies{Secure: cfg.CookieSecure(), TTL: codec.TTL()}

	proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	must(log, err, "parse trusted proxies")

	limiter := middleware.NewRateLimiter(rootCtx, rdb, middleware.PerMinute(cfg.RateLimitRequests, cfg.RateLimitBurst))
	submissions := limiter.Scoped("submissions", middleware.PerMinute(cfg.SubmissionRateLimit, cfg.SubmissionRateLimit))

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(auth.NewUserRepository(pool), codec, log)
	accountService := account.NewService(account.NewAccountRepository(pool), log)

	handlers := api.Handlers{
		Auth:          auth.NewHandler(authService, gate, cookies),
		Users:         account.NewHandler(accountService, gate),
		Blogs:         blog.NewHandler(blog.NewService(blog.NewPostgresRepository(pool), policy, log), gate),
		Prophecies:    prophecy.NewHandler(prophecy.NewService(prophecy.NewPostgresRepository(pool), policy, log), gate),
		Slider:        slider.NewHandler(slider.NewService(slider.NewPostgresRepository(pool), policy, log), gate),
		Notes:         note.NewHandler(note.NewService(note.NewPostgresRepository(pool), policy, log), gate),
		Events:        event.NewHandler(event.NewService(event.NewPostgresRepository(pool), policy, log), gate),
		Media:         media.NewHandler(media.NewService(media.NewPostgresRepository(pool), policy, log), gate),
		Gallery:       gallery.NewHandler(gallery.NewService(gallery.NewPostgresRepository(pool), policy, log), gate),
		Team:          team.NewHandler(team.NewService(team.NewPostgresRepository(pool), policy, log), gate),
		PrayerRequest: prayer.NewHandler(prayer.NewService(prayer.NewPostgresRepository(pool), policy, log), gate, submissions.Handler),
		SiteContent:   sitecontent.NewHandler(sitecontent.NewService(sitecontent.NewPostgresRepository(pool), policy, log), gate),
	}
	handlers.Liveness, handlers.Readiness = api.NewHealthHandlers(log, checkers...)

	// ── 9. Bootstrap Administrator ────────────────────────────────────────
	if cfg.BootstrapAdmin() {
		must(log, authService.EnsureAdmin(startupCtx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword), "ensure bootstrap admin")
	}

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	server := api.NewServer(log, api.Options{
		Port:           cfg.ServerPort,
		AllowedOrigins: cfg.AllowedOrigins,
		TrustedProxies: proxies,
		CORS:           cfg,
		Resolver:       resolver,
		RateLimiter:    limiter,
		Tracer:         tracing.Tracer,
		MetricsEnabled: cfg.MetricsEnabled,
	}, handlers)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_signal_received")
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))
	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// Only used during startup wiring.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
