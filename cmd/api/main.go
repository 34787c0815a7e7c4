// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Opinion server: the JSON API and
// the server-rendered pages.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire repositories, services and handlers.
//  7. Promote the configured admin account.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/taibuivan/opinion/internal/api"
	"github.com/taibuivan/opinion/internal/catalog/drama"
	"github.com/taibuivan/opinion/internal/catalog/mood"
	"github.com/taibuivan/opinion/internal/catalog/quote"
	"github.com/taibuivan/opinion/internal/catalog/quotemood"
	"github.com/taibuivan/opinion/internal/platform/config"
	"github.com/taibuivan/opinion/internal/platform/constants"
	"github.com/taibuivan/opinion/internal/platform/migration"
	pgstore "github.com/taibuivan/opinion/internal/platform/postgres"
	redisstore "github.com/taibuivan/opinion/internal/platform/redis"
	"github.com/taibuivan/opinion/internal/platform/sec"
	"github.com/taibuivan/opinion/internal/social/comment"
	"github.com/taibuivan/opinion/internal/users/auth"
	"github.com/taibuivan/opinion/internal/web"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Startup gets a deadline so a bad DSN fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	secureCookies := cfg.IsProduction()

	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, auth.NewSessionRepository(rdb), jwtSvc, log)

	dramaService := drama.NewService(drama.NewPostgresRepository(pool), log)
	moodService := mood.NewService(mood.NewPostgresRepository(pool), log)
	commentService := comment.NewService(comment.NewPostgresRepository(pool), auth.NewDirectory(userRepository), log)
	quoteService := quote.NewService(quote.NewPostgresRepository(pool), commentService, log)
	quoteMoodService := quotemood.NewService(quotemood.NewPostgresRepository(pool), log)

	pages, err := web.New(web.Services{
		Dramas:   dramaService,
		Moods:    moodService,
		Quotes:   quoteService,
		Comments: commentService,
		Accounts: authService,
	}, secureCookies)
	must(log, err, "parse page templates")

	// ── 7. Admin Bootstrap ────────────────────────────────────────────────
	// The account must already be registered; a missing one is only logged.
	if cfg.AdminEmail != "" {
		if err := authService.PromoteAdmin(startupCtx, cfg.AdminEmail); err != nil {
			log.Warn("admin_promotion_skipped", slog.String("email", cfg.AdminEmail), slog.Any("error", err))
		}
	}

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		Database: func(ctx context.Context) error { return pgstore.Ping(ctx, pool) },
		Sessions: func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) },
	}, log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, secureCookies),
		Drama:     drama.NewHandler(dramaService),
		Mood:      mood.NewHandler(moodService),
		Quote:     quote.NewHandler(quoteService),
		QuoteMood: quotemood.NewHandler(quoteMoodService),
		Comment:   comment.NewHandler(commentService),
		Pages:     pages,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
// It is only for startup wiring.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
