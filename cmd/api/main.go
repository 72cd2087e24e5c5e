// Copyright (c) 2026 ArtFolio. All rights reserved.

// Command api is the entry point for the ArtFolio HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
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

	"github.com/artfolio/artfolio/internal/api"
	"github.com/artfolio/artfolio/internal/contact"
	"github.com/artfolio/artfolio/internal/gallery"
	"github.com/artfolio/artfolio/internal/news"
	"github.com/artfolio/artfolio/internal/platform/config"
	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/mail"
	"github.com/artfolio/artfolio/internal/platform/migration"
	pgstore "github.com/artfolio/artfolio/internal/platform/postgres"
	redisstore "github.com/artfolio/artfolio/internal/platform/redis"
	"github.com/artfolio/artfolio/internal/platform/sec"
	"github.com/artfolio/artfolio/internal/platform/upload"
	"github.com/artfolio/artfolio/internal/shop"
	"github.com/artfolio/artfolio/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[ArtFolio] service_initializing")

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

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
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

	// ── 6. Token Service ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, constants.AccessTokenTTL)
	must(log, err, "initialize token service")

	// ── 7. Upload Store ───────────────────────────────────────────────────
	uploadStore, err := upload.NewStore(cfg.UploadDir)
	must(log, err, "initialize upload store")

	// ── 8. Mailer ─────────────────────────────────────────────────────────
	var mailer mail.Mailer = mail.NoopMailer{}
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	} else {
		log.Warn("smtp_not_configured", slog.String("effect", "contact notifications disabled"))
	}

	// ── 9. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 10. Domain Wiring ─────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, tokenService)
	authHandler := auth.NewHandler(authService, uploadStore)

	artworkRepository := gallery.NewArtworkRepository(pool)
	galleryService := gallery.NewService(artworkRepository)
	galleryHandler := gallery.NewHandler(galleryService, uploadStore)

	productRepository := shop.NewProductRepository(pool)
	shopService := shop.NewService(productRepository)
	shopHandler := shop.NewHandler(shopService, uploadStore)

	newsRepository := news.NewNewsRepository(pool)
	newsService := news.NewService(newsRepository)
	newsHandler := news.NewHandler(newsService, uploadStore)

	messageRepository := contact.NewMessageRepository(pool)
	throttleRepository := contact.NewThrottleRepository(rdb)
	contactService := contact.NewService(messageRepository, throttleRepository, mailer, cfg.ContactRecipient)
	contactHandler := contact.NewHandler(contactService)

	// ── 11. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Gallery:   galleryHandler,
		Shop:      shopHandler,
		News:      newsHandler,
		Contact:   contactHandler,
	}

	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	server := api.NewServer(appCtx, cfg, log, tokenService, uploadStore.BaseDir(), handlers)

	// ── 12. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
