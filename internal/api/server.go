// Copyright (c) 2026 ArtFolio. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/artfolio/artfolio/internal/contact"
	"github.com/artfolio/artfolio/internal/gallery"
	"github.com/artfolio/artfolio/internal/news"
	"github.com/artfolio/artfolio/internal/platform/config"
	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/middleware"
	"github.com/artfolio/artfolio/internal/shop"
	"github.com/artfolio/artfolio/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the account lifecycle (register, login, profile updates).
	Auth *auth.Handler

	// Gallery handles the artwork portfolio.
	Gallery *gallery.Handler

	// Shop handles the per-artist storefront.
	Shop *shop.Handler

	// News handles announcement posts.
	News *news.Handler

	// Contact handles the public contact form.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// # Parameters
//   - appContext: Lifetime context for background middleware goroutines.
//   - uploadDir: Filesystem root served under /uploads.
func NewServer(appContext context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, uploadDir string, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(appContext))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Uploads
	// Uploaded images are served directly; the front end runs on a
	// different origin, so resources must opt in to cross-origin embedding.
	r.Handle("/uploads/*", uploadsFileServer(uploadDir))

	// # Application API
	// Domain-specific route groups mounted under the /api prefix.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Auth.ProfileRoutes())
		api.Mount("/artworks", h.Gallery.Routes())
		api.Mount("/shop/products", h.Shop.Routes())
		api.Mount("/news", h.News.Routes())
		api.Mount("/contact", h.Contact.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// uploadsFileServer serves the upload tree with cache and embed headers.
func uploadsFileServer(uploadDir string) http.Handler {
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")
		writer.Header().Set("Access-Control-Allow-Origin", "*")
		writer.Header().Set("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(writer, request)
	})
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
