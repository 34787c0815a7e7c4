// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - The JSON API lives under /api/{Resource}/{Action}.
  - Server-rendered pages share the same router and middleware chain.
  - Only this package and cmd/api import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/opinion/internal/catalog/drama"
	"github.com/taibuivan/opinion/internal/catalog/mood"
	"github.com/taibuivan/opinion/internal/catalog/quote"
	"github.com/taibuivan/opinion/internal/catalog/quotemood"
	"github.com/taibuivan/opinion/internal/platform/config"
	"github.com/taibuivan/opinion/internal/platform/constants"
	"github.com/taibuivan/opinion/internal/platform/middleware"
	"github.com/taibuivan/opinion/internal/social/comment"
	"github.com/taibuivan/opinion/internal/users/auth"
	"github.com/taibuivan/opinion/internal/web"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	Auth      *auth.Handler
	Drama     *drama.Handler
	Mood      *mood.Handler
	Quote     *quote.Handler
	QuoteMood *quotemood.Handler
	Comment   *comment.Handler

	// Pages serves the HTML site.
	Pages *web.Pages
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := NewRouter(context, cfg, log, verifier, h)

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

// NewRouter builds the routing tree without binding a listener.
func NewRouter(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/Drama", h.Drama.Routes())
		api.Mount("/Mood", h.Mood.Routes())
		api.Mount("/Quote", h.Quote.Routes())
		api.Mount("/QuoteMood", h.QuoteMood.Routes())
		api.Mount("/Comments", h.Comment.Routes())
	})

	// # Pages
	if h.Pages != nil {
		h.Pages.Routes(r)
	}

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server. It blocks until the server is closed.
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
