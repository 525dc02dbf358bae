// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires the HTTP router, the middleware chain, and every resource
handler into a runnable [http.Server].

Architecture:

  - This package is the composition root of the HTTP transport (chi router).
  - Resource packages expose Routes(); only this package decides where they mount.
  - Authentication resolves the caller once per request; each resource router
    applies its own role gates and visibility filters.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/ecclesia/internal/platform/constants"
	"github.com/taibuivan/ecclesia/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// RouteMounter is any resource handler able to describe its sub-router.
type RouteMounter interface {
	Routes() chi.Router
}

// # Handler Registry

// Handlers groups every resource router by its mount path.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	Auth          RouteMounter
	Users         RouteMounter
	Blogs         RouteMounter
	Prophecies    RouteMounter
	Slider        RouteMounter
	Notes         RouteMounter
	Events        RouteMounter
	Media         RouteMounter
	Gallery       RouteMounter
	Team          RouteMounter
	PrayerRequest RouteMounter
	SiteContent   RouteMounter
}

type mount struct {
	path    string
	handler RouteMounter
}

// mounts lists the /api/v1 sub-routers in registration order.
func (handlers Handlers) mounts() []mount {
	return []mount{
		{"/auth", handlers.Auth},
		{"/users", handlers.Users},
		{"/blogs", handlers.Blogs},
		{"/prophecies", handlers.Prophecies},
		{"/prophecy", handlers.Prophecies},
		{"/slider", handlers.Slider},
		{"/notes", handlers.Notes},
		{"/events", handlers.Events},
		{"/media", handlers.Media},
		{"/gallery", handlers.Gallery},
		{"/team", handlers.Team},
		{"/prayer-requests", handlers.PrayerRequest},
		{"/site-content", handlers.SiteContent},
	}
}

// Options carries the cross-cutting collaborators of the middleware chain.
type Options struct {
	Port           string
	AllowedOrigins []string
	TrustedProxies middleware.TrustedProxies
	CORS           middleware.CORSConfig
	Resolver       middleware.IdentityResolver
	RateLimiter    *middleware.RateLimiter
	Tracer         trace.Tracer
	MetricsEnabled bool
}

// # Server Initialization

// NewServer builds the router with the full middleware chain and registers
// every route group.
func NewServer(log *slog.Logger, options Options, handlers Handlers) *Server {
	router := chi.NewRouter()

	// # Middleware Chain
	// Authenticate runs before the logger so request logs carry the user id.
	router.Use(middleware.TrustProxies(options.TrustedProxies))
	router.Use(middleware.RequestID())
	router.Use(middleware.Authenticate(options.Resolver))
	router.Use(middleware.StructuredLogger(log))
	if options.MetricsEnabled {
		router.Use(middleware.Metrics())
	}
	if options.Tracer != nil {
		router.Use(middleware.Tracing(options.Tracer))
	}
	router.Use(middleware.PanicRecovery())
	router.Use(middleware.CORS(options.CORS, options.AllowedOrigins))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	router.Get("/health", handlers.Liveness)
	router.Get("/ready", handlers.Readiness)
	if options.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// # Application API
	router.Route("/api/v1", func(api chi.Router) {
		if options.RateLimiter != nil {
			api.Use(options.RateLimiter.Handler)
		}
		for _, entry := range handlers.mounts() {
			if entry.handler != nil {
				api.Mount(entry.path, entry.handler.Routes())
			}
		}
	})

	return &Server{
		router: router,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + options.Port,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
