// Package server assembles the HTTP router and owns the server lifecycle,
// including graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/sangseok/blog-backend/internal/config"
	"github.com/sangseok/blog-backend/internal/transport/middleware"
	"github.com/sangseok/blog-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted on the router.
type Handlers struct {
	Auth   *rest.AuthHandler
	User   *rest.UserHandler
	Blog   *rest.BlogHandler
	Health *rest.HealthHandler
	Docs   *rest.DocsHandler
}

// Server is the HTTP server.
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	log        *slog.Logger
	cfg        config.ServerConfig
}

// New builds the router and returns a server ready to Run.
// ident resolves bearer tokens for the identity middleware.
func New(cfg *config.Config, logger *slog.Logger, h Handlers, ident middleware.Identifier) *Server {
	limiter := middleware.NewRateLimiter(middleware.DefaultCleanupInterval)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      NewRouter(cfg, logger, h, ident, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		httpServer: srv,
		limiter:    limiter,
		log:        logger,
		cfg:        cfg.Server,
	}
}

// NewRouter mounts all routes with the full middleware pipeline. It is split
// from New so end-to-end tests can serve the production routing from an
// httptest server.
func NewRouter(cfg *config.Config, logger *slog.Logger, h Handlers, ident middleware.Identifier, limiter *middleware.RateLimiter) http.Handler {
	router := chi.NewRouter()

	// Outer pipeline, applied to every route. Auth only resolves identity;
	// routes that need one add RequireAuth themselves.
	router.Use(middleware.RequestID)
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.Auth(ident))

	router.Get("/health", h.Health.Health)
	router.Get("/live", h.Health.Live)
	router.Get("/ready", h.Health.Ready)

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.Auth.Register)
		r.With(limiter.Limit(cfg.Server.LoginRateLimit)).Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/", h.User.List)
			r.Get("/me", h.User.Me)
			r.Delete("/me", h.User.DeleteAccount)
			r.Put("/me/profile", h.User.UpsertProfile)
		})
	})

	router.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.Blog.List)
		r.Get("/{id}", h.Blog.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Post("/", h.Blog.Create)
			r.Put("/{id}", h.Blog.Update)
			r.Delete("/{id}", h.Blog.Delete)
			r.Get("/{id}/visitors", h.Blog.Visitors)
		})
	})

	router.Get("/tags", h.Blog.Tags)

	if cfg.Docs.Enabled && h.Docs != nil {
		basicAuth := middleware.BasicAuth("docs", cfg.Docs.User, cfg.Docs.Password)
		router.With(basicAuth).Get("/docs", h.Docs.Page)
		router.With(basicAuth).Get("/docs-json", h.Docs.SpecJSON)
	}

	return router
}

// Run starts the server and blocks until the context is canceled, a
// termination signal arrives, or the listener fails. Shutdown drains
// in-flight requests within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case <-ctx.Done():
		s.log.Info("shutdown requested", slog.String("reason", ctx.Err().Error()))
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	s.log.Info("http server stopped")
	return nil
}
