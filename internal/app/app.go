// Package app wires configuration, storage, services and transport together
// and owns the process lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sangseok/blog-backend/internal/adapter/postgres"
	blogrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/blog"
	profilerepo "github.com/sangseok/blog-backend/internal/adapter/postgres/profile"
	tagrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/tag"
	tokenrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/token"
	userrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/user"
	visitorrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/visitor"
	"github.com/sangseok/blog-backend/internal/auth"
	"github.com/sangseok/blog-backend/internal/config"
	"github.com/sangseok/blog-backend/internal/server"
	authsvc "github.com/sangseok/blog-backend/internal/service/auth"
	blogsvc "github.com/sangseok/blog-backend/internal/service/blog"
	usersvc "github.com/sangseok/blog-backend/internal/service/user"
	"github.com/sangseok/blog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, optionally applies migrations, builds the service graph and
// runs the HTTP server until shutdown.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := runMigrations(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	blogs := blogrepo.New(pool)
	tags := tagrepo.New(pool)
	visitors := visitorrepo.New(pool)
	tokens := tokenrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, tx, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, profiles, blogs, visitors, tokens, tx)
	blogService := blogsvc.NewService(logger, blogs, tags, visitors, tx)

	docs, err := rest.NewDocsHandler()
	if err != nil {
		return fmt.Errorf("docs: %w", err)
	}

	handlers := server.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		User:   rest.NewUserHandler(userService, logger),
		Blog:   rest.NewBlogHandler(blogService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
		Docs:   docs,
	}

	srv := server.New(cfg, logger, handlers, authService)
	return srv.Run(ctx)
}
