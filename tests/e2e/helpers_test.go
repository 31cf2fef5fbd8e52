//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/sangseok/blog-backend/internal/adapter/postgres"
	blogrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/blog"
	profilerepo "github.com/sangseok/blog-backend/internal/adapter/postgres/profile"
	tagrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/tag"
	"github.com/sangseok/blog-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/token"
	userrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/user"
	visitorrepo "github.com/sangseok/blog-backend/internal/adapter/postgres/visitor"
	authpkg "github.com/sangseok/blog-backend/internal/auth"
	"github.com/sangseok/blog-backend/internal/config"
	"github.com/sangseok/blog-backend/internal/server"
	authsvc "github.com/sangseok/blog-backend/internal/service/auth"
	blogsvc "github.com/sangseok/blog-backend/internal/service/blog"
	usersvc "github.com/sangseok/blog-backend/internal/service/user"
	"github.com/sangseok/blog-backend/internal/transport/middleware"
	"github.com/sangseok/blog-backend/internal/transport/rest"
)

const (
	docsUser     = "docs"
	docsPassword = "docs-secret"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the production routing backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	blogs := blogrepo.New(pool)
	tags := tagrepo.New(pool)
	visitors := visitorrepo.New(pool)
	tokens := tokenrepo.New(pool)

	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   24 * time.Hour,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txm, jwtMgr, authCfg)
	userService := usersvc.NewService(logger, users, profiles, blogs, visitors, tokens, txm)
	blogService := blogsvc.NewService(logger, blogs, tags, visitors, txm)

	docs, err := rest.NewDocsHandler()
	require.NoError(t, err)

	handlers := server.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		User:   rest.NewUserHandler(userService, logger),
		Blog:   rest.NewBlogHandler(blogService, logger),
		Health: rest.NewHealthHandler(pool, "e2e"),
		Docs:   docs,
	}

	cfg := &config.Config{
		Server: config.ServerConfig{LoginRateLimit: 1000},
		Auth:   authCfg,
		Docs:   config.DocsConfig{Enabled: true, User: docsUser, Password: docsPassword},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}

	limiter := middleware.NewRateLimiter(middleware.DefaultCleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(server.NewRouter(cfg, logger, handlers, authService, limiter))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers.
// ---------------------------------------------------------------------------

// doJSON performs a request with an optional JSON body and bearer token,
// returning the status code and the decoded response body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// DELETE responses have no body, and listing endpoints return arrays;
	// arrays come back under the "list" key.
	var result map[string]any
	if len(raw) > 0 {
		var decoded any
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
		switch v := decoded.(type) {
		case map[string]any:
			result = v
		case []any:
			result = map[string]any{"list": v}
		}
	}
	return resp.StatusCode, result
}

var userSeq atomic.Int64

// registerUser creates a fresh account and returns its tokens and response.
func registerUser(t *testing.T, ts *testServer) (accessToken, refreshToken string, user map[string]any) {
	t.Helper()

	n := userSeq.Add(1)
	email := fmt.Sprintf("e2e-%d-%d@example.com", time.Now().UnixNano(), n)

	status, body := ts.doJSON(t, http.MethodPost, "/users", map[string]any{
		"email":    email,
		"username": fmt.Sprintf("e2e-user-%d", n),
		"password": "correct horse battery",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	accessToken, _ = body["token"].(string)
	refreshToken, _ = body["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)

	user, _ = body["user"].(map[string]any)
	require.NotNil(t, user)
	return accessToken, refreshToken, user
}

// createBlog posts a blog as the given user and returns its response body.
func createBlog(t *testing.T, ts *testServer, token, title string, tags []string) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/blogs", map[string]any{
		"title":   title,
		"content": "some content",
		"tags":    tags,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create blog: %v", body)
	return body
}

// uniqueTitle returns a title that will not collide with other tests sharing
// the database.
func uniqueTitle(prefix string) string {
	return fmt.Sprintf("%s %d-%d", prefix, time.Now().UnixNano(), userSeq.Add(1))
}
