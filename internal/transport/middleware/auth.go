package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// Identifier resolves a bearer token to a user identity. Implemented by the
// auth service.
type Identifier interface {
	Identify(ctx context.Context, token string) (userID uuid.UUID, isAdmin bool, ok bool)
}

// Auth resolves the Authorization header to an identity in the request
// context. It never rejects: a missing, malformed, expired or otherwise
// invalid token leaves the request anonymous and the pipeline continues.
// Rejection is the job of RequireAuth, applied per route.
func Auth(ident Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, isAdmin, ok := ident.Identify(r.Context(), token)
			if !ok {
				next.ServeHTTP(w, r) // Anonymous, same as no token
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithIsAdmin(ctx, isAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
