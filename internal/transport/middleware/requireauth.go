package middleware

import (
	"net/http"

	"github.com/sangseok/blog-backend/pkg/ctxutil"
)

// RequireAuth rejects requests that carry no resolved identity.
// It never inspects the token itself; by this point Auth has already
// reduced every possible token state to presence or absence in the
// context, so all failure modes get the same 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
