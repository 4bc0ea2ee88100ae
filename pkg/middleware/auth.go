package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/devtushar001/ietark/pkg/auth"
	"github.com/devtushar001/ietark/pkg/response"
)

// userKey is the unexported context key holding the authenticated user id.
type userKey struct{}

// Auth validates the bearer token and stores the authenticated user id in
// the request context. Handlers read it back with UserID and pass the
// resolved user explicitly into services.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.Replace(r.Header.Get("Authorization"), "Bearer ", "", 1)
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id stored by Auth, or 0 when the
// request was not authenticated.
func UserID(ctx context.Context) uint {
	if id, ok := ctx.Value(userKey{}).(uint); ok {
		return id
	}
	return 0
}

// WithUserID stores a user id the way Auth does. Handler tests use it to
// simulate an authenticated request.
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userKey{}, id)
}
