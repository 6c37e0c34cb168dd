package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"microtwit/internal/httputil"
	"microtwit/internal/model"
	"microtwit/internal/repository"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the authenticated user
	UserKey contextKey = "user"
)

// APIKeyAuth validates the api-key header against the users table and
// stores the resolved user in the request context. A missing key is
// rejected before any other processing.
func APIKeyAuth(users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api-key")
			if apiKey == "" {
				httputil.WriteUnauthorized(w, "API key is missing")
				return
			}

			user, err := users.GetByAPIKey(r.Context(), apiKey)
			if err != nil {
				if errors.Is(err, model.ErrInvalidAPIKey) {
					httputil.WriteUnauthorized(w, "Invalid API key")
					return
				}
				log.Printf("[ERROR] Auth middleware: %v", err)
				httputil.WriteInternalError(w, "Failed to authenticate request")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
// Returns the user and true if found, or nil and false if not found.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey).(*model.User)
	return user, ok
}
