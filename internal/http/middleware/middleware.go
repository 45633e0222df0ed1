package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rogerio-castellano/store-api/internal/auth"
)

type contextKey string

const (
	userIDKey   = contextKey("user_id")
	usernameKey = contextKey("username")
)

// RequireAuth is the authorization gate for protected routes. A request with
// no Authorization header is rejected with 401; a present but unverifiable
// token (bad signature, expired, malformed) with 403. On success the decoded
// claims are attached to the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized - No token provided")
			return
		}

		_, claims, err := auth.TokenClaims(authorization)
		if err != nil {
			writeMessage(w, http.StatusForbidden, "Forbidden - Invalid token")
			return
		}

		ctx := r.Context()
		if id, ok := claims["id"].(float64); ok {
			ctx = context.WithValue(ctx, userIDKey, int(id))
		}
		if username, ok := claims["username"].(string); ok {
			ctx = context.WithValue(ctx, usernameKey, username)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user's id from the request context, or 0.
func UserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

// Username returns the authenticated username from the request context.
func Username(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
