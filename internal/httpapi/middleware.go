package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/abdo0vuln/e-commerce/internal/auth"
	"github.com/abdo0vuln/e-commerce/internal/domain"
)

type contextKey int

const requestIDKey contextKey = 0

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that carry no verified identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.IdentityFromContext(r.Context()) == nil {
			respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests without an identity (401) or with a
// non-admin role (403).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := auth.IdentityFromContext(r.Context())
		if id == nil {
			respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}
		if id.Role != domain.RoleAdmin {
			respondError(w, http.StatusForbidden, "permission_denied", "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// queryInt parses a positive integer query parameter, falling back to
// the default on absence or garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
