package auth

import (
	"context"
	"net/http"
)

type contextKey int

const identityKey contextKey = 0

// Middleware attaches the verified identity to the request context when
// a valid credential is present. It never rejects: endpoints decide for
// themselves whether a missing identity is an error.
func Middleware(tokens *Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := tokens.FromRequest(r); id != nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the authenticated identity, or nil.
func IdentityFromContext(ctx context.Context) *Identity {
	if id, ok := ctx.Value(identityKey).(*Identity); ok {
		return id
	}
	return nil
}
