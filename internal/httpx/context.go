package httpx

import (
	"context"
	"net/http"

	"hobbiesapi/internal/logging"
	"hobbiesapi/internal/platform/crypto"
)

type contextKey string

const claimsKey contextKey = "claims"

// UIDFrom retrieves the authenticated uid from the request context.
func UIDFrom(r *http.Request) string {
	if c := ClaimsFrom(r); c != nil {
		return c.UID()
	}
	return ""
}

// ClaimsFrom retrieves the verified token claims set by AuthMiddleware.
func ClaimsFrom(r *http.Request) *crypto.Claims {
	if v, ok := r.Context().Value(claimsKey).(*crypto.Claims); ok {
		return v
	}
	return nil
}

func ContextWithClaims(ctx context.Context, claims *crypto.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func RequestIDFrom(r *http.Request) string {
	return logging.RequestIDFromContext(r.Context())
}
