// Package middleware provides HTTP middleware for authenticating developers.
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// developerIDKey is the context key for the authenticated developer ID.
const developerIDKey ContextKey = "developerID"

// ErrNoDeveloper is returned when the request carries no authenticated developer.
var ErrNoDeveloper = errors.New("developer ID not found in request context")

// TokenValidator validates bearer tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (DeveloperIDGetter, error)
}

// DeveloperIDGetter extracts the developer ID from token claims.
type DeveloperIDGetter interface {
	GetDeveloperID() uuid.UUID
}

// AuthMiddleware creates middleware that validates bearer tokens and stores the developer ID in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				unauthorized(w)
				return
			}

			developerID := claims.GetDeveloperID()
			if developerID == uuid.Nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithDeveloperID(r.Context(), developerID)))
		})
	}
}

// bearerToken parses "Bearer <token>"; the scheme is case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="devmatch"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// WithDeveloperID returns a context carrying the developer ID.
func WithDeveloperID(ctx context.Context, developerID uuid.UUID) context.Context {
	return context.WithValue(ctx, developerIDKey, developerID)
}

// GetDeveloperID extracts the authenticated developer ID from the request context.
func GetDeveloperID(r *http.Request) (uuid.UUID, error) {
	developerID, ok := r.Context().Value(developerIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrNoDeveloper
	}
	return developerID, nil
}
