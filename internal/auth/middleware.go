package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type contextKey struct{}

var identityKey contextKey

// IdentityFromContext returns the claims attached by Middleware, or nil when
// the request did not pass through it.
func IdentityFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(identityKey).(*Claims)
	return claims
}

// Middleware verifies the Authorization header before the wrapped handler
// runs. A missing or malformed header is 401; a token that fails the
// signature or expiry check is 403. On success the claims are attached to
// the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondUnauthorized(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				respondUnauthorized(w, http.StatusUnauthorized, "Malformed authorization header")
				return
			}

			claims, err := Parse(secret, parts[1])
			if err != nil {
				log.Warn().Err(err).Msg("Rejected bearer token")
				respondUnauthorized(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondUnauthorized(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Error().Err(err).Msg("Failed to write auth error response")
	}
}
