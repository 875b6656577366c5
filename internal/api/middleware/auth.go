package middleware

import (
	"net/http"

	"github.com/RiskyOsDev/ariesrobot/internal/api/response"
	"github.com/RiskyOsDev/ariesrobot/internal/auth"
)

// RelayAuth is middleware that authenticates the gateway relay posting
// invocations. The X-API-Key header is verified against the configured hash. An
// empty hash disables the check.
func RelayAuth(keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if keyHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			rawKey := r.Header.Get("X-API-Key")
			if rawKey == "" {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "API key is required", requestID)
				return
			}

			if err := auth.Verify(keyHash, rawKey); err != nil {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid API key", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
