package middleware

import (
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/RiskyOsDev/ariesrobot/internal/api/response"
)

// Recovery is middleware that recovers from panics outside command handlers
// and returns a 500 error.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())
				hlog.FromRequest(r).Error().Interface("panic", err).Str("requestId", requestID).Msg("panic recovered")
				response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", requestID)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
