package http

import (
	"net/http"
	"time"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/utils"
)

// withLogging emits one access-log line per request after the handler chain
// finishes. Runs after withRequestID and withClientIP so the line carries the
// correlation id and the caller's address.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()

		recorder := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("client_ip", utils.GetClientIPFromContext(r.Context())).
			Int("status", recorder.status).
			Int("bytes", recorder.size).
			Dur("elapsed", time.Since(started)).
			Msg("request served")
	})
}
