package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// requestIDHeader lets a caller supply its own correlation id; without one a
// fresh UUID is assigned.
const requestIDHeader = "X-Request-ID"

type requestIDCtxKey struct{}

// withRequestID assigns every request a correlation id. The id travels three
// ways: into the request-scoped logger, back out through the response header,
// and into the response envelope as its response_id, so a log line and the
// body a client received can always be matched up.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})

		ctx := context.WithValue(r.Context(), requestIDCtxKey{}, requestID)
		r = r.WithContext(log.WithContext(ctx))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

// requestIDFromContext returns the id assigned by [Handler.withRequestID],
// or "" when the middleware did not run.
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey{}).(string)
	return id
}
