package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/echoharbor/auth-core/internal/logger"
)

const apiKeyHeader = "X-Api-Key"

// requireAPIKey rejects any request whose X-Api-Key header does not equal the
// configured value. Enforced before every handler; failures are HTTP 400.
func (h *Handler) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key := r.Header.Get(apiKeyHeader)
		if key == "" {
			log.Err(ErrMissingAPIKey).Send()
			http.Error(w, ErrMissingAPIKey.Error(), http.StatusBadRequest)
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(h.apiKey)) != 1 {
			log.Err(ErrInvalidAPIKey).Send()
			http.Error(w, ErrInvalidAPIKey.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
