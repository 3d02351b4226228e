package http

import (
	"net"
	"net/http"

	"github.com/echoharbor/auth-core/internal/utils"
)

// withClientIP records the remote client address in the request context for
// the authentication log.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}

		ctx := utils.WithClientIP(r.Context(), host)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
