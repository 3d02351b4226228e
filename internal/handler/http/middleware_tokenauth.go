package http

import (
	"net/http"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/utils"
)

const tokenAuthHeader = "X-Token-Auth"

// requireTokenAuth resolves the X-Token-Auth header to a live session and
// stores the session payload in the request context under
// [utils.SessionCtxKey]. A missing header, a token that fails signature or
// expiry checks, or a token with no backing session entry is rejected with
// HTTP 400 before the handler runs.
func (h *Handler) requireTokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := r.Header.Get(tokenAuthHeader)
		if token == "" {
			log.Err(ErrMissingTokenAuth).Send()
			http.Error(w, ErrMissingTokenAuth.Error(), http.StatusBadRequest)
			return
		}

		session, err := h.sessions.Validate(r.Context(), token)
		if err != nil {
			log.Err(err).Msg("session token rejected")
			http.Error(w, ErrInvalidTokenAuth.Error(), http.StatusBadRequest)
			return
		}
		if session == nil {
			// Structurally valid token whose backing entry is gone.
			log.Err(ErrInvalidTokenAuth).Msg("no live session for token")
			http.Error(w, ErrInvalidTokenAuth.Error(), http.StatusBadRequest)
			return
		}

		ctx := utils.WithSession(r.Context(), *session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
