package http

import (
	"encoding/json"
	"net/http"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var param models.AuthenticateParam
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.Auth.Authenticate(ctx, param)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, result)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	message := "Logged out successfully."
	if err := h.services.Auth.Logout(ctx, r.Header.Get(tokenAuthHeader)); err != nil {
		logger.FromRequest(r).Err(err).Msg("logout failed")
		message = "Logout failed."
	}

	h.writeEnvelope(w, r, map[string]string{"message": message})
}
