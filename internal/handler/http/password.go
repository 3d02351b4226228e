package http

import (
	"encoding/json"
	"net/http"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

// successPayload is the fixed body acknowledging a completed mutation.
var successPayload = map[string]bool{"success": true}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	param, ok := h.decodePasswordParam(w, r)
	if !ok {
		return
	}

	if err := h.services.Password.RequestReset(r.Context(), param); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, successPayload)
}

func (h *Handler) validateResetCode(w http.ResponseWriter, r *http.Request) {
	param, ok := h.decodePasswordParam(w, r)
	if !ok {
		return
	}

	valid, err := h.services.Password.ValidateCode(r.Context(), param)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, map[string]bool{"code_is_valid": valid})
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	param, ok := h.decodePasswordParam(w, r)
	if !ok {
		return
	}

	if err := h.services.Password.Update(r.Context(), param); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, successPayload)
}

func (h *Handler) recoverPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var param models.AuthenticateParam
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	if err := h.services.Password.Recover(r.Context(), param); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, successPayload)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	param, ok := h.decodePasswordParam(w, r)
	if !ok {
		return
	}

	if err := h.services.Password.Reset(r.Context(), param); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, successPayload)
}

// decodePasswordParam decodes the shared password-flow request body. On a
// malformed body it writes the error response and reports false.
func (h *Handler) decodePasswordParam(w http.ResponseWriter, r *http.Request) (models.PasswordParam, bool) {
	var param models.PasswordParam
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return models.PasswordParam{}, false
	}

	return param, true
}
