package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var param models.RegistrationParam
	if err := json.NewDecoder(r.Body).Decode(&param); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	info, err := h.services.Registration.Register(r.Context(), chi.URLParam(r, "profile_code"), param)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, info)
}

func (h *Handler) checkUserName(w http.ResponseWriter, r *http.Request) {
	userName := chi.URLParam(r, "user_name")

	exists, err := h.services.Registration.CheckUserName(r.Context(), userName)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeEnvelope(w, r, map[string]any{
		"user_name": userName,
		"exists":    exists,
	})
}

func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	id, exists, err := h.services.Registration.VerifyEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result := map[string]any{
		"user_email": email,
		"exists":     exists,
	}
	if exists {
		result["auth_id"] = id
	}

	h.writeEnvelope(w, r, result)
}
