package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/service"
	"github.com/echoharbor/auth-core/internal/utils"
	"github.com/echoharbor/auth-core/models"
)

// errorPayloadMap fixes the payload returned for each business failure.
// Anything not listed collapses into genericErrorPayload; only the log keeps
// the distinction.
var errorPayloadMap = map[error]models.ErrorPayload{
	service.ErrUserDoesNotExist:  {Code: 100, Message: "User does not exist"},
	service.ErrUserDeactivated:   {Code: 101, Message: "User deactivated"},
	service.ErrSchoolDeactivated: {Code: 102, Message: "School deactivated"},
	service.ErrInvalidPassword:   {Code: 103, Message: "Invalid password"},
	service.ErrInvalidAccess:     {Code: 104, Message: "Invalid access"},
	service.ErrUnauthorized:      {Code: 105, Message: "Unauthorized"},
	service.ErrInvalidEmail:      {Code: 106, Message: "Invalid email"},
	service.ErrUserAlreadyExists: {Code: 107, Message: "User already exists"},
	service.ErrUnknownProfile:    {Code: 108, Message: "Unknown profile"},
}

var genericErrorPayload = models.ErrorPayload{Code: 500, Message: "Unexpected error"}

// writeEnvelope wraps result in the uniform response envelope and writes it
// with HTTP 200. The envelope's response_id is the request's correlation id,
// so it matches the X-Request-ID header and the request's log lines.
func (h *Handler) writeEnvelope(w http.ResponseWriter, r *http.Request, result any) {
	responseID := requestIDFromContext(r.Context())
	if responseID == "" {
		responseID = uuid.NewString()
	}

	envelope := models.Envelope{
		Result:       result,
		Pagination:   map[string]any{},
		ResponseID:   responseID,
		ResponseTime: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := utils.WriteJSON(w, envelope, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response envelope failed")
	}
}

// writeError logs err once at the boundary and writes its fixed payload in a
// 200 envelope. Unexpected errors are indistinguishable from each other in
// the response body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	payload, known := payloadFromError(err)

	log := logger.FromRequest(r)
	if known {
		log.Info().Err(err).Int("code", payload.Code).Msg("request failed")
	} else {
		log.Err(err).Msg("unexpected error")
	}

	h.writeEnvelope(w, r, payload)
}

func payloadFromError(err error) (models.ErrorPayload, bool) {
	for target, payload := range errorPayloadMap {
		if errors.Is(err, target) {
			return payload, true
		}
	}

	return genericErrorPayload, false
}
