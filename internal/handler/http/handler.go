package http

import (
	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/service"
)

type Handler struct {
	services *service.Services
	sessions service.SessionManager

	// apiKey is the value every inbound request must present in X-Api-Key.
	apiKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions service.SessionManager, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		apiKey:   cfg.APIKey,
		logger:   logger,
	}
}
