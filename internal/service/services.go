// Package service implements the business flows: authentication, the five
// password operations, and registration. Services return typed sentinel
// errors; the HTTP layer maps them to response payloads and logs once at the
// boundary.
package service

import (
	"github.com/echoharbor/auth-core/internal/config"
	"github.com/echoharbor/auth-core/internal/logger"
	"github.com/echoharbor/auth-core/internal/notify"
	"github.com/echoharbor/auth-core/internal/store"
)

// Services bundles every business service behind its interface.
type Services struct {
	Auth         AuthService
	Password     PasswordService
	Registration RegistrationService
}

// NewServices wires the services over the shared storages, session manager
// and notifier.
func NewServices(cfg config.App, storages *store.Storages, sessions SessionManager, notifier notify.Notifier, log *logger.Logger) *Services {
	log.Debug().Msg("creating services")

	return &Services{
		Auth:         NewAuthService(cfg, storages, sessions, log),
		Password:     NewPasswordService(cfg, storages, notifier, log),
		Registration: NewRegistrationService(cfg, storages, log),
	}
}
