package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withClientIP)
	router.Use(h.withLogging)
	router.Use(h.requireAPIKey)

	// routes without token authentication
	router.Group(func(r chi.Router) {
		r.Post("/authenticate", h.authenticate)
		r.Post("/registration/{profile_code}", h.register)
		r.Get("/check/username/{user_name}", h.checkUserName)
		r.Get("/verify/email/{email}", h.verifyEmail)
	})

	// routes behind a live session
	router.Group(func(r chi.Router) {
		r.Use(h.requireTokenAuth)

		r.Get("/logout", h.logout)
		r.Post("/user/pwd", h.requestPasswordReset)
		r.Put("/user/validate/code", h.validateResetCode)
		r.Post("/user/pwd/update", h.updatePassword)
		r.Post("/user/pwd/recover", h.recoverPassword)
		r.Put("/user/pwd/reset", h.resetPassword)
	})

	return router
}
