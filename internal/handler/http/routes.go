package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withTimeout)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.dashboard)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/profile", h.profile)
		r.Get("/update/{id}", h.updateForm)
		r.Post("/update/{id}", h.update)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.renderNotFound(w, r)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
