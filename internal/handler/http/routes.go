package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Timeout(h.requestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/create", h.register)
		r.Post("/users/login", h.login)
		r.Get("/version", h.getServerVersion)
		if h.metrics != nil {
			r.Method("GET", "/metrics", h.metrics.Handler())
		}
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users", h.listUsers)
		r.Get("/users/{id}", h.getUser)
		r.Put("/users/{id}", h.updateUser)
		r.Patch("/users/{id}/active", h.setActive)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
