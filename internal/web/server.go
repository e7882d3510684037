package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jaminalder/tictactoe-minimax/internal/app"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(log))
	r.Use(middleware.Recoverer)

	h := &handlers{svc: s}
	r.Get("/healthz", h.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/move", h.move)
		r.Post("/analyze", h.analyze)
		r.Post("/evaluate", h.evaluate)
		r.Get("/suggestions/{id}", h.suggestion)
	})
	return r
}
