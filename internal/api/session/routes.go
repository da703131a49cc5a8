package session

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers session and form option routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/options", h.GetOptions)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)

		r.Route("/{session_id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Patch("/form", h.UpdateField)
			r.Post("/submit", h.Submit)
			r.Post("/reset", h.ResetSession)
			r.Get("/report", h.GetReport)
		})
	})
}
