package http

import (
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all API routes on the given chi router.
func MountRoutes(r chi.Router, h *Handlers) {
	r.Route("/api/prompts", func(r chi.Router) {
		r.Post("/generate", h.GeneratePrompt)
		r.Get("/history", h.ListHistory)

		r.Route("/session/{sessionID}", func(r chi.Router) {
			r.Get("/", h.ListSessionPrompts)
			r.Get("/current", h.GetCurrentPrompt)
			r.Post("/select/{id}", h.SelectPrompt)
		})

		r.Get("/{id}", h.GetPrompt)
		r.Put("/{id}", h.UpdatePrompt)
		r.Delete("/{id}", h.DeletePrompt)
	})
}
