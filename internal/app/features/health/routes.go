// internal/app/features/health/routes.go
package health

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Serve)
}
