// internal/app/features/instructors/routes.go
package instructors

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/instructors", h.List)
}
