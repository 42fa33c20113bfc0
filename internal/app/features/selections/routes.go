// internal/app/features/selections/routes.go
package selections

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/selected-classes", h.ForEmail)
	r.Post("/add-class", h.Add)
	r.Delete("/remove-selected-class", h.Remove)
}
