// internal/app/features/classes/routes.go
package classes

import "github.com/go-chi/chi/v5"

// MountRoutes registers the class endpoints on r. Paths are top-level to
// match what existing clients call.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/classes", h.List)
	r.Get("/popularClasses", h.Popular)
	r.Get("/class-by-instructor", h.ByInstructor)
	r.Post("/approve-class", h.Approve)
	r.Post("/deny-class", h.Deny)
	r.Post("/send-feedback", h.SendFeedback)
	r.Post("/add-instructor-class", h.Submit)
	r.Post("/get-feedback", h.GetFeedback)
}
