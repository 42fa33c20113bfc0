// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/user-info", h.Info)
	r.Get("/all-users", h.List)
	r.Post("/make-admin", h.MakeAdmin)
	r.Post("/make-instructor", h.MakeInstructor)
	r.Post("/register-user", h.Register)
}
