// internal/app/features/home/routes.go
package home

import "github.com/go-chi/chi/v5"

func MountRoutes(r chi.Router) {
	r.Get("/", Serve)
}
