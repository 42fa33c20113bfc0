// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/go-chi/render"
)

// Greeting is the liveness text served at the root.
const Greeting = "Lingua is speaking"

// Serve handles GET /.
func Serve(w http.ResponseWriter, r *http.Request) {
	render.PlainText(w, r, Greeting)
}
