// internal/app/features/instructors/handler.go
package instructors

import (
	"context"
	"net/http"

	instructorstore "github.com/dalemusser/linguahub/internal/app/store/instructors"
	"github.com/dalemusser/linguahub/internal/app/system/respond"
	"github.com/dalemusser/linguahub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Instructors *instructorstore.Store
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Instructors: instructorstore.New(db),
		Log:         logger,
	}
}

// List handles GET /instructors.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Instructors.List(ctx)
	if err != nil {
		respond.Fail(w, r, h.Log, "list instructors", err)
		return
	}
	respond.JSON(w, r, out)
}
