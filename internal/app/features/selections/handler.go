// internal/app/features/selections/handler.go
package selections

import (
	"context"
	"net/http"

	selectionstore "github.com/dalemusser/linguahub/internal/app/store/selections"
	"github.com/dalemusser/linguahub/internal/app/system/auditlog"
	"github.com/dalemusser/linguahub/internal/app/system/docid"
	"github.com/dalemusser/linguahub/internal/app/system/respond"
	"github.com/dalemusser/linguahub/internal/app/system/timeouts"
	"github.com/dalemusser/linguahub/internal/app/system/writeresult"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AlreadySelected is the body returned when /add-class finds the same
// (classID, email) pair.
var AlreadySelected = map[string]bool{"alreadySelected": true}

type Handler struct {
	Selections *selectionstore.Store
	Audit      *auditlog.Logger
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Selections: selectionstore.New(db),
		Audit:      audit,
		Log:        logger,
	}
}

// ForEmail handles GET /selected-classes?email=.
func (h *Handler) ForEmail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	out, err := h.Selections.ForEmail(ctx, r.URL.Query().Get("email"))
	if err != nil {
		respond.Fail(w, r, h.Log, "list selected classes", err)
		return
	}
	respond.JSON(w, r, out)
}

// Add handles POST /add-class. The body is stored as sent.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var sel models.SelectedClass
	if err := respond.Decode(r, &sel); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, already, err := h.Selections.Select(ctx, sel)
	if err != nil {
		respond.Fail(w, r, h.Log, "select class", err)
		return
	}
	if already {
		h.Audit.DuplicateRejected(ctx, r, "selection", cast.ToString(sel.Email()))
		respond.JSON(w, r, AlreadySelected)
		return
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.Audit.ClassSelected(ctx, r, id, cast.ToString(sel.ClassID()), cast.ToString(sel.Email()))
	}
	respond.JSON(w, r, writeresult.FromInsert(res))
}

// Remove handles DELETE /remove-selected-class?id=.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := docid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		respond.Fail(w, r, h.Log, "parse selection id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Selections.Delete(ctx, id)
	if err != nil {
		respond.Fail(w, r, h.Log, "delete selection", err)
		return
	}

	h.Audit.SelectionRemoved(ctx, r, id, res.DeletedCount)
	respond.JSON(w, r, writeresult.FromDelete(res))
}
