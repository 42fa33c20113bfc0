// internal/app/features/classes/handler.go
package classes

import (
	"context"
	"net/http"

	classstore "github.com/dalemusser/linguahub/internal/app/store/classes"
	"github.com/dalemusser/linguahub/internal/app/system/auditlog"
	"github.com/dalemusser/linguahub/internal/app/system/docid"
	"github.com/dalemusser/linguahub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/linguahub/internal/app/system/respond"
	"github.com/dalemusser/linguahub/internal/app/system/timeouts"
	"github.com/dalemusser/linguahub/internal/app/system/writeresult"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the class catalogue and the review workflow.
type Handler struct {
	Classes *classstore.Store
	Audit   *auditlog.Logger
	Log     *zap.Logger

	// PopularLimit caps /popularClasses. Zero means the store default.
	PopularLimit int64
	// SanitizeFeedback runs feedback text through the UGC HTML policy
	// before it is stored.
	SanitizeFeedback bool
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Classes:      classstore.New(db),
		Audit:        audit,
		Log:          logger,
		PopularLimit: classstore.DefaultPopularLimit,
	}
}

type classIDBody struct {
	ClassID string `json:"classID"`
}

type feedbackBody struct {
	ClassID string `json:"classID"`
	Message string `json:"message"`
}

// List handles GET /classes.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Classes.List(ctx)
	if err != nil {
		respond.Fail(w, r, h.Log, "list classes", err)
		return
	}
	respond.JSON(w, r, out)
}

// Popular handles GET /popularClasses.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	out, err := h.Classes.Popular(ctx, h.PopularLimit)
	if err != nil {
		respond.Fail(w, r, h.Log, "list popular classes", err)
		return
	}
	respond.JSON(w, r, out)
}

// ByInstructor handles GET /class-by-instructor?email=.
func (h *Handler) ByInstructor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	out, err := h.Classes.ByInstructor(ctx, r.URL.Query().Get("email"))
	if err != nil {
		respond.Fail(w, r, h.Log, "list classes by instructor", err)
		return
	}
	respond.JSON(w, r, out)
}

// Approve handles POST /approve-class.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Classes.Approve, h.Audit.ClassApproved)
}

// Deny handles POST /deny-class.
func (h *Handler) Deny(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Classes.Deny, h.Audit.ClassDenied)
}

type reviewFunc func(context.Context, primitive.ObjectID) (*mongo.UpdateResult, error)

type reviewAudit func(context.Context, *http.Request, primitive.ObjectID, int64)

func (h *Handler) review(w http.ResponseWriter, r *http.Request, apply reviewFunc, audit reviewAudit) {
	var body classIDBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}
	id, err := docid.Parse(body.ClassID)
	if err != nil {
		respond.Fail(w, r, h.Log, "parse class id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := apply(ctx, id)
	if err != nil {
		respond.Fail(w, r, h.Log, "set class status", err)
		return
	}

	audit(ctx, r, id, res.MatchedCount)
	respond.JSON(w, r, writeresult.FromUpdate(res))
}

// SendFeedback handles POST /send-feedback.
func (h *Handler) SendFeedback(w http.ResponseWriter, r *http.Request) {
	var body feedbackBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}
	id, err := docid.Parse(body.ClassID)
	if err != nil {
		respond.Fail(w, r, h.Log, "parse class id", err)
		return
	}

	msg := body.Message
	if h.SanitizeFeedback {
		msg = htmlsanitize.Sanitize(msg)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Classes.SetFeedback(ctx, id, msg)
	if err != nil {
		respond.Fail(w, r, h.Log, "set class feedback", err)
		return
	}

	h.Audit.FeedbackSent(ctx, r, id, len(msg))
	respond.JSON(w, r, writeresult.FromUpdate(res))
}

// Submit handles POST /add-instructor-class. Whatever status the client
// sends, the class is stored as pending.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var c models.Class
	if err := respond.Decode(r, &c); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Classes.Insert(ctx, c)
	if err != nil {
		respond.Fail(w, r, h.Log, "insert class", err)
		return
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.Audit.ClassSubmitted(ctx, r, id, cast.ToString(c.Field("instructorEmail")))
	}
	respond.JSON(w, r, writeresult.FromInsert(res))
}

// GetFeedback handles POST /get-feedback. It returns the whole class
// document, or null when there is none.
func (h *Handler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	var body classIDBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}
	id, err := docid.Parse(body.ClassID)
	if err != nil {
		respond.Fail(w, r, h.Log, "parse class id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	c, err := h.Classes.GetByID(ctx, id)
	if err != nil {
		respond.Fail(w, r, h.Log, "get class", err)
		return
	}
	respond.JSON(w, r, c)
}
