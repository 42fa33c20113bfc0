// internal/app/features/users/handler.go
package users

import (
	"context"
	"net/http"

	instructorstore "github.com/dalemusser/linguahub/internal/app/store/instructors"
	userstore "github.com/dalemusser/linguahub/internal/app/store/users"
	"github.com/dalemusser/linguahub/internal/app/system/auditlog"
	"github.com/dalemusser/linguahub/internal/app/system/docid"
	"github.com/dalemusser/linguahub/internal/app/system/respond"
	"github.com/dalemusser/linguahub/internal/app/system/timeouts"
	"github.com/dalemusser/linguahub/internal/app/system/writeresult"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AlreadyRegistered is the body returned when /register-user finds an
// existing account.
var AlreadyRegistered = map[string]string{"message": "user is already registered"}

// Handler serves user lookups, registration and role changes. No caller
// identity is checked on any of these routes.
type Handler struct {
	Users       *userstore.Store
	Instructors *instructorstore.Store
	Audit       *auditlog.Logger
	Log         *zap.Logger
}

func NewHandler(db *mongo.Database, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:       userstore.New(db),
		Instructors: instructorstore.New(db),
		Audit:       audit,
		Log:         logger,
	}
}

type roleBody struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type registerBody struct {
	UserEmail string `json:"userEmail"`
}

// Info handles GET /user-info?email=. A missing user is null.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, r.URL.Query().Get("email"))
	if err != nil {
		respond.Fail(w, r, h.Log, "get user by email", err)
		return
	}
	respond.JSON(w, r, u)
}

// List handles GET /all-users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	out, err := h.Users.List(ctx)
	if err != nil {
		respond.Fail(w, r, h.Log, "list users", err)
		return
	}
	respond.JSON(w, r, out)
}

// MakeAdmin handles POST /make-admin.
func (h *Handler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	var body roleBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}
	id, err := docid.Parse(body.UserID)
	if err != nil {
		respond.Fail(w, r, h.Log, "parse user id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Users.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		respond.Fail(w, r, h.Log, "set admin role", err)
		return
	}

	h.Audit.RoleChanged(ctx, r, id, models.RoleAdmin)
	respond.JSON(w, r, writeresult.FromUpdate(res))
}

// MakeInstructor handles POST /make-instructor. The role update and the
// instructor insert are separate writes; if the insert fails the role
// change stays. Repeating the call adds another instructor listing.
// The response is the role update result.
func (h *Handler) MakeInstructor(w http.ResponseWriter, r *http.Request) {
	var body roleBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}
	id, err := docid.Parse(body.UserID)
	if err != nil {
		respond.Fail(w, r, h.Log, "parse user id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	res, err := h.Users.SetRole(ctx, id, models.RoleInstructor)
	if err != nil {
		respond.Fail(w, r, h.Log, "set instructor role", err)
		return
	}
	h.Audit.RoleChanged(ctx, r, id, models.RoleInstructor)

	ins, err := h.Instructors.Insert(ctx, body.Name, body.Email)
	if err != nil {
		respond.Fail(w, r, h.Log, "insert instructor", err)
		return
	}
	if iid, ok := ins.InsertedID.(primitive.ObjectID); ok {
		h.Audit.InstructorCreated(ctx, r, iid, body.Email)
	}

	respond.JSON(w, r, writeresult.FromUpdate(res))
}

// Register handles POST /register-user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body registerBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadBody(w, r, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, already, err := h.Users.Register(ctx, body.UserEmail)
	if err != nil {
		respond.Fail(w, r, h.Log, "register user", err)
		return
	}
	if already {
		h.Audit.DuplicateRejected(ctx, r, "user", body.UserEmail)
		respond.JSON(w, r, AlreadyRegistered)
		return
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.Audit.UserRegistered(ctx, r, id, body.UserEmail)
	}
	respond.JSON(w, r, writeresult.FromInsert(res))
}
