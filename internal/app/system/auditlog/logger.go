// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/linguahub/internal/app/store/audit"
	"github.com/dalemusser/linguahub/internal/app/system/reqlog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Destinations accepted by Config fields.
const (
	DestAll = "all" // MongoDB + zap
	DestDB  = "db"  // MongoDB only
	DestLog = "log" // zap only
	DestOff = "off"
)

// Config holds audit logging configuration.
type Config struct {
	// Admin controls logging for review and role events (approve, deny,
	// feedback, make-admin, make-instructor). One of DestAll, DestDB,
	// DestLog or DestOff.
	Admin string
	// Activity controls logging for end-user events (register, submit,
	// select, unselect).
	Activity string
}

// Logger records audit events to MongoDB (via audit.Store) and/or zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. store may be nil when neither category
// is configured to write to the database.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// getClientIP extracts the client IP from the request, preferring the first
// X-Forwarded-For hop.
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.TargetID != nil {
		fields = append(fields, zap.String("target_id", event.TargetID.Hex()))
	}
	if event.Email != "" {
		fields = append(fields, zap.String("email", event.Email))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// A nil Logger is a no-op so handlers can run without auditing in tests.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAdmin:
		setting = l.config.Admin
	case audit.CategoryActivity:
		setting = l.config.Activity
	default:
		setting = DestLog
	}

	if setting == DestOff || setting == "" {
		return
	}

	if setting == DestAll || setting == DestLog {
		l.logToZap(event)
	}

	if (setting == DestAll || setting == DestDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func fromRequest(r *http.Request, category, eventType string) audit.Event {
	e := audit.Event{
		Category:  category,
		EventType: eventType,
		Success:   true,
	}
	if r != nil {
		e.IP = getClientIP(r)
		e.UserAgent = r.UserAgent()
		e.RequestID = reqlog.RequestID(r.Context())
	}
	return e
}

// --- Admin Events ---

// ClassApproved logs a class moving to approved.
func (l *Logger) ClassApproved(ctx context.Context, r *http.Request, classID primitive.ObjectID, matched int64) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventClassApproved)
	e.TargetID = &classID
	e.Details = map[string]string{"matched": strconv.FormatInt(matched, 10)}
	l.Log(ctx, e)
}

// ClassDenied logs a class moving to denied.
func (l *Logger) ClassDenied(ctx context.Context, r *http.Request, classID primitive.ObjectID, matched int64) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventClassDenied)
	e.TargetID = &classID
	e.Details = map[string]string{"matched": strconv.FormatInt(matched, 10)}
	l.Log(ctx, e)
}

// FeedbackSent logs feedback written to a class. Only the length is kept.
func (l *Logger) FeedbackSent(ctx context.Context, r *http.Request, classID primitive.ObjectID, length int) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventFeedbackSent)
	e.TargetID = &classID
	e.Details = map[string]string{"length": strconv.Itoa(length)}
	l.Log(ctx, e)
}

// RoleChanged logs a user role update.
func (l *Logger) RoleChanged(ctx context.Context, r *http.Request, userID primitive.ObjectID, role string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventRoleChanged)
	e.TargetID = &userID
	e.Details = map[string]string{"role": role}
	l.Log(ctx, e)
}

// InstructorCreated logs a new instructor listing.
func (l *Logger) InstructorCreated(ctx context.Context, r *http.Request, instructorID primitive.ObjectID, email string) {
	e := fromRequest(r, audit.CategoryAdmin, audit.EventInstructorCreated)
	e.TargetID = &instructorID
	e.Email = email
	l.Log(ctx, e)
}

// --- Activity Events ---

// UserRegistered logs a new account.
func (l *Logger) UserRegistered(ctx context.Context, r *http.Request, userID primitive.ObjectID, email string) {
	e := fromRequest(r, audit.CategoryActivity, audit.EventUserRegistered)
	e.TargetID = &userID
	e.Email = email
	l.Log(ctx, e)
}

// ClassSubmitted logs a class entering review.
func (l *Logger) ClassSubmitted(ctx context.Context, r *http.Request, classID primitive.ObjectID, instructorEmail string) {
	e := fromRequest(r, audit.CategoryActivity, audit.EventClassSubmitted)
	e.TargetID = &classID
	e.Email = instructorEmail
	l.Log(ctx, e)
}

// ClassSelected logs a stored selection.
func (l *Logger) ClassSelected(ctx context.Context, r *http.Request, selectionID primitive.ObjectID, classID, email string) {
	e := fromRequest(r, audit.CategoryActivity, audit.EventClassSelected)
	e.TargetID = &selectionID
	e.Email = email
	e.Details = map[string]string{"class_id": classID}
	l.Log(ctx, e)
}

// SelectionRemoved logs a selection delete, including misses.
func (l *Logger) SelectionRemoved(ctx context.Context, r *http.Request, selectionID primitive.ObjectID, deleted int64) {
	e := fromRequest(r, audit.CategoryActivity, audit.EventSelectionRemoved)
	e.TargetID = &selectionID
	e.Success = deleted > 0
	if !e.Success {
		e.FailureReason = "not found"
	}
	l.Log(ctx, e)
}

// DuplicateRejected logs a register or select call that found an existing
// record. kind is "user" or "selection".
func (l *Logger) DuplicateRejected(ctx context.Context, r *http.Request, kind, email string) {
	e := fromRequest(r, audit.CategoryActivity, audit.EventDuplicateRejected)
	e.Email = email
	e.Success = false
	e.FailureReason = "already exists"
	e.Details = map[string]string{"kind": kind}
	l.Log(ctx, e)
}
