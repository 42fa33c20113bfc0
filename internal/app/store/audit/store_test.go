package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/linguahub/internal/app/store/audit"
	"github.com/dalemusser/linguahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	classID := primitive.NewObjectID()
	err := store.Log(ctx, audit.Event{
		Category:  audit.CategoryAdmin,
		EventType: audit.EventClassApproved,
		TargetID:  &classID,
		IP:        "192.168.1.1",
		Success:   true,
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := store.ForTarget(ctx, classID, 10)
	if err != nil {
		t.Fatalf("ForTarget failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be generated")
	}
	if events[0].Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestStore_Query_NewestFirstAndFiltered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().Add(-time.Hour)
	for i, typ := range []string{audit.EventClassApproved, audit.EventClassDenied, audit.EventClassApproved} {
		if err := store.Log(ctx, audit.Event{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Category:  audit.CategoryAdmin,
			EventType: typ,
			Success:   true,
		}); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}
	if err := store.Log(ctx, audit.Event{
		Category:  audit.CategoryActivity,
		EventType: audit.EventUserRegistered,
		Success:   true,
	}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	approved, err := store.Query(ctx, audit.QueryFilter{EventType: audit.EventClassApproved})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(approved) != 2 {
		t.Fatalf("expected 2 approvals, got %d", len(approved))
	}
	if !approved[0].Timestamp.After(approved[1].Timestamp) {
		t.Error("expected newest event first")
	}

	admin, err := store.Query(ctx, audit.QueryFilter{Category: audit.CategoryAdmin, Limit: 1})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(admin) != 1 {
		t.Errorf("expected limit to apply, got %d", len(admin))
	}
}
