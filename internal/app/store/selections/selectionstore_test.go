package selectionstore_test

import (
	"testing"

	selectionstore "github.com/dalemusser/linguahub/internal/app/store/selections"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"github.com/dalemusser/linguahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func selection(classID, email string) models.SelectedClass {
	return models.SelectedClass{Extra: map[string]any{"classID": classID, "email": email}}
}

func TestStore_Select(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := selectionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	classID := primitive.NewObjectID().Hex()
	sel := selection(classID, "u@example.com")
	sel.Extra["className"] = "Spanish"
	sel.Extra["instructorName"] = "Ana"

	res, already, err := store.Select(ctx, sel)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if already || res == nil {
		t.Fatalf("expected insert, got res=%v already=%v", res, already)
	}

	res, already, err = store.Select(ctx, sel)
	if err != nil {
		t.Fatalf("second Select failed: %v", err)
	}
	if !already || res != nil {
		t.Errorf("expected already-selected, got res=%v already=%v", res, already)
	}

	// A different user may select the same class.
	other := selection(classID, "v@example.com")
	if _, already, err := store.Select(ctx, other); err != nil || already {
		t.Errorf("other user select: already=%v err=%v", already, err)
	}

	got, err := store.ForEmail(ctx, "u@example.com")
	if err != nil {
		t.Fatalf("ForEmail failed: %v", err)
	}
	if len(got) != 1 || got[0].Extra["instructorName"] != "Ana" {
		t.Errorf("unexpected selections: %+v", got)
	}
}

// Two selections that both pass the existence check before either inserts
// end up as two records.
func TestStore_Select_InterleavedChecksDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := selectionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	classID := primitive.NewObjectID().Hex()
	sel := selection(classID, "race@example.com")

	for i := 0; i < 2; i++ {
		found, err := store.Exists(ctx, classID, "race@example.com")
		if err != nil {
			t.Fatalf("Exists %d failed: %v", i, err)
		}
		if found {
			t.Fatalf("check %d: expected no selection yet", i)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := store.Insert(ctx, sel); err != nil {
			t.Fatalf("Insert %d failed: %v", i, err)
		}
	}

	count, err := db.Collection(selectionstore.Collection).CountDocuments(ctx, bson.M{"classID": classID, "email": "race@example.com"})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 records, got %d", count)
	}

	if _, already, err := store.Select(ctx, sel); err != nil || !already {
		t.Errorf("Select after duplicates: already=%v err=%v", already, err)
	}
}

func TestStore_Select_MissingKeysOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := selectionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sel := models.SelectedClass{Extra: map[string]any{"className": "Spanish"}}
	if _, already, err := store.Select(ctx, sel); err != nil || already {
		t.Fatalf("first Select: already=%v err=%v", already, err)
	}
	if _, already, err := store.Select(ctx, sel); err != nil || !already {
		t.Errorf("second Select without keys: already=%v err=%v", already, err)
	}

	got, err := store.ForEmail(ctx, "")
	if err != nil {
		t.Fatalf("ForEmail failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 selection without email, got %d", len(got))
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := selectionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	res, _, err := store.Select(ctx, selection("c1", "u@example.com"))
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	id := res.InsertedID.(primitive.ObjectID)

	del, err := store.Delete(ctx, id)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if del.DeletedCount != 1 {
		t.Errorf("expected 1 deleted, got %d", del.DeletedCount)
	}

	del, err = store.Delete(ctx, id)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if del.DeletedCount != 0 {
		t.Errorf("expected 0 deleted on repeat, got %d", del.DeletedCount)
	}
}
