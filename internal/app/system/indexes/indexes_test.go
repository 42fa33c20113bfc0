package indexes_test

import (
	"context"
	"testing"

	"github.com/dalemusser/linguahub/internal/app/system/indexes"
	"github.com/dalemusser/linguahub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func indexNames(t *testing.T, ctx context.Context, coll *mongo.Collection) map[string]bson.M {
	t.Helper()
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		t.Fatalf("List indexes failed: %v", err)
	}
	defer cur.Close(ctx)

	out := map[string]bson.M{}
	for cur.Next(ctx) {
		var idx bson.M
		if err := cur.Decode(&idx); err != nil {
			continue
		}
		if name, ok := idx["name"].(string); ok {
			out[name] = idx
		}
	}
	return out
}

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesExpectedIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	want := map[string][]string{
		"classes":         {"idx_classes_status_seats", "idx_classes_instructor_email"},
		"allUsers":        {"idx_allusers_email"},
		"instructors":     {"idx_instructors_email"},
		"selectedClasses": {"idx_selected_email", "idx_selected_class_email"},
		"audit_events":    {"idx_audit_timestamp", "idx_audit_target_time", "idx_audit_category_type_time"},
	}
	for coll, names := range want {
		got := indexNames(t, ctx, db.Collection(coll))
		for _, n := range names {
			if _, ok := got[n]; !ok {
				t.Errorf("%s: missing index %q (have %v)", coll, n, got)
			}
		}
	}
}

func TestEnsureAll_LookupIndexesAreNotUnique(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	checks := []struct {
		coll  string
		index string
		doc   bson.M
	}{
		{"allUsers", "idx_allusers_email", bson.M{"email": "same@example.com", "role": "user"}},
		{"selectedClasses", "idx_selected_class_email", bson.M{"classID": "c1", "email": "same@example.com"}},
	}
	for _, c := range checks {
		coll := db.Collection(c.coll)
		idx, ok := indexNames(t, ctx, coll)[c.index]
		if !ok {
			t.Fatalf("%s: missing index %q", c.coll, c.index)
		}
		if u, _ := idx["unique"].(bool); u {
			t.Errorf("%s: index %q must not be unique", c.coll, c.index)
		}
		for i := 0; i < 2; i++ {
			if _, err := coll.InsertOne(ctx, c.doc); err != nil {
				t.Fatalf("%s: duplicate insert %d should succeed: %v", c.coll, i, err)
			}
		}
	}
}

func TestEnsureAll_ReplacesMisnamedIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	coll := db.Collection("allUsers")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("legacy_email"),
	})
	if err != nil {
		t.Fatalf("create legacy index: %v", err)
	}

	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	got := indexNames(t, ctx, coll)
	if _, ok := got["legacy_email"]; ok {
		t.Error("legacy index should have been replaced")
	}
	if _, ok := got["idx_allusers_email"]; !ok {
		t.Error("expected idx_allusers_email")
	}
}
