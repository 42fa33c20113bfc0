package instructors_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/linguahub/internal/app/features/instructors"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"github.com/dalemusser/linguahub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TestList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := chi.NewRouter()
	instructors.MountRoutes(r, instructors.NewHandler(db, zap.NewNop()))

	rec := testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/instructors"))
	rec.AssertStatus(t, http.StatusOK)
	if rec.Body.String() != "[]\n" {
		t.Errorf("empty list: got %q", rec.Body.String())
	}

	ana := fx.CreateInstructor(ctx, "Ana", "ana@example.com")
	fx.CreateInstructor(ctx, "Ben", "ben@example.com")

	rec = testutil.NewRecorder()
	r.ServeHTTP(rec, testutil.NewRequest("GET", "/instructors"))
	rec.AssertStatus(t, http.StatusOK)

	var got []models.Instructor
	rec.DecodeJSON(t, &got)
	if len(got) != 2 {
		t.Fatalf("expected 2 instructors, got %d", len(got))
	}
	if got[0].ID != ana.ID || got[0].Name != "Ana" {
		t.Errorf("unexpected first instructor: %+v", got[0])
	}
}
