package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/linguahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// CreateClass inserts a class with the given status directly, bypassing the
// store's pending-on-insert rule.
func (f *Fixtures) CreateClass(ctx context.Context, name, instructorEmail string, seats int, status string) models.Class {
	f.t.Helper()

	c := models.Class{
		ID:     primitive.NewObjectID(),
		Status: status,
		Extra: map[string]any{
			"className":       name,
			"classImage":      "https://img.example.com/" + name + ".png",
			"instructorName":  "Instructor " + name,
			"instructorEmail": instructorEmail,
			"availableSeats":  int32(seats),
			"price":           25.0,
		},
	}

	if _, err := f.db.Collection("classes").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test class: %v", err)
	}
	return c
}

// CreateUser inserts a user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, email, role string) models.User {
	f.t.Helper()

	u := models.User{
		ID:    primitive.NewObjectID(),
		Email: email,
		Role:  role,
	}
	if _, err := f.db.Collection("allUsers").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateInstructor inserts an instructor listing.
func (f *Fixtures) CreateInstructor(ctx context.Context, name, email string) models.Instructor {
	f.t.Helper()

	i := models.Instructor{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
	}
	if _, err := f.db.Collection("instructors").InsertOne(ctx, i); err != nil {
		f.t.Fatalf("failed to create test instructor: %v", err)
	}
	return i
}

// CreateSelection records that email selected class.
func (f *Fixtures) CreateSelection(ctx context.Context, class models.Class, email string) models.SelectedClass {
	f.t.Helper()

	s := models.SelectedClass{
		ID: primitive.NewObjectID(),
		Extra: map[string]any{
			"classID":    class.ID.Hex(),
			"email":      email,
			"className":  class.Field("className"),
			"classImage": class.Field("classImage"),
			"price":      class.Field("price"),
		},
	}
	if _, err := f.db.Collection("selectedClasses").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test selection: %v", err)
	}
	return s
}
