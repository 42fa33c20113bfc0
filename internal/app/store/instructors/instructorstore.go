// internal/app/store/instructors/instructorstore.go
package instructorstore

import (
	"context"

	"github.com/dalemusser/linguahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the instructors collection name.
const Collection = "instructors"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every instructor listing.
func (s *Store) List(ctx context.Context) ([]models.Instructor, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Instructor{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert adds an instructor listing. No check is made for an existing
// listing with the same email.
func (s *Store) Insert(ctx context.Context, name, email string) (*mongo.InsertOneResult, error) {
	return s.c.InsertOne(ctx, models.Instructor{Name: name, Email: email})
}
