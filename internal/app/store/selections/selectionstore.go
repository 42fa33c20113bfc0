// internal/app/store/selections/selectionstore.go
package selectionstore

import (
	"context"
	"errors"

	"github.com/dalemusser/linguahub/internal/app/system/docid"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the selections collection name.
const Collection = "selectedClasses"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// ForEmail returns the selections made under an email. An empty email
// lists selections stored without one.
func (s *Store) ForEmail(ctx context.Context, email string) ([]models.SelectedClass, error) {
	cur, err := s.c.Find(ctx, bson.M{"email": docid.Key(email)})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SelectedClass{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether a selection for (classID, email) is stored. The
// keys are compared as sent; a nil key matches a missing field.
func (s *Store) Exists(ctx context.Context, classID, email any) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"classID": classID, "email": email}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, err
}

// Select stores sel unless the same (classID, email) pair is already
// selected, in which case it returns (nil, true, nil).
//
// Like user registration this is check-then-insert with no unique index
// behind it: concurrent identical requests can both insert.
func (s *Store) Select(ctx context.Context, sel models.SelectedClass) (res *mongo.InsertOneResult, already bool, err error) {
	found, err := s.Exists(ctx, sel.ClassID(), sel.Email())
	if err != nil {
		return nil, false, err
	}
	if found {
		return nil, true, nil
	}

	res, err = s.Insert(ctx, sel)
	if err != nil {
		return nil, false, err
	}
	return res, false, nil
}

// Insert stores sel without looking for an existing pair.
func (s *Store) Insert(ctx context.Context, sel models.SelectedClass) (*mongo.InsertOneResult, error) {
	return s.c.InsertOne(ctx, sel)
}

// Delete removes one selection by _id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.c.DeleteOne(ctx, bson.M{"_id": id})
}
