// internal/app/store/classes/classstore.go
package classstore

import (
	"context"
	"errors"

	"github.com/dalemusser/linguahub/internal/app/system/docid"
	"github.com/dalemusser/linguahub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the classes collection name.
const Collection = "classes"

// DefaultPopularLimit is how many classes Popular returns when asked for
// zero or fewer.
const DefaultPopularLimit = 6

var errBadStatus = errors.New(`status must be "pending"|"approved"|"denied"`)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// List returns every class in natural order.
func (s *Store) List(ctx context.Context) ([]models.Class, error) {
	return s.find(ctx, bson.M{})
}

// Popular returns approved classes with the fewest available seats first.
func (s *Store) Popular(ctx context.Context, limit int64) ([]models.Class, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "availableSeats", Value: 1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{"status": models.ClassApproved}, opts)
}

// ByInstructor returns the classes submitted under an instructor email.
func (s *Store) ByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.find(ctx, bson.M{"instructorEmail": docid.Key(email)})
}

// GetByID loads one class. A missing class is (nil, nil).
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Class, error) {
	var c models.Class
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetStatus sets a class status. The write is an upsert: an unknown id
// creates a document holding only _id and status. Nothing else about the
// class changes, including any feedback left by an earlier review.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	switch status {
	case models.ClassPending, models.ClassApproved, models.ClassDenied:
	default:
		return nil, errBadStatus
	}
	return s.upsertSet(ctx, id, bson.M{"status": status})
}

// Approve marks a class approved.
func (s *Store) Approve(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.SetStatus(ctx, id, models.ClassApproved)
}

// Deny marks a class denied.
func (s *Store) Deny(ctx context.Context, id primitive.ObjectID) (*mongo.UpdateResult, error) {
	return s.SetStatus(ctx, id, models.ClassDenied)
}

// SetFeedback replaces the feedback text on a class (upsert).
func (s *Store) SetFeedback(ctx context.Context, id primitive.ObjectID, message string) (*mongo.UpdateResult, error) {
	return s.upsertSet(ctx, id, bson.M{"feedback": message})
}

// Insert stores a newly submitted class. Status is always forced to pending,
// whatever the client sent.
func (s *Store) Insert(ctx context.Context, c models.Class) (*mongo.InsertOneResult, error) {
	c.Status = models.ClassPending
	return s.c.InsertOne(ctx, c)
}

func (s *Store) upsertSet(ctx context.Context, id primitive.ObjectID, set bson.M) (*mongo.UpdateResult, error) {
	return s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.Update().SetUpsert(true))
}

func (s *Store) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Class, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Class{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
