// internal/app/store/users/userstore.go
package userstore

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

// Collection is the users collection name.
const Collection = "allUsers"

var errBadRole = errors.New(`role must be "user"|"instructor"|"admin"`)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// GetByEmail looks up a user by exact email. A missing user is (nil, nil).
// If duplicates exist the first match wins. An empty email matches users
// stored without one.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": docid.Key(email)}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns every user.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetRole sets a user's role. The write is an upsert keyed on _id, so an
// unknown id creates a user document with a role and no email.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error) {
	switch role {
	case models.RoleUser, models.RoleInstructor, models.RoleAdmin:
	default:
		return nil, errBadRole
	}
	return s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role}},
		options.Update().SetUpsert(true))
}

// Register inserts {email, role: "user"} unless a user with that email
// already exists, in which case it returns (nil, true, nil).
//
// The existence check and the insert are separate calls and nothing in the
// collection enforces uniqueness, so two concurrent registrations for the
// same email can both insert.
func (s *Store) Register(ctx context.Context, email string) (res *mongo.InsertOneResult, already bool, err error) {
	existing, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return nil, true, nil
	}

	res, err = s.Insert(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return res, false, nil
}

// Insert stores {email, role: "user"} without looking for an existing
// account. An empty email is left out of the document.
func (s *Store) Insert(ctx context.Context, email string) (*mongo.InsertOneResult, error) {
	return s.c.InsertOne(ctx, models.User{Email: email, Role: models.RoleUser})
}
