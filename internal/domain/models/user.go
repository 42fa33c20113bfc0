// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold.
const (
	RoleUser       = "user"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User is a registered account.
//
// NOTE:
//   - Email is a soft identifier. It is not the database key and is not
//     unique-indexed; registration checks for an existing account first.
//   - Role is the only field that changes after registration. A role
//     upsert against an unknown _id creates a document with no email.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // user | instructor | admin
}
